package out_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	scheduleout "planwise/internal/modules/schedule/adapter/out"
	"planwise/internal/platform/apiclient"
)

func TestMeetingRowsDecodeNullTimes(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/final_schedule", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("stu_id") != "7" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, `{"items":[{"section_id":4,"course_code":"MATH 140","title":"Calculus","days_of_week":2,"start_time":null,"end_time":"11:00:00","location":null}]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	gw := scheduleout.NewAPIGateway(apiclient.New(srv.URL, time.Second, nil, zerolog.Nop()))

	rows, err := gw.Final(context.Background(), 7)
	if err != nil {
		t.Fatalf("final: %v", err)
	}
	if len(rows) != 1 || rows[0].Start != "" || rows[0].End != "11:00:00" || rows[0].Location != "" || rows[0].Day != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	_, err = gw.Final(context.Background(), 8)
	if !apiclient.IsStatus(err, http.StatusBadRequest) || err.Error() != "HTTP 400" {
		t.Fatalf("expected HTTP 400, got %v", err)
	}
}

func TestEnrollReturnsEnrollmentID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/enroll" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"ok":true,"enroll_id":12}`)
	}))
	t.Cleanup(srv.Close)
	gw := scheduleout.NewAPIGateway(apiclient.New(srv.URL, time.Second, nil, zerolog.Nop()))

	id, err := gw.Enroll(context.Background(), 7, 4)
	if err != nil || id != 12 {
		t.Fatalf("enroll: %d %v", id, err)
	}
}
