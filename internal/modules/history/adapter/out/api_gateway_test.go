package out_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	historyout "planwise/internal/modules/history/adapter/out"
	"planwise/internal/platform/apiclient"
)

func TestListDecodesHistoryRows(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/history" || r.URL.Query().Get("stu_id") != "4" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"items":[{"enroll_id":1,"course_id":9,"subject":"MATH","cata_num":"140","title":"Calculus","credits":4,"grade":"B+ ","term_code":"FA24","class_num":12345}]}`)
	}))
	t.Cleanup(srv.Close)
	gw := historyout.NewAPIGateway(apiclient.New(srv.URL, time.Second, nil, zerolog.Nop()))

	records, err := gw.List(context.Background(), 4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %+v", records)
	}
	r := records[0]
	if r.Code() != "MATH 140" || r.Grade != "B+" || r.Credits != 4 || r.ClassNum != "12345" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestUpdateGradeSurfacesServerError(t *testing.T) {
	t.Parallel()
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid grade"}`)
	}))
	t.Cleanup(srv.Close)
	gw := historyout.NewAPIGateway(apiclient.New(srv.URL, time.Second, nil, zerolog.Nop()))

	err := gw.UpdateGrade(context.Background(), 1, 2, "Z")
	if err == nil || err.Error() != "invalid grade" {
		t.Fatalf("expected server message, got %v", err)
	}
	if !apiclient.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400 status, got %d", apiclient.StatusOf(err))
	}
	if body["grade"] != "Z" || body["enroll_id"] != float64(2) {
		t.Fatalf("unexpected body: %v", body)
	}
}
