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

	catalogout "planwise/internal/modules/catalog/adapter/out"
	"planwise/internal/modules/catalog/domain"
	"planwise/internal/platform/apiclient"
)

func newGateway(t *testing.T, mux *http.ServeMux) *catalogout.APIGateway {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := apiclient.New(srv.URL, time.Second, nil, zerolog.Nop())
	return catalogout.NewAPIGateway(client).(*catalogout.APIGateway)
}

func TestSearchDecodesLooseRows(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/courses/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("subject") != "CMPSC" {
			http.Error(w, `{"error":"bad subject"}`, http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, `{"items":[{"course_id":"7","subject":"CMPSC","cata_num":221,"title":"OOP","credits":"3.0"}]}`)
	})
	gw := newGateway(t, mux)

	courses, err := gw.Search(context.Background(), domain.SearchQuery{Subject: "CMPSC"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected one course, got %+v", courses)
	}
	c := courses[0]
	if c.ID != 7 || c.CataNum != "221" || c.Credits != 3 {
		t.Fatalf("unexpected course: %+v", c)
	}
}

func TestCurrentMajorNullItem(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/student/major", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("stu_id") == "1" {
			_, _ = io.WriteString(w, `{"item":null}`)
			return
		}
		_, _ = io.WriteString(w, `{"item":{"prog_id":3,"name":"Computer Science","program_type":"Major"}}`)
	})
	gw := newGateway(t, mux)

	_, ok, err := gw.CurrentMajor(context.Background(), 1)
	if err != nil || ok {
		t.Fatalf("expected no major, ok=%v err=%v", ok, err)
	}
	major, ok, err := gw.CurrentMajor(context.Background(), 2)
	if err != nil || !ok || major.Name != "Computer Science" || major.Type != "Major" {
		t.Fatalf("unexpected major: %+v ok=%v err=%v", major, ok, err)
	}
}

func TestSaveMajorPostsIDs(t *testing.T) {
	t.Parallel()
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/student/major", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	gw := newGateway(t, mux)

	if err := gw.SaveMajor(context.Background(), 5, 3); err != nil {
		t.Fatalf("save: %v", err)
	}
	if body["stu_id"] != float64(5) || body["prog_id"] != float64(3) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSubjectsAndAdvisors(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/subjects", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"items":["MATH",null,"CMPSC"]}`)
	})
	mux.HandleFunc("/api/advisors", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"items":[{"adv_id":1,"f_name":"Ada","l_name":"Lovelace","email":null}]}`)
	})
	gw := newGateway(t, mux)

	subjects, err := gw.Subjects(context.Background())
	if err != nil || len(subjects) != 2 {
		t.Fatalf("subjects: %v %v", subjects, err)
	}
	advisors, err := gw.Advisors(context.Background())
	if err != nil || len(advisors) != 1 || advisors[0].Name() != "Ada Lovelace" || advisors[0].Email != "" {
		t.Fatalf("advisors: %+v %v", advisors, err)
	}
}
