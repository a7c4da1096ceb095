package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"planwise/internal/platform/apiclient"
)

type fixedID struct{}

func (fixedID) New() string { return "req-1" }

func newClient(t *testing.T, handler http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/", time.Second, fixedID{}, zerolog.Nop())
}

func TestGetSendsOnlyNonEmptyQuery(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	var gotRequestID string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = io.WriteString(w, `{"items":["CMPSC","MATH"]}`)
	})
	out := struct {
		Items []string `json:"items"`
	}{}
	err := client.Get(context.Background(), "/api/courses/search", url.Values{"q": {"calc"}, "subject": {""}, "level": {" "}}, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotQuery.Get("q") != "calc" || gotQuery.Has("subject") || gotQuery.Has("level") {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if gotRequestID != "req-1" {
		t.Fatalf("expected request id header, got %q", gotRequestID)
	}
	if len(out.Items) != 2 {
		t.Fatalf("unexpected items: %v", out.Items)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	t.Parallel()
	var body map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"ok":true,"pc_id":41}`)
	})
	out := struct {
		OK   apiclient.Flag `json:"ok"`
		PCID apiclient.Int  `json:"pc_id"`
	}{}
	if err := client.Post(context.Background(), "/api/plan/add_course", map[string]int64{"plan_id": 3, "course_id": 7}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if body["plan_id"].(float64) != 3 {
		t.Fatalf("unexpected body: %v", body)
	}
	if !bool(out.OK) || out.PCID != 41 {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestNon2xxUsesErrorField(t *testing.T) {
	t.Parallel()
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"prerequisites not satisfied for this course"}`)
	})
	err := client.Post(context.Background(), "/api/plan/add_course", map[string]int{}, nil)
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *apiclient.Error, got %v", err)
	}
	if apiErr.Status != 400 || err.Error() != "prerequisites not satisfied for this course" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	wrapped := fmt.Errorf("add course: %w", err)
	if !apiclient.IsStatus(wrapped, 400) || apiclient.StatusOf(wrapped) != 400 {
		t.Fatalf("expected status 400 through wrapping")
	}
}

func TestNon2xxWithoutJSONFallsBackToStatusText(t *testing.T) {
	t.Parallel()
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `<html>boom</html>`)
	})
	err := client.Get(context.Background(), "/api/plan", nil, nil)
	if err == nil || err.Error() != "HTTP 500" {
		t.Fatalf("expected HTTP 500 message, got %v", err)
	}
}

func TestMalformedSuccessBodyDecodesAsEmpty(t *testing.T) {
	t.Parallel()
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})
	out := struct {
		Items []string `json:"items"`
	}{Items: nil}
	if err := client.Get(context.Background(), "/api/subjects", nil, &out); err != nil {
		t.Fatalf("expected malformed body to be tolerated, got %v", err)
	}
	if len(out.Items) != 0 {
		t.Fatalf("expected empty items, got %v", out.Items)
	}
}

func TestShapeMismatchLeavesNoPartialDecode(t *testing.T) {
	t.Parallel()
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"plan_id": 7, "items": "not a list"}`)
	})
	out := struct {
		PlanID int64    `json:"plan_id"`
		Items  []string `json:"items"`
	}{PlanID: 99, Items: []string{"stale"}}
	if err := client.Get(context.Background(), "/api/plan", nil, &out); err != nil {
		t.Fatalf("expected mismatch to be tolerated, got %v", err)
	}
	if out.PlanID != 0 || out.Items != nil {
		t.Fatalf("expected an empty decode, got %+v", out)
	}
}

func TestTransportFailureIsWrapped(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()
	client := apiclient.New(base, time.Second, fixedID{}, zerolog.Nop())
	err := client.Get(context.Background(), "/api/programs", nil, nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if apiclient.StatusOf(err) != 0 {
		t.Fatalf("transport errors carry no status")
	}
}

func TestWireTypesTolerateLooseJSON(t *testing.T) {
	t.Parallel()
	row := struct {
		Grade       apiclient.Text  `json:"grade"`
		Location    apiclient.Text  `json:"location"`
		Credits     apiclient.Float `json:"credits"`
		SectionID   apiclient.Int   `json:"section_id"`
		Recommended apiclient.Flag  `json:"recommended"`
		Code        apiclient.Text  `json:"cata_num"`
	}{}
	raw := `{"grade":null,"location":"Olmsted 201","credits":"3.0","section_id":"12","recommended":1,"cata_num":221}`
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row.Grade != "" || row.Location != "Olmsted 201" || row.Credits != 3 || row.SectionID != 12 || !bool(row.Recommended) || row.Code != "221" {
		t.Fatalf("unexpected decode: %+v", row)
	}
}
