package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/pipeline"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
)

func testServer(t *testing.T) (*Server, family.Person) {
	t.Helper()
	store := memory.New()
	focal := memory.SeedDemo(store)
	runner := pipeline.NewRunner(store, nil, log.New(io.Discard))
	return New(Options{
		Runner:  runner,
		Logger:  log.New(io.Discard),
		OwnTree: true,
	}), focal
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := testServer(t)
	rec := get(t, s.Router(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestTreeSVG(t *testing.T) {
	s, focal := testServer(t)
	rec := get(t, s.Router(), "/tree/"+focal.ID+".svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<svg") {
		t.Error("body is not SVG")
	}
	if !strings.Contains(body, focal.ID) {
		t.Error("SVG does not mention the requested person")
	}
}

func TestTreePage(t *testing.T) {
	s, focal := testServer(t)
	rec := get(t, s.Router(), "/tree/"+focal.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("body is not an HTML page")
	}
	if !strings.Contains(body, "Family tree of Marie Salomea Skłodowska-Curie") {
		t.Errorf("title missing from page:\n%s", body[:200])
	}
	// The interactive page links cards back to this server.
	if !strings.Contains(body, `href="/tree/`) {
		t.Error("page SVG has no card links")
	}
}

func TestTreeJSON(t *testing.T) {
	s, focal := testServer(t)
	rec := get(t, s.Router(), "/api/tree/"+focal.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var doc struct {
		SelectedID string `json:"selected_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.SelectedID != focal.ID {
		t.Errorf("selected_id = %q, want %q", doc.SelectedID, focal.ID)
	}
}

func TestPedigreeDOT(t *testing.T) {
	s, focal := testServer(t)
	rec := get(t, s.Router(), "/api/tree/"+focal.ID+"/pedigree.dot")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "digraph pedigree") {
		t.Error("body is not a pedigree digraph")
	}
}

func TestPersonNotFound(t *testing.T) {
	s, _ := testServer(t)
	rec := get(t, s.Router(), "/tree/nobody.svg")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Error.Code != "PERSON_NOT_FOUND" {
		t.Errorf("code = %q, want PERSON_NOT_FOUND", resp.Error.Code)
	}
}

func TestInvalidPersonID(t *testing.T) {
	s, _ := testServer(t)
	rec := get(t, s.Router(), "/tree/has..dots")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}
