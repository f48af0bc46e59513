package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gorilla/mux"
	"github.com/ttoweb/techportal/api"
	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository/mock"
)

func newTechRequest(method, target string, body any, id string) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if id != "" {
		req = mux.SetURLVars(req, map[string]string{"id": id})
	}
	return req
}

func TestTechnologies_CreateThenGetRoundTrip(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	payload := map[string]any{
		"id":          "TT-001",
		"docket":      "TT-001",
		"name":        "Self-healing polymer",
		"description": "A polymer that repairs microcracks",
		"genre":       "Materials",
		"innovators":  []string{"Dr. Vasquez", "Dr. Chen"},
		"relatedLinks": []map[string]string{
			{"title": "Paper", "url": "http://example.com/paper"},
		},
	}

	w := httptest.NewRecorder()
	h.Create(w, newTechRequest(http.MethodPost, "/technologies", payload, ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.Get(w, newTechRequest(http.MethodGet, "/technologies/TT-001", nil, "TT-001"))
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var got models.Technology
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal technology: %v", err)
	}
	if got.ID != "TT-001" || got.Name != "Self-healing polymer" || got.Genre != "Materials" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Innovators, []string{"Dr. Vasquez", "Dr. Chen"}) {
		t.Fatalf("innovators mismatch: %v", got.Innovators)
	}
	if len(got.RelatedLinks) != 1 || got.RelatedLinks[0].Title != "Paper" {
		t.Fatalf("related links mismatch: %v", got.RelatedLinks)
	}
	// defaults applied for omitted fields
	if got.TRL != 1 {
		t.Fatalf("expected default trl 1, got %d", got.TRL)
	}
	if got.Spotlight {
		t.Fatalf("expected default spotlight false")
	}
}

func TestTechnologies_CreateMissingFields(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	w := httptest.NewRecorder()
	h.Create(w, newTechRequest(http.MethodPost, "/technologies", map[string]any{"name": "No docket"}, ""))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestTechnologies_CreateDuplicateIsConflict(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.TechRepo.Stored = []models.Technology{{ID: "TT-001", Docket: "TT-001", Name: "Existing", Description: "x"}}
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	payload := map[string]any{"id": "TT-001", "docket": "TT-001", "name": "Clone", "description": "y"}
	w := httptest.NewRecorder()
	h.Create(w, newTechRequest(http.MethodPost, "/technologies", payload, ""))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 conflict got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("already exists")) {
		t.Fatalf("expected conflict message, got %s", w.Body.String())
	}
}

func TestTechnologies_GetNotFound(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	w := httptest.NewRecorder()
	h.Get(w, newTechRequest(http.MethodGet, "/technologies/nope", nil, "nope"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestTechnologies_UpdateIsPartialMerge(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.TechRepo.Stored = []models.Technology{{
		ID:          "TT-002",
		Docket:      "D-2",
		Name:        "Original name",
		Description: "Original description",
		Genre:       "Energy",
		TRL:         4,
	}}
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	// only name and trl in the payload; everything else must survive
	patch := map[string]any{"name": "Renamed", "trl": 6}
	w := httptest.NewRecorder()
	h.Update(w, newTechRequest(http.MethodPut, "/technologies/TT-002", patch, "TT-002"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var got models.Technology
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal updated: %v", err)
	}
	if got.Name != "Renamed" || got.TRL != 6 {
		t.Fatalf("patched fields not applied: %+v", got)
	}
	if got.Description != "Original description" || got.Genre != "Energy" || got.Docket != "D-2" {
		t.Fatalf("unpatched fields clobbered: %+v", got)
	}
}

func TestTechnologies_UpdateNotFound(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	w := httptest.NewRecorder()
	h.Update(w, newTechRequest(http.MethodPut, "/technologies/nope", map[string]any{"name": "x"}, "nope"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

// Deleting a missing id is 404 on the first call and on every repeat; it
// never partially succeeds.
func TestTechnologies_DeleteIdempotentNotFound(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.TechRepo.Stored = []models.Technology{{ID: "TT-003", Docket: "D-3", Name: "n", Description: "d"}}
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	w := httptest.NewRecorder()
	h.Delete(w, newTechRequest(http.MethodDelete, "/technologies/TT-003", nil, "TT-003"))
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200 got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Technology deleted successfully")) {
		t.Fatalf("expected confirmation, got %s", w.Body.String())
	}

	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		h.Delete(w, newTechRequest(http.MethodDelete, "/technologies/TT-003", nil, "TT-003"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("repeat delete %d: expected 404 got %d", i, w.Code)
		}
	}
}

func TestTechnologies_ListEmptyIsArray(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewTechnologiesHandler(mocks.TechRepo)

	w := httptest.NewRecorder()
	h.List(w, newTechRequest(http.MethodGet, "/technologies", nil, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got []models.Technology
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON array, got %s: %v", w.Body.String(), err)
	}
	if got == nil {
		t.Fatalf("expected empty array, got null")
	}
}
