package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/ttoweb/techportal/api"
	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository/mock"
)

func newEventRequest(method, target string, body any, id string) *http.Request {
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

func createEvent(t *testing.T, h *api.EventsHandler, title string) models.Event {
	t.Helper()
	payload := map[string]any{"title": title, "month": "June", "day": "12"}
	w := httptest.NewRecorder()
	h.Create(w, newEventRequest(http.MethodPost, "/events", payload, ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("create %q: expected 201 got %d body=%s", title, w.Code, w.Body.String())
	}
	var e models.Event
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("unmarshal created event: %v", err)
	}
	return e
}

// Sequential creates yield ids 1..N with no gaps or duplicates.
func TestEvents_SequentialIDAssignment(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	for i := int64(1); i <= 5; i++ {
		e := createEvent(t, h, "Event")
		if e.ID != i {
			t.Fatalf("expected id %d, got %d", i, e.ID)
		}
	}
}

// Deleting an old event does not cause its id to be reused: the next id is
// always max(existing)+1 at call time. A, B, delete 1, C yields 1, 2, 3.
func TestEvents_IDNotReusedAfterDelete(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	a := createEvent(t, h, "A")
	b := createEvent(t, h, "B")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("setup ids: got %d, %d", a.ID, b.ID)
	}

	w := httptest.NewRecorder()
	h.Delete(w, newEventRequest(http.MethodDelete, "/events/1", nil, "1"))
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}

	c := createEvent(t, h, "C")
	if c.ID != 3 {
		t.Fatalf("expected id 3 (max 2 + 1), got %d", c.ID)
	}
}

// The server owns event ids; a client-supplied id is discarded.
func TestEvents_CreateIgnoresClientID(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	payload := map[string]any{"id": 999, "title": "Sneaky", "month": "May", "day": "1"}
	w := httptest.NewRecorder()
	h.Create(w, newEventRequest(http.MethodPost, "/events", payload, ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var e models.Event
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.ID != 1 {
		t.Fatalf("expected server-assigned id 1, got %d", e.ID)
	}
}

func TestEvents_CreateMissingFields(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	w := httptest.NewRecorder()
	h.Create(w, newEventRequest(http.MethodPost, "/events", map[string]any{"title": "No date"}, ""))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestEvents_NonNumericID(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	w := httptest.NewRecorder()
	h.Get(w, newEventRequest(http.MethodGet, "/events/abc", nil, "abc"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestEvents_GetNotFound(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	w := httptest.NewRecorder()
	h.Get(w, newEventRequest(http.MethodGet, "/events/42", nil, "42"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestEvents_UpdateIsPartialMerge(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	payload := map[string]any{"title": "Demo day", "month": "June", "day": "12", "location": "Main hall"}
	w := httptest.NewRecorder()
	h.Create(w, newEventRequest(http.MethodPost, "/events", payload, ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d", w.Code)
	}

	patch := map[string]any{"day": "13"}
	w = httptest.NewRecorder()
	h.Update(w, newEventRequest(http.MethodPut, "/events/1", patch, "1"))
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var e models.Event
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Day != "13" {
		t.Fatalf("patched field not applied: %+v", e)
	}
	if e.Title != "Demo day" || e.Location != "Main hall" {
		t.Fatalf("unpatched fields clobbered: %+v", e)
	}
}

func TestEvents_DeleteIdempotentNotFound(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewEventsHandler(mocks.EventRepo)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.Delete(w, newEventRequest(http.MethodDelete, "/events/7", nil, "7"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("delete attempt %d: expected 404 got %d", i, w.Code)
		}
	}
}
