package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ttoweb/techportal/internal/apperr"
	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository"
)

type EventsHandler struct {
	eventRepo repository.EventRepo
}

func NewEventsHandler(er repository.EventRepo) *EventsHandler {
	return &EventsHandler{eventRepo: er}
}

// eventID coerces the path parameter to a number; event ids are numeric and
// compared numerically, unlike technology ids.
func eventID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.NewValidation("event id must be numeric")
	}
	return id, nil
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventRepo.ListEvents(r.Context())
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	writeJSON(w, events, http.StatusOK)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	event, err := h.eventRepo.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if event == nil {
		writeError(w, apperr.NewNotFound("Event"))
		return
	}

	writeJSON(w, event, http.StatusOK)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e models.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, apperr.NewValidation("invalid JSON body"))
		return
	}

	var missing []string
	for _, f := range []struct{ name, val string }{
		{"title", e.Title}, {"month", e.Month}, {"day", e.Day},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		writeError(w, apperr.NewValidation("missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	// the server owns event ids; anything the client sent is discarded
	e.ID = 0

	if _, err := h.eventRepo.CreateEvent(r.Context(), &e); err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}

	writeJSON(w, e, http.StatusCreated)
}

// eventPatch distinguishes omitted fields from zero values; the server-
// assigned id is never patched.
type eventPatch struct {
	Title        *string `json:"title"`
	Month        *string `json:"month"`
	Day          *string `json:"day"`
	Location     *string `json:"location"`
	Time         *string `json:"time"`
	Description  *string `json:"description"`
	Registration *string `json:"registration"`
}

func (p *eventPatch) applyTo(e *models.Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Month != nil {
		e.Month = *p.Month
	}
	if p.Day != nil {
		e.Day = *p.Day
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Registration != nil {
		e.Registration = *p.Registration
	}
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch eventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, apperr.NewValidation("invalid JSON body"))
		return
	}

	ctx := r.Context()

	event, err := h.eventRepo.GetEvent(ctx, id)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if event == nil {
		writeError(w, apperr.NewNotFound("Event"))
		return
	}

	patch.applyTo(event)

	if err := h.eventRepo.UpdateEvent(ctx, event); err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}

	writeJSON(w, event, http.StatusOK)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := h.eventRepo.DeleteEvent(r.Context(), id)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if !deleted {
		writeError(w, apperr.NewNotFound("Event"))
		return
	}

	writeJSON(w, map[string]string{"message": "Event deleted successfully"}, http.StatusOK)
}
