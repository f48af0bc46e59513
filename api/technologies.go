package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ttoweb/techportal/internal/apperr"
	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository"
)

type TechnologiesHandler struct {
	techRepo repository.TechnologyRepo
}

func NewTechnologiesHandler(tr repository.TechnologyRepo) *TechnologiesHandler {
	return &TechnologiesHandler{techRepo: tr}
}

func (h *TechnologiesHandler) List(w http.ResponseWriter, r *http.Request) {
	techs, err := h.techRepo.ListTechnologies(r.Context())
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}

	if techs == nil {
		techs = []models.Technology{}
	}

	writeJSON(w, techs, http.StatusOK)
}

func (h *TechnologiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tech, err := h.techRepo.GetTechnology(r.Context(), id)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if tech == nil {
		writeError(w, apperr.NewNotFound("Technology"))
		return
	}

	writeJSON(w, tech, http.StatusOK)
}

func (h *TechnologiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Technology
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, apperr.NewValidation("invalid JSON body"))
		return
	}

	var missing []string
	for _, f := range []struct{ name, val string }{
		{"id", t.ID}, {"docket", t.Docket}, {"name", t.Name}, {"description", t.Description},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		writeError(w, apperr.NewValidation("missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	// trl defaults to 1 when omitted; the 1-9 range is documented, not enforced
	if t.TRL == 0 {
		t.TRL = 1
	}

	if err := h.techRepo.CreateTechnology(r.Context(), &t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, apperr.NewConflict("Technology already exists"))
			return
		}
		writeError(w, apperr.NewInternal(err))
		return
	}

	writeJSON(w, t, http.StatusCreated)
}

// technologyPatch distinguishes omitted fields from zero values so updates
// merge instead of replacing. The logical id is immutable and never patched.
type technologyPatch struct {
	Docket                  *string               `json:"docket"`
	Name                    *string               `json:"name"`
	Description             *string               `json:"description"`
	Overview                *string               `json:"overview"`
	DetailedDescription     *string               `json:"detailedDescription"`
	Genre                   *string               `json:"genre"`
	TechnicalSpecifications *string               `json:"technicalSpecifications"`
	Innovators              *[]string             `json:"innovators"`
	Advantages              *[]string             `json:"advantages"`
	Applications            *[]string             `json:"applications"`
	UseCases                *[]string             `json:"useCases"`
	RelatedLinks            *[]models.RelatedLink `json:"relatedLinks"`
	TRL                     *int                  `json:"trl"`
	Spotlight               *bool                 `json:"spotlight"`
}

func (p *technologyPatch) applyTo(t *models.Technology) {
	if p.Docket != nil {
		t.Docket = *p.Docket
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Overview != nil {
		t.Overview = *p.Overview
	}
	if p.DetailedDescription != nil {
		t.DetailedDescription = *p.DetailedDescription
	}
	if p.Genre != nil {
		t.Genre = *p.Genre
	}
	if p.TechnicalSpecifications != nil {
		t.TechnicalSpecifications = *p.TechnicalSpecifications
	}
	if p.Innovators != nil {
		t.Innovators = *p.Innovators
	}
	if p.Advantages != nil {
		t.Advantages = *p.Advantages
	}
	if p.Applications != nil {
		t.Applications = *p.Applications
	}
	if p.UseCases != nil {
		t.UseCases = *p.UseCases
	}
	if p.RelatedLinks != nil {
		t.RelatedLinks = *p.RelatedLinks
	}
	if p.TRL != nil {
		t.TRL = *p.TRL
	}
	if p.Spotlight != nil {
		t.Spotlight = *p.Spotlight
	}
}

func (h *TechnologiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch technologyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, apperr.NewValidation("invalid JSON body"))
		return
	}

	ctx := r.Context()

	tech, err := h.techRepo.GetTechnology(ctx, id)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if tech == nil {
		writeError(w, apperr.NewNotFound("Technology"))
		return
	}

	patch.applyTo(tech)

	if err := h.techRepo.UpdateTechnology(ctx, tech); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, apperr.NewConflict("Technology already exists"))
			return
		}
		writeError(w, apperr.NewInternal(err))
		return
	}

	writeJSON(w, tech, http.StatusOK)
}

func (h *TechnologiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.techRepo.DeleteTechnology(r.Context(), id)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if !deleted {
		writeError(w, apperr.NewNotFound("Technology"))
		return
	}

	writeJSON(w, map[string]string{"message": "Technology deleted successfully"}, http.StatusOK)
}
