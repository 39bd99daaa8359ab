package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/gorilla/mux"
)

// ProjectController serves the public catalog reads and the admin-only
// writes. It talks to the store directly; there is no workflow logic here.
type ProjectController struct {
	Projects *stores.ProjectStore
}

func NewProjectController(projects *stores.ProjectStore) *ProjectController {
	return &ProjectController{Projects: projects}
}

// GET /api/projects — public, active projects only.
func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Projects.ListActive(r.Context())
	if err != nil {
		log.Printf("[projects] list failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == nil {
		rows = []models.Project{}
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// GET /api/projects/{id} — public.
func (c *ProjectController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := c.Projects.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "project not found")
			return
		}
		log.Printf("[projects] get %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

type createProjectRequest struct {
	Slug           string   `json:"slug" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	MinInvestment  *float64 `json:"min_investment"`
	ROI4moPercent  *float64 `json:"roi_4mo_percent"`
	ROI12moPercent *float64 `json:"roi_12mo_percent"`
	DurationMonths *int     `json:"duration_months"`
	Currency       string   `json:"currency"`
	Status         string   `json:"status"`
	Images         []string `json:"images"`
}

// POST /api/projects — admin. Missing numbers take the platform's demo
// defaults so seeded catalogs stay investable.
func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	p := &models.Project{
		Slug:           req.Slug,
		Title:          req.Title,
		Description:    req.Description,
		MinInvestment:  10000,
		ROI4moPercent:  12,
		ROI12moPercent: 35,
		DurationMonths: 4,
		Currency:       req.Currency,
		Status:         models.ProjectStatusActive,
		Images:         req.Images,
	}
	if req.MinInvestment != nil {
		p.MinInvestment = *req.MinInvestment
	}
	if req.ROI4moPercent != nil {
		p.ROI4moPercent = *req.ROI4moPercent
	}
	if req.ROI12moPercent != nil {
		p.ROI12moPercent = *req.ROI12moPercent
	}
	if req.DurationMonths != nil {
		p.DurationMonths = *req.DurationMonths
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	if err := c.Projects.Create(r.Context(), p); err != nil {
		log.Printf("[projects] create failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, p)
}

type updateProjectRequest struct {
	Slug           *string  `json:"slug"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	MinInvestment  *float64 `json:"min_investment"`
	ROI4moPercent  *float64 `json:"roi_4mo_percent"`
	ROI12moPercent *float64 `json:"roi_12mo_percent"`
	DurationMonths *int     `json:"duration_months"`
	Currency       *string  `json:"currency"`
	Status         *string  `json:"status"`
}

// PUT /api/projects/{id} — admin.
func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	fields := map[string]interface{}{}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.MinInvestment != nil {
		fields["min_investment"] = *req.MinInvestment
	}
	if req.ROI4moPercent != nil {
		fields["roi_4mo_percent"] = *req.ROI4moPercent
	}
	if req.ROI12moPercent != nil {
		fields["roi_12mo_percent"] = *req.ROI12moPercent
	}
	if req.DurationMonths != nil {
		fields["duration_months"] = *req.DurationMonths
	}
	if req.Currency != nil {
		fields["currency"] = *req.Currency
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	p, err := c.Projects.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "project not found")
			return
		}
		log.Printf("[projects] update %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// DELETE /api/projects/{id} — admin.
func (c *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "project not found")
			return
		}
		log.Printf("[projects] delete %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
