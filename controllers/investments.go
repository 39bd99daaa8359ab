package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/gorilla/mux"
)

type InvestmentController struct {
	Service *services.InvestmentService
}

func NewInvestmentController(svc *services.InvestmentService) *InvestmentController {
	return &InvestmentController{Service: svc}
}

// GET /api/investments
func (c *InvestmentController) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	rows, err := c.Service.ListInvestments(r.Context(), ident)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// POST /api/investments
func (c *InvestmentController) Create(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	var in services.CreateInvestmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	result, err := c.Service.CreateInvestment(r.Context(), ident, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

// GET /api/investments/{id}
func (c *InvestmentController) Get(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	inv, err := c.Service.GetInvestment(r.Context(), ident, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, inv)
}

// PUT /api/investments/{id}
func (c *InvestmentController) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	var in services.UpdateInvestmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	inv, err := c.Service.UpdateInvestment(r.Context(), ident, mux.Vars(r)["id"], in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, inv)
}

// DELETE /api/investments/{id}
func (c *InvestmentController) Delete(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	if err := c.Service.DeleteInvestment(r.Context(), ident, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
