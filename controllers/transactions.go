package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/gorilla/mux"
)

type TransactionController struct {
	Service *services.TransactionService
}

func NewTransactionController(svc *services.TransactionService) *TransactionController {
	return &TransactionController{Service: svc}
}

// GET /api/transactions
func (c *TransactionController) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	rows, err := c.Service.ListTransactions(r.Context(), ident)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// POST /api/transactions
func (c *TransactionController) Create(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	var in services.CreateTransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	tx, err := c.Service.CreateTransaction(r.Context(), ident, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, tx)
}

// GET /api/transactions/{id}
func (c *TransactionController) Get(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	tx, err := c.Service.GetTransaction(r.Context(), ident, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tx)
}

// PUT /api/transactions/{id}
func (c *TransactionController) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	var in services.UpdateTransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	tx, err := c.Service.UpdateTransaction(r.Context(), ident, mux.Vars(r)["id"], in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tx)
}

// DELETE /api/transactions/{id}
func (c *TransactionController) Delete(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	if err := c.Service.DeleteTransaction(r.Context(), ident, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
