package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/utils"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

type createSessionRequest struct {
	Amount   float64 `json:"amount"`
	Provider string  `json:"provider"`
}

// POST /api/payments/session — returns a checkout handle the client can
// reference when creating the investment.
func (c *PaymentController) CreateSession(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromRequest(r)
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	session, err := c.Service.CreateSession(r.Context(), ident, req.Amount, req.Provider)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, session)
}
