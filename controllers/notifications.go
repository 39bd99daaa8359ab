package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/gorilla/mux"
)

type NotificationController struct {
	Notifications *stores.NotificationStore
}

func NewNotificationController(notifications *stores.NotificationStore) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// GET /api/notifications — the caller's own notifications, newest first.
func (c *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromRequest(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	rows, err := c.Notifications.ListByUser(r.Context(), ident.UserID)
	if err != nil {
		log.Printf("[notifications] list failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == nil {
		rows = []models.Notification{}
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// POST /api/notifications/{id}/read — marks one of the caller's
// notifications as read. Scoping by user id means a foreign id 404s.
func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromRequest(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Notifications.MarkRead(r.Context(), id, ident.UserID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "notification not found")
			return
		}
		log.Printf("[notifications] mark read %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "read"})
}
