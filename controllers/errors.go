package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/utils"
)

// writeServiceError maps workflow error kinds onto HTTP statuses. Internal
// failures are logged with their cause but the response body stays generic.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var se *services.Error
	if errors.As(err, &se) {
		status := http.StatusInternalServerError
		switch se.Kind {
		case services.KindInvalidInput:
			status = http.StatusBadRequest
		case services.KindNotFound:
			status = http.StatusNotFound
		case services.KindUnauthenticated:
			status = http.StatusUnauthorized
		case services.KindForbidden:
			status = http.StatusForbidden
		case services.KindInternal:
			log.Printf("[http] %s %s internal error: %v", r.Method, r.URL.Path, se.Err)
		}
		utils.WriteError(w, status, se.Message)
		return
	}
	log.Printf("[http] %s %s unclassified error: %v", r.Method, r.URL.Path, err)
	utils.WriteError(w, http.StatusInternalServerError, "internal error")
}
