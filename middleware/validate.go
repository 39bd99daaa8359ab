package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgeemedia/chrenis/utils"
)

// ValidateJSON decodes a JSON payload into dst and runs
// utils.ValidateStruct. It writes the error response itself; callers just
// return on a non-nil error.
func ValidateJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		utils.WriteError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return http.ErrNotSupported
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return err
	}
	if err := utils.ValidateStruct(dst); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}
