package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgeemedia/chrenis/services"
)

func TestWriteServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"InvalidInput", services.ErrInvalidInput("amount below minimum"), http.StatusBadRequest, "amount below minimum"},
		{"NotFound", services.ErrNotFound("project not found"), http.StatusNotFound, "project not found"},
		{"Unauthenticated", services.ErrUnauthenticated(), http.StatusUnauthorized, ""},
		{"Forbidden", services.ErrForbidden(), http.StatusForbidden, ""},
		{"Internal", services.ErrInternal(errors.New("dial tcp: connection refused")), http.StatusInternalServerError, "internal error"},
		{"Unclassified", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "http://example.local/api/investments", nil)
			writeServiceError(rec, req, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("body decode: %v", err)
			}
			if tc.body != "" && body["message"] != tc.body {
				t.Fatalf("message = %q, want %q", body["message"], tc.body)
			}
			// raw engine text never leaks to the client
			if body["message"] == "dial tcp: connection refused" {
				t.Fatal("internal error detail leaked into response body")
			}
		})
	}
}
