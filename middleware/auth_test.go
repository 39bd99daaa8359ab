package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/utils"
)

func TestAuthenticator_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken(42, "user@example.com", "user")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var got services.Identity
	auth := NewAuthenticator(nil)
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromRequest(r)
		if !ok {
			t.Fatal("identity missing from context")
		}
		got = ident
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "http://example.local/api/investments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got.UserID != 42 || got.Role != "user" {
		t.Fatalf("identity = %+v", got)
	}
}

func TestAuthenticator_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	auth := NewAuthenticator(nil)
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "http://example.local/api/investments", nil)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestAuthenticator_TamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken(42, "user@example.com", "user")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	auth := NewAuthenticator(nil)
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "http://example.local/api/investments", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	auth := NewAuthenticator(nil)

	protected := auth.Middleware(auth.RequireRole("admin", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("AdminPasses", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(1, "admin@example.com", "admin")
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "http://example.local/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, want 200", rec.Code)
		}
	})

	t.Run("UserForbidden", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(2, "user@example.com", "user")
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "http://example.local/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("code = %d, want 403", rec.Code)
		}
	})

	t.Run("AnonymousUnauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "http://example.local/api/users", nil)
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("code = %d, want 401", rec.Code)
		}
	})
}
