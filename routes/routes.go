package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dgeemedia/chrenis/controllers"
	"github.com/dgeemedia/chrenis/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Controllers bundles everything the router wires up. main builds it once
// after the stores and services are constructed.
type Controllers struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Projects      *controllers.ProjectController
	Investments   *controllers.InvestmentController
	Transactions  *controllers.TransactionController
	Notifications *controllers.NotificationController
	Payments      *controllers.PaymentController
}

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "chrenis-api",
	})
}

// InitRouter assembles the full route table. auth guards everything under
// /api except the catalog reads and the register/login pair.
func InitRouter(c Controllers, auth *middleware.Authenticator) *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for Docker health checks (root level)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	origins := []string{
		"http://localhost:3000", "http://localhost:8080",
		"http://127.0.0.1:3000", "http://127.0.0.1:8080",
	}
	if originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	api := r.PathPrefix("/api").Subrouter()

	// Catch-all OPTIONS handler for CORS preflight
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Credential endpoints get a tighter limit than the rest of the API.
	authLimiter := middleware.NewIPRateLimiter(30, 15*time.Minute)

	authed := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(http.Handler(h))
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(auth.RequireRole("admin", http.Handler(h)))
	}

	api.Handle("/auth/register", authLimiter.Middleware(http.HandlerFunc(c.Auth.Register))).Methods(http.MethodPost)
	api.Handle("/auth/login", authLimiter.Middleware(http.HandlerFunc(c.Auth.Login))).Methods(http.MethodPost)
	api.Handle("/auth/logout", http.HandlerFunc(c.Auth.Logout)).Methods(http.MethodPost)

	// Public catalog reads
	api.HandleFunc("/projects", c.Projects.List).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", c.Projects.Get).Methods(http.MethodGet)

	// Admin catalog writes
	api.Handle("/projects", adminOnly(c.Projects.Create)).Methods(http.MethodPost)
	api.Handle("/projects/{id}", adminOnly(c.Projects.Update)).Methods(http.MethodPut)
	api.Handle("/projects/{id}", adminOnly(c.Projects.Delete)).Methods(http.MethodDelete)

	api.Handle("/investments", authed(c.Investments.List)).Methods(http.MethodGet)
	api.Handle("/investments", authed(c.Investments.Create)).Methods(http.MethodPost)
	api.Handle("/investments/{id}", authed(c.Investments.Get)).Methods(http.MethodGet)
	api.Handle("/investments/{id}", authed(c.Investments.Update)).Methods(http.MethodPut)
	api.Handle("/investments/{id}", authed(c.Investments.Delete)).Methods(http.MethodDelete)

	api.Handle("/transactions", authed(c.Transactions.List)).Methods(http.MethodGet)
	api.Handle("/transactions", authed(c.Transactions.Create)).Methods(http.MethodPost)
	api.Handle("/transactions/{id}", authed(c.Transactions.Get)).Methods(http.MethodGet)
	api.Handle("/transactions/{id}", authed(c.Transactions.Update)).Methods(http.MethodPut)
	api.Handle("/transactions/{id}", authed(c.Transactions.Delete)).Methods(http.MethodDelete)

	api.Handle("/notifications", authed(c.Notifications.List)).Methods(http.MethodGet)
	api.Handle("/notifications/{id}/read", authed(c.Notifications.MarkRead)).Methods(http.MethodPost)

	api.Handle("/payments/session", authed(c.Payments.CreateSession)).Methods(http.MethodPost)

	// Account endpoints
	api.Handle("/users/me", authed(c.Users.Me)).Methods(http.MethodGet)
	api.Handle("/users", adminOnly(c.Users.List)).Methods(http.MethodGet)
	api.Handle("/users/{id}", adminOnly(c.Users.Get)).Methods(http.MethodGet)
	api.Handle("/users/{id}", adminOnly(c.Users.Update)).Methods(http.MethodPut)
	api.Handle("/users/{id}", adminOnly(c.Users.Delete)).Methods(http.MethodDelete)

	return r
}
