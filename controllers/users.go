package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	Users *stores.UserStore
}

func NewUserController(users *stores.UserStore) *UserController {
	return &UserController{Users: users}
}

// GET /api/users — admin.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Users.ListAll(r.Context())
	if err != nil {
		log.Printf("[users] list failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == nil {
		rows = []models.User{}
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// GET /api/users/me — any authenticated user.
func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromRequest(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	u, err := c.Users.FindByID(r.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[users] me lookup failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}

// GET /api/users/{id} — admin.
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	u, err := c.Users.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[users] get %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}

type updateUserRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	Role     *string  `json:"role"`
	Wallet   *float64 `json:"wallet_balance"`
}

// PUT /api/users/{id} — admin.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			utils.WriteError(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		hash, herr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if herr != nil {
			log.Printf("[users] hashing failed: %v", herr)
			utils.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		fields["password_hash"] = string(hash)
	}
	if req.Role != nil {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			utils.WriteError(w, http.StatusBadRequest, "invalid role")
			return
		}
		fields["role"] = *req.Role
	}
	if req.Wallet != nil {
		fields["wallet_balance"] = *req.Wallet
	}
	u, err := c.Users.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[users] update %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}

// DELETE /api/users/{id} — admin.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[users] delete %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
