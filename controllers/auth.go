package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Mailer is what auth needs from the mail layer; tests swap in a recorder.
type Mailer interface {
	Send(to, subject, body string) error
}

type AuthController struct {
	Users  *stores.UserStore
	Mailer Mailer
	Redis  *redis.Client
}

func NewAuthController(users *stores.UserStore, mailer Mailer, rdb *redis.Client) *AuthController {
	return &AuthController{Users: users, Mailer: mailer, Redis: rdb}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := c.Users.FindByEmail(r.Context(), email); err == nil && existing != nil {
		utils.WriteError(w, http.StatusConflict, "email already registered")
		return
	} else if err != nil && !errors.Is(err, stores.ErrNotFound) {
		log.Printf("[auth] register lookup failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth] hashing failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := c.Users.Create(r.Context(), u); err != nil {
		log.Printf("[auth] register create failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if c.Mailer != nil {
		if err := c.Mailer.Send(u.Email, "Welcome to Chrenis",
			fmt.Sprintf("Hi %s, your account is ready.", u.Name)); err != nil {
			log.Printf("[auth] welcome mail to %s failed: %v", u.Email, err)
		}
	}

	token, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		log.Printf("[auth] token issue failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	u, err := c.Users.FindByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("[auth] login lookup failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		utils.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		log.Printf("[auth] token issue failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}

// POST /api/auth/logout — revokes the presented token's jti until it would
// have expired anyway. Without Redis this is a no-op acknowledgement.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	tokenStr := utils.ExtractBearerToken(r.Header.Get("Authorization"))
	if tokenStr == "" {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	claims, err := utils.ValidateAccessToken(tokenStr, c.Redis)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if c.Redis != nil && claims.JTI != "" {
		ttl := time.Until(claims.Exp)
		if ttl > 0 {
			if err := utils.RevokeJTI(c.Redis, claims.JTI, ttl); err != nil {
				log.Printf("[auth] revoke jti failed: %v", err)
			}
		}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
