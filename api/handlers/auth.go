package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/models"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// defaultRating is the score every account starts with
const defaultRating = 4.0

// Auth handles registration, login and the current-user lookup
type Auth struct {
	DB databases.UserDatabase
	M  api.MiddlewareDB
}

// RegisterHandler creates a new user account and returns an access token
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var body models.UserRegister
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	if email == "" || body.Password == "" {
		config.ErrorStatus("email and password are required", http.StatusBadRequest, w,
			fmt.Errorf("email == %s", email))
		return
	}
	if body.Role == "" {
		body.Role = models.UserRoleReviewer
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := a.DB.FindByEmail(ctx, email); err == nil {
		config.ErrorStatus("email already registered", http.StatusBadRequest, w,
			fmt.Errorf("email == %s", email))
		return
	} else if !errors.Is(err, workflow.ErrUserNotFound) {
		config.ErrorStatus("failed to check email", http.StatusInternalServerError, w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashed),
		FullName:  body.FullName,
		Role:      body.Role,
		BadgeID:   body.BadgeID,
		Rating:    defaultRating,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.DB.InsertOne(ctx, user); err != nil {
		config.ErrorStatus("failed to insert user", http.StatusInternalServerError, w, err)
		return
	}

	token, err := a.M.IssueToken(user.ID, user.Email, string(user.Role), r)
	if err != nil {
		config.ErrorStatus("failed to issue token", http.StatusInternalServerError, w, err)
		return
	}

	writeAuthResponse(w, http.StatusOK, token, user)
}

// LoginHandler verifies credentials and returns an access token
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var body models.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindByEmail(ctx, email)
	if err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	token, err := a.M.IssueToken(user.ID, user.Email, string(user.Role), r)
	if err != nil {
		config.ErrorStatus("failed to issue token", http.StatusInternalServerError, w, err)
		return
	}

	writeAuthResponse(w, http.StatusOK, token, *user)
}

// MeHandler returns the authenticated user
func (a Auth) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserIDFromContext(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, workflow.ErrUserNotFound) {
			config.ErrorStatus("user not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get user", http.StatusInternalServerError, w, err)
		return
	}

	responseBody, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

func writeAuthResponse(w http.ResponseWriter, code int, token string, user models.User) {
	responseBody, err := json.Marshal(models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(responseBody)
}
