package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"medora-backend/app/dto"
	"medora-backend/app/models"
	"medora-backend/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid role")
		return
	}

	token, u, err := c.Auth.Signup(req.Username, req.Password, role, req.LinkedElderlyUsername)
	if errors.Is(err, services.ErrUsernameTaken) {
		writeError(w, http.StatusBadRequest, "username already exists")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer", Role: string(u.Role)})
}

// Token is the password-grant login endpoint; credentials arrive
// form-encoded.
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	username := r.PostFormValue("username")
	pass := r.PostFormValue("password")
	if username == "" || pass == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	token, u, err := c.Auth.Login(username, pass)
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer", Role: string(u.Role)})
}
