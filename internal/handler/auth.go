package handler

import (
	"errors"
	"net/http"

	"github.com/campusgate/campusgate-go/internal/model"
	"github.com/campusgate/campusgate-go/internal/service"
)

// AuthHandler handles HTTP requests for registration, login, and logout.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			respond(w, http.StatusUnprocessableEntity, verr.Fields, "Validation failed")
			return
		}
		if errors.Is(err, service.ErrTokenIssuance) {
			respond(w, http.StatusInternalServerError, nil, "Could not create token")
			return
		}
		respond(w, http.StatusInternalServerError, nil, "Registration failed")
		return
	}

	respond(w, http.StatusCreated, resp, "Registration successful")
}

// HandleLogin handles POST /api/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			respond(w, http.StatusUnprocessableEntity, verr.Fields, "Validation failed")
			return
		}
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respond(w, http.StatusUnauthorized, nil, "Invalid credentials")
		case errors.Is(err, service.ErrTokenIssuance):
			respond(w, http.StatusInternalServerError, nil, "Could not create token")
		default:
			respond(w, http.StatusInternalServerError, nil, "Login failed")
		}
		return
	}

	respond(w, http.StatusOK, resp, "Login successful")
}

// HandleLogout handles POST /api/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req model.LogoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Logout(r.Context(), req.Token); err != nil {
		respond(w, http.StatusInternalServerError, nil, "Failed to logout, please try again")
		return
	}

	respond(w, http.StatusOK, nil, "Successfully logged out")
}
