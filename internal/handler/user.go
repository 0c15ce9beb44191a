package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campusgate/campusgate-go/internal/model"
	"github.com/campusgate/campusgate-go/internal/service"
)

// UserHandler handles HTTP requests for user lookup, update, and deletion.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleGetUser handles GET /api/users/{id} requests.
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond(w, http.StatusNotFound, nil, "User not found")
			return
		}
		respond(w, http.StatusInternalServerError, nil, "Failed to retrieve user")
		return
	}

	respond(w, http.StatusOK, resp, "User retrieved successfully")
}

// HandleUpdateUser handles PUT /api/users/{id} requests.
func (h *UserHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			respond(w, http.StatusUnprocessableEntity, verr.Fields, "Validation failed")
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			respond(w, http.StatusNotFound, nil, "User not found")
			return
		}
		respond(w, http.StatusInternalServerError, nil, "Failed to update user")
		return
	}

	respond(w, http.StatusOK, resp, "User updated successfully")
}

// HandleDeleteUser handles DELETE /api/users/{id} requests.
func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond(w, http.StatusNotFound, nil, "User not found")
			return
		}
		respond(w, http.StatusInternalServerError, nil, "Failed to delete user")
		return
	}

	respond(w, http.StatusOK, nil, "User deleted successfully")
}

// userIDParam parses the {id} route parameter. A non-numeric id cannot name
// any user, so it reports 404 like a missing one.
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusNotFound, nil, "User not found")
		return 0, false
	}
	return id, true
}
