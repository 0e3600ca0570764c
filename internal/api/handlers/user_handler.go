package handlers

import (
	"context"
	"net/http"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// UserService defines the user operations the CRUD API exposes
type UserService interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	Get(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, id string, user *entities.User) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}

// UserHandler handles user CRUD requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user entities.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), &user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var user entities.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("id"), &user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
