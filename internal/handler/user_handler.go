package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"ngoportal/internal/middleware"
	"ngoportal/internal/models"
	"ngoportal/internal/service"
)

// UserHandler is the one handler set that cannot ride the generic
// contract: creation hashes a password, deletion checks the caller.
type UserHandler struct {
	users    service.UserService
	validate *validator.Validate
}

func NewUserHandler(users service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{users: users, validate: validate}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.users.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, user, http.StatusCreated)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.users.Delete(r.Context(), id, ident.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}
