package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"ngoportal/internal/middleware"
	"ngoportal/internal/repository"
	"ngoportal/internal/service"
)

// ResourceHandler serves the uniform contract for one entity. T is the
// row, C the create request, U the update request. Which operations are
// actually reachable, and which require a session, is decided where the
// routes are registered.
type ResourceHandler[T any, C any, U service.Patch] struct {
	svc         *service.ResourceService[T, C, U]
	validate    *validator.Validate
	filterParam string
}

func NewResourceHandler[T any, C any, U service.Patch](svc *service.ResourceService[T, C, U], validate *validator.Validate, filterParam string) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{
		svc:         svc,
		validate:    validate,
		filterParam: filterParam,
	}
}

func (h *ResourceHandler[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	var filter *repository.Filter
	if h.filterParam != "" {
		if value := r.URL.Query().Get(h.filterParam); value != "" {
			filter = &repository.Filter{Column: h.filterParam, Value: value}
		}
	}

	limit, offset := parseLimitOffset(r)

	items, err := h.svc.List(r.Context(), filter, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, items, http.StatusOK)
}

func (h *ResourceHandler[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, item, http.StatusOK)
}

func (h *ResourceHandler[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	ident, _ := middleware.IdentityFromContext(r.Context())

	item, err := h.svc.Create(r.Context(), req, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, item, http.StatusCreated)
}

func (h *ResourceHandler[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req U
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	item, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, item, http.StatusOK)
}

func (h *ResourceHandler[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, item, http.StatusOK)
}
