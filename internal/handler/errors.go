package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"ngoportal/internal/repository"
	"ngoportal/internal/service"
)

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Message: message}, statusCode)
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, "validation failed", http.StatusBadRequest)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}

	writeJSON(w, ErrorResponse{Message: "validation failed", Errors: fields}, http.StatusBadRequest)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Anything
// unrecognized is an internal error and only its presence is disclosed.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicateUsername):
		writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrInvalidCredentials):
		writeError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrSelfDeletion):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnsupportedMediaType):
		writeError(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, service.ErrPayloadTooLarge):
		writeError(w, err.Error(), http.StatusRequestEntityTooLarge)
	default:
		log.Printf("internal error: %v", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}

// parseID reads the {id} path variable; ids are positive integers, the
// rest is a 400 before any query runs.
func parseID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}

	return id, nil
}

// parseLimitOffset reads the optional pagination params. Zero means no
// limit; negative and malformed values are clamped to zero.
func parseLimitOffset(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
