package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// callerIdentity returns the caller's identity, or nil for anonymous.
func callerIdentity(r *http.Request) *auth.Identity {
	return middleware.Identity(r.Context())
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps the error taxonomy to HTTP statuses.
// Validation and conflict errors carry an actionable message; forbidden and
// not-found responses stay minimal and non-distinguishing so a denied caller
// cannot probe for resource existence. Infrastructure failures are surfaced
// as retryable, never as an empty result.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSlug),
		errors.Is(err, domain.ErrInvalidPolicy),
		errors.Is(err, domain.ErrInvalidGrantTarget):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, domain.ErrSlugTaken):
		respondWithError(w, http.StatusConflict, "Slug already in use")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrQuestNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrUnavailable):
		respondWithError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
