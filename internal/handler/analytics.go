// internal/handler/analytics.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/analytics"
	"github.com/questdeckhq/questdeck/internal/auth"
)

type AnalyticsHandler struct {
	store *analytics.Store
}

func NewAnalyticsHandler(store *analytics.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

// OrgStats serves the per-organization usage counters consumed by the
// analytics collaborator. Superadmin or that organization's admin.
func (h *AnalyticsHandler) OrgStats(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := auth.RequireOrgAdmin(callerIdentity(r), orgID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	stats, err := h.store.OrgStats(r.Context(), orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

type PlatformStatsResponse struct {
	BaseResponse
	ActiveOrganizations int64 `json:"active_organizations"`
}

// PlatformStats serves platform-wide counters. Superadmin only.
func (h *AnalyticsHandler) PlatformStats(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireSuperadmin(callerIdentity(r)); err != nil {
		respondWithDomainError(w, err)
		return
	}

	count, err := h.store.ActiveOrganizationCount(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PlatformStatsResponse{
		BaseResponse:        BaseResponse{Ok: true},
		ActiveOrganizations: count,
	})
}
