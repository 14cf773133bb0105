// internal/handler/curation.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/service"
)

type CurationHandler struct {
	service *service.CurationService
}

func NewCurationHandler(service *service.CurationService) *CurationHandler {
	return &CurationHandler{service: service}
}

type CurationListResponse struct {
	BaseResponse
	QuestIDs []uuid.UUID `json:"quest_ids"`
}

// ListGrants returns the organization's curated quest ids.
func (h *CurationHandler) ListGrants(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	ids, err := h.service.ListQuestIDs(r.Context(), callerIdentity(r), orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CurationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		QuestIDs:     ids,
	})
}

type GrantRequest struct {
	QuestID uuid.UUID `json:"quest_id"`
}

// CreateGrant exposes one global quest to the organization. Idempotent.
func (h *CurationHandler) CreateGrant(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestID == uuid.Nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.Grant(r.Context(), callerIdentity(r), orgID, req.QuestID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}

// DeleteGrant revokes a grant. Revoking an absent grant succeeds.
func (h *CurationHandler) DeleteGrant(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	questID, err := uuid.Parse(chi.URLParam(r, "questID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quest ID")
		return
	}

	if err := h.service.Revoke(r.Context(), callerIdentity(r), orgID, questID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
