// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/service"
)

type OrganizationHandler struct {
	service *service.OrganizationService
}

func NewOrganizationHandler(service *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization provisions a new organization. Superadmin only.
func (h *OrganizationHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.service.Create(r.Context(), callerIdentity(r), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, org)
}

type OrganizationListResponse struct {
	BaseResponse
	Items []*model.Organization `json:"items"`
	Total int64                 `json:"total"`
}

// ListOrganizations returns a page of active organizations. Superadmin only.
func (h *OrganizationHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid offset")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), 50)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	orgs, total, err := h.service.ListActive(r.Context(), callerIdentity(r), offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrganizationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        orgs,
		Total:        total,
	})
}

// GetOrganization returns one organization for its admin or a superadmin.
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	org, err := h.service.Get(r.Context(), callerIdentity(r), orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

// GetOrganizationBySlug resolves an active organization by slug. Superadmin
// only.
func (h *OrganizationHandler) GetOrganizationBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "Invalid organization slug")
		return
	}

	org, err := h.service.GetBySlug(r.Context(), callerIdentity(r), slug)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

type UpdatePolicyRequest struct {
	Policy model.VisibilityPolicy `json:"visibility_policy"`
}

// UpdatePolicy switches the organization's visibility policy. Superadmin only.
func (h *OrganizationHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.UpdatePolicy(r.Context(), callerIdentity(r), orgID, req.Policy); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// DeactivateOrganization soft-deletes the organization. Superadmin only.
func (h *OrganizationHandler) DeactivateOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := h.service.Deactivate(r.Context(), callerIdentity(r), orgID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type SetUserAdminRequest struct {
	IsOrgAdmin bool `json:"is_org_admin"`
}

// SetUserAdmin grants or revokes the org-admin role on a user.
func (h *OrganizationHandler) SetUserAdmin(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req SetUserAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.SetUserOrgAdmin(r.Context(), callerIdentity(r), userID, req.IsOrgAdmin); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type ReassignUserRequest struct {
	OrganizationID *uuid.UUID `json:"organization_id"`
}

// ReassignUser moves a user to another organization. Superadmin only.
func (h *OrganizationHandler) ReassignUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req ReassignUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.ReassignUser(r.Context(), callerIdentity(r), userID, req.OrganizationID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
