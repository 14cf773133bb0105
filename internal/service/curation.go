// internal/service/curation.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/audit"
	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/repository"
)

// CurationService manages the grant list that CURATED-policy organizations
// use to expose platform content. Grant and Revoke are idempotent so UI
// retries and "already removed" races need no special handling upstream.
type CurationService struct {
	curationRepo repository.CurationRepositoryIface
	questRepo    repository.QuestRepositoryIface
	orgRepo      repository.OrganizationRepositoryIface
	cache        *CacheService
	auditor      audit.Logger
}

func NewCurationService(
	curationRepo repository.CurationRepositoryIface,
	questRepo repository.QuestRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	cache *CacheService,
	auditor audit.Logger,
) *CurationService {
	return &CurationService{
		curationRepo: curationRepo,
		questRepo:    questRepo,
		orgRepo:      orgRepo,
		cache:        cache,
		auditor:      auditor,
	}
}

// Grant exposes one global quest to the organization. Curation exists only
// to surface platform content: a quest owned by any organization is rejected,
// which is what keeps one tenant from ever granting itself another tenant's
// content.
func (s *CurationService) Grant(ctx context.Context, caller *auth.Identity, orgID, questID uuid.UUID) error {
	if err := auth.RequireOrgAdmin(caller, orgID); err != nil {
		return err
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return err
	}

	quest, err := s.questRepo.FindByID(ctx, questID)
	if err != nil {
		return err
	}
	if !quest.Global() {
		return domain.ErrInvalidGrantTarget
	}

	grant := &model.CurationGrant{
		OrganizationID: orgID,
		QuestID:        questID,
		GrantedByID:    caller.UserID,
	}
	if err := s.curationRepo.Upsert(ctx, grant); err != nil {
		return err
	}

	s.cache.InvalidateCuratedIDs(ctx, orgID)
	s.auditor.LogGrant(ctx, orgID, questID, caller.UserID)

	return nil
}

// Revoke hard-deletes a grant. Revoking an absent grant is a no-op success.
func (s *CurationService) Revoke(ctx context.Context, caller *auth.Identity, orgID, questID uuid.UUID) error {
	if err := auth.RequireOrgAdmin(caller, orgID); err != nil {
		return err
	}

	if err := s.curationRepo.Delete(ctx, orgID, questID); err != nil {
		return err
	}

	s.cache.InvalidateCuratedIDs(ctx, orgID)
	s.auditor.LogRevoke(ctx, orgID, questID, caller.UserID)

	return nil
}

// ListQuestIDs returns the organization's full curated id set.
func (s *CurationService) ListQuestIDs(ctx context.Context, caller *auth.Identity, orgID uuid.UUID) ([]uuid.UUID, error) {
	if err := auth.RequireOrgAdmin(caller, orgID); err != nil {
		return nil, err
	}
	return s.curationRepo.FindQuestIDs(ctx, orgID)
}
