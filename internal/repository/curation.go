// internal/repository/curation.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/questdeckhq/questdeck/internal/model"
)

type CurationRepositoryIface interface {
	Upsert(ctx context.Context, grant *model.CurationGrant) error
	Delete(ctx context.Context, orgID, questID uuid.UUID) error
	FindQuestIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error)
}

type CurationRepository struct {
	db *gorm.DB
}

func NewCurationRepository(db *gorm.DB) *CurationRepository {
	return &CurationRepository{db: db}
}

// Upsert records a grant. Re-granting is a no-op success: the composite
// primary key plus ON CONFLICT DO NOTHING makes idempotence a storage-layer
// guarantee, not just an application convention.
func (r *CurationRepository) Upsert(ctx context.Context, grant *model.CurationGrant) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(grant).Error; err != nil {
		return storeErr("creating curation grant", err)
	}
	return nil
}

// Delete removes a grant. Deleting an absent grant is a no-op success.
func (r *CurationRepository) Delete(ctx context.Context, orgID, questID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND quest_id = ?", orgID, questID).
		Delete(&model.CurationGrant{}).Error; err != nil {
		return storeErr("deleting curation grant", err)
	}
	return nil
}

// FindQuestIDs returns the full curated id set for an organization in one
// batch query.
func (r *CurationRepository) FindQuestIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.CurationGrant{}).
		Where("organization_id = ?", orgID).
		Pluck("quest_id", &ids).Error; err != nil {
		return nil, storeErr("finding curated quest ids", err)
	}
	return ids, nil
}
