// internal/repository/organization.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/model"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*model.Organization, error)
	UpdatePolicy(ctx context.Context, id uuid.UUID, policy model.VisibilityPolicy) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	FindAllActivePaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create inserts the organization after checking slug uniqueness among active
// organizations. The partial unique index in the schema backs the same check;
// the transactional count gives a clean ErrSlugTaken instead of a driver error.
func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Organization{}).
			Where("slug = ? AND active = ?", org.Slug, true).
			Count(&count).Error; err != nil {
			return storeErr("checking slug uniqueness", err)
		}
		if count > 0 {
			return domain.ErrSlugTaken
		}

		if err := tx.Create(org).Error; err != nil {
			return storeErr("creating organization", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) || errors.Is(err, domain.ErrUnavailable) {
			return err
		}
		return storeErr("organization create transaction", err)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, storeErr("finding organization", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND active = ?", slug, true).
		First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, storeErr("finding organization by slug", err)
	}
	return &org, nil
}

// UpdatePolicy atomically replaces the policy value. Curation grants are
// policy-independent records and are deliberately left untouched, so moving
// away from CURATED and back later restores the prior curation state.
func (r *OrganizationRepository) UpdatePolicy(ctx context.Context, id uuid.UUID, policy model.VisibilityPolicy) error {
	result := r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", id).
		Update("visibility_policy", policy)
	if result.Error != nil {
		return storeErr("updating organization policy", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

// Deactivate soft-deletes the organization. Quests keep referencing it by id,
// so rows are never hard-deleted.
func (r *OrganizationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return storeErr("deactivating organization", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

// FindAllActivePaginated returns a page of active organizations plus the
// total count.
func (r *OrganizationRepository) FindAllActivePaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	var orgs []*model.Organization
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return nil, 0, storeErr("counting active organizations", err)
	}

	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Offset(offset).Limit(limit).
		Find(&orgs).Error; err != nil {
		return nil, 0, storeErr("finding paginated organizations", err)
	}

	return orgs, count, nil
}
