// internal/repository/user.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/model"
)

// UserRepositoryIface covers membership reads and the two membership writes
// the platform administers. User provisioning itself lives with the upstream
// identity service.
type UserRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ReassignOrganization(ctx context.Context, userID uuid.UUID, orgID *uuid.UUID) error
	SetOrgAdmin(ctx context.Context, userID uuid.UUID, admin bool) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("finding user", err)
	}
	return &user, nil
}

// ReassignOrganization moves a user to a new organization (or to none). Only
// the membership columns change; the admin flag is cleared because it is
// scoped to the previous organization. All historical records stay untouched,
// so a transfer affects future visibility computations only.
func (r *UserRepository) ReassignOrganization(ctx context.Context, userID uuid.UUID, orgID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"organization_id": orgID,
			"is_org_admin":    false,
		})
	if result.Error != nil {
		return storeErr("reassigning user organization", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetOrgAdmin(ctx context.Context, userID uuid.UUID, admin bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_org_admin", admin)
	if result.Error != nil {
		return storeErr("updating org admin flag", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
