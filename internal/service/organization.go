// internal/service/organization.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/audit"
	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// OrganizationService owns organization lifecycle and membership
// administration. Every mutating operation is gated before any store read so
// a denied caller learns nothing about the target.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryIface
	userRepo repository.UserRepositoryIface
	cache    *CacheService
	auditor  audit.Logger
	validate *validator.Validate
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	cache *CacheService,
	auditor audit.Logger,
) *OrganizationService {
	validate := validator.New()
	validate.RegisterValidation("orgslug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		cache:    cache,
		auditor:  auditor,
		validate: validate,
	}
}

type CreateOrganizationInput struct {
	Name     string                 `json:"name" validate:"required"`
	Slug     string                 `json:"slug" validate:"required,orgslug"`
	Policy   model.VisibilityPolicy `json:"visibility_policy" validate:"required"`
	Branding json.RawMessage        `json:"branding,omitempty"`
}

// Create provisions a new organization. Superadmin only.
func (s *OrganizationService) Create(ctx context.Context, caller *auth.Identity, input CreateOrganizationInput) (*model.Organization, error) {
	if err := auth.RequireSuperadmin(caller); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "orgslug" {
					return nil, domain.ErrInvalidSlug
				}
			}
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if !input.Policy.Valid() {
		return nil, domain.ErrInvalidPolicy
	}

	org := &model.Organization{
		Name:     input.Name,
		Slug:     input.Slug,
		Policy:   input.Policy,
		Active:   true,
		Branding: input.Branding,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.auditor.LogOrganizationCreate(ctx, org, caller.UserID)

	return org, nil
}

// Get returns one organization. Superadmin or that organization's admin.
func (s *OrganizationService) Get(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*model.Organization, error) {
	if err := auth.RequireOrgAdmin(caller, id); err != nil {
		return nil, err
	}
	return s.orgRepo.FindByID(ctx, id)
}

// GetBySlug resolves an active organization by its slug. Superadmin only.
func (s *OrganizationService) GetBySlug(ctx context.Context, caller *auth.Identity, slug string) (*model.Organization, error) {
	if err := auth.RequireSuperadmin(caller); err != nil {
		return nil, err
	}
	return s.orgRepo.FindBySlug(ctx, slug)
}

// ListActive returns a page of active organizations. Superadmin only.
func (s *OrganizationService) ListActive(ctx context.Context, caller *auth.Identity, offset, limit int) ([]*model.Organization, int64, error) {
	if err := auth.RequireSuperadmin(caller); err != nil {
		return nil, 0, err
	}
	return s.orgRepo.FindAllActivePaginated(ctx, offset, limit)
}

// UpdatePolicy switches the organization's visibility policy. Superadmin
// only. Curation grants are never touched: they go inert when the policy
// moves away from CURATED and come back if it returns.
func (s *OrganizationService) UpdatePolicy(ctx context.Context, caller *auth.Identity, id uuid.UUID, policy model.VisibilityPolicy) error {
	if err := auth.RequireSuperadmin(caller); err != nil {
		return err
	}

	if !policy.Valid() {
		return domain.ErrInvalidPolicy
	}

	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orgRepo.UpdatePolicy(ctx, id, policy); err != nil {
		return err
	}

	s.cache.InvalidateOrganization(ctx, id)
	s.auditor.LogPolicyChange(ctx, id, org.Policy, policy, caller.UserID)

	return nil
}

// Deactivate soft-deletes the organization. Superadmin only.
func (s *OrganizationService) Deactivate(ctx context.Context, caller *auth.Identity, id uuid.UUID) error {
	if err := auth.RequireSuperadmin(caller); err != nil {
		return err
	}

	if err := s.orgRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateOrganization(ctx, id)
	s.auditor.LogOrganizationDeactivate(ctx, id, caller.UserID)

	return nil
}

// SetUserOrgAdmin grants or revokes the org-admin role on a user. Allowed for
// a superadmin or an admin of the user's own organization. The role is
// meaningless without a membership, so unaffiliated users are rejected.
func (s *OrganizationService) SetUserOrgAdmin(ctx context.Context, caller *auth.Identity, userID uuid.UUID, admin bool) error {
	if caller == nil || (!caller.Superadmin && !caller.OrgAdmin) {
		return domain.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.OrganizationID == nil {
		return fmt.Errorf("%w: user has no organization", domain.ErrInvalidInput)
	}

	if err := auth.RequireOrgAdmin(caller, *user.OrganizationID); err != nil {
		return err
	}

	return s.userRepo.SetOrgAdmin(ctx, userID, admin)
}

// ReassignUser moves a user to another organization (or to none when orgID is
// nil). Superadmin only. Only the membership changes; the user's historical
// records stay untouched, so the transfer affects future visibility
// computations only.
func (s *OrganizationService) ReassignUser(ctx context.Context, caller *auth.Identity, userID uuid.UUID, orgID *uuid.UUID) error {
	if err := auth.RequireSuperadmin(caller); err != nil {
		return err
	}

	if orgID != nil {
		org, err := s.orgRepo.FindByID(ctx, *orgID)
		if err != nil {
			return err
		}
		if !org.Active {
			return domain.ErrOrganizationNotFound
		}
	}

	return s.userRepo.ReassignOrganization(ctx, userID, orgID)
}
