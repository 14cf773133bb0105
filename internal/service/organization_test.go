package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/mocks"
	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/service"
)

func TestOrganizationCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operator := &auth.Identity{UserID: uuid.New(), Superadmin: true}

	valid := service.CreateOrganizationInput{
		Name:   "Acme Corp",
		Slug:   "acme-corp",
		Policy: model.PolicyAllGlobal,
	}

	t.Run("superadmin creates an organization", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, org *model.Organization) error {
				org.ID = uuid.New()
				return nil
			})

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		org, err := svc.Create(context.Background(), operator, valid)
		assert.NoError(t, err)
		assert.Equal(t, "acme-corp", org.Slug)
		assert.True(t, org.Active)
	})

	t.Run("non-superadmin is denied before any store access", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgID := uuid.New()
		admin := &auth.Identity{UserID: uuid.New(), OrganizationID: &orgID, OrgAdmin: true}

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		_, err := svc.Create(context.Background(), admin, valid)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("malformed slug is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		for _, slug := range []string{"Acme", "acme_corp", "-acme", "acme-", "acme corp"} {
			input := valid
			input.Slug = slug
			_, err := svc.Create(context.Background(), operator, input)
			assert.ErrorIs(t, err, domain.ErrInvalidSlug, "slug %q must be rejected", slug)
		}
	})

	t.Run("unknown policy value is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		input := valid
		input.Policy = model.VisibilityPolicy("EVERYTHING")
		_, err := svc.Create(context.Background(), operator, input)
		assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
	})

	t.Run("slug conflict surfaces from the store", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrSlugTaken)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		_, err := svc.Create(context.Background(), operator, valid)
		assert.ErrorIs(t, err, domain.ErrSlugTaken)
	})
}

func TestOrganizationUpdatePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operator := &auth.Identity{UserID: uuid.New(), Superadmin: true}
	orgID := uuid.New()
	acme := &model.Organization{ID: orgID, Slug: "acme", Policy: model.PolicyAllGlobal, Active: true}

	t.Run("policy switch invalidates the cached snapshot", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(acme, nil)
		orgRepo.EXPECT().UpdatePolicy(gomock.Any(), orgID, model.PolicyCurated).Return(nil)

		cache := newTestCache()
		defer cache.Close()
		cache.SetOrganization(context.Background(), acme)

		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		assert.NoError(t, svc.UpdatePolicy(context.Background(), operator, orgID, model.PolicyCurated))

		_, ok := cache.GetOrganization(context.Background(), orgID)
		assert.False(t, ok, "stale policy snapshot must be evicted")
	})

	t.Run("unknown policy is rejected without touching the store", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		err := svc.UpdatePolicy(context.Background(), operator, orgID, model.VisibilityPolicy("OPEN"))
		assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
	})

	t.Run("org admin cannot change policy", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		admin := &auth.Identity{UserID: uuid.New(), OrganizationID: &orgID, OrgAdmin: true}

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		err := svc.UpdatePolicy(context.Background(), admin, orgID, model.PolicyCurated)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestOrganizationDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operator := &auth.Identity{UserID: uuid.New(), Superadmin: true}
	orgID := uuid.New()

	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	orgRepo.EXPECT().Deactivate(gomock.Any(), orgID).Return(nil)

	cache := newTestCache()
	defer cache.Close()
	cache.SetOrganization(context.Background(), &model.Organization{ID: orgID, Active: true})

	svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

	assert.NoError(t, svc.Deactivate(context.Background(), operator, orgID))

	_, ok := cache.GetOrganization(context.Background(), orgID)
	assert.False(t, ok)
}

func TestSetUserOrgAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acmeID := uuid.New()
	globexID := uuid.New()
	targetID := uuid.New()
	target := &model.User{ID: targetID, OrganizationID: &acmeID}

	t.Run("org admin promotes a member of their own org", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		admin := &auth.Identity{UserID: uuid.New(), OrganizationID: &acmeID, OrgAdmin: true}
		userRepo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil)
		userRepo.EXPECT().SetOrgAdmin(gomock.Any(), targetID, true).Return(nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		assert.NoError(t, svc.SetUserOrgAdmin(context.Background(), admin, targetID, true))
	})

	t.Run("admin of another org is denied", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		admin := &auth.Identity{UserID: uuid.New(), OrganizationID: &globexID, OrgAdmin: true}
		userRepo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		err := svc.SetUserOrgAdmin(context.Background(), admin, targetID, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("non-admin caller is denied without any store access", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		member := &auth.Identity{UserID: uuid.New(), OrganizationID: &acmeID}

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		err := svc.SetUserOrgAdmin(context.Background(), member, targetID, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unaffiliated target is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		operator := &auth.Identity{UserID: uuid.New(), Superadmin: true}
		loner := &model.User{ID: targetID}
		userRepo.EXPECT().FindByID(gomock.Any(), targetID).Return(loner, nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		err := svc.SetUserOrgAdmin(context.Background(), operator, targetID, true)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestReassignUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operator := &auth.Identity{UserID: uuid.New(), Superadmin: true}
	userID := uuid.New()
	orgID := uuid.New()

	t.Run("reassign to an active organization", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID, Active: true}, nil)
		userRepo.EXPECT().ReassignOrganization(gomock.Any(), userID, &orgID).Return(nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		assert.NoError(t, svc.ReassignUser(context.Background(), operator, userID, &orgID))
	})

	t.Run("reassign to a deactivated organization fails", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID, Active: false}, nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		err := svc.ReassignUser(context.Background(), operator, userID, &orgID)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})

	t.Run("clearing membership skips the organization lookup", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().ReassignOrganization(gomock.Any(), userID, (*uuid.UUID)(nil)).Return(nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewOrganizationService(orgRepo, userRepo, cache, newTestAuditor())

		assert.NoError(t, svc.ReassignUser(context.Background(), operator, userID, nil))
	})
}
