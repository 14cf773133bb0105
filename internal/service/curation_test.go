package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/questdeckhq/questdeck/internal/audit"
	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/mocks"
	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/service"
)

func newTestCache() *service.CacheService {
	return service.NewCacheService(service.CacheConfig{
		TTL:         time.Minute,
		CleanupFreq: time.Minute,
	})
}

func newTestAuditor() audit.Logger {
	return audit.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCurationGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acmeID := uuid.New()
	globexID := uuid.New()
	adminID := uuid.New()

	acme := &model.Organization{ID: acmeID, Slug: "acme", Policy: model.PolicyCurated, Active: true}
	admin := &auth.Identity{UserID: adminID, OrganizationID: &acmeID, OrgAdmin: true}

	globalQuest := &model.Quest{ID: uuid.New(), Title: "Intro to Go", CreatedByID: uuid.New(), Active: true}
	globexQuest := &model.Quest{ID: uuid.New(), Title: "Globex internals", OwningOrganizationID: &globexID, CreatedByID: uuid.New(), Active: true}

	t.Run("granting a global quest succeeds and re-granting is a no-op success", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
		curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), acmeID).Return(acme, nil).Times(2)
		questRepo.EXPECT().FindByID(gomock.Any(), globalQuest.ID).Return(globalQuest, nil).Times(2)
		curationRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

		assert.NoError(t, svc.Grant(context.Background(), admin, acmeID, globalQuest.ID))
		assert.NoError(t, svc.Grant(context.Background(), admin, acmeID, globalQuest.ID))
	})

	t.Run("granting an organization-owned quest is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
		curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), acmeID).Return(acme, nil)
		questRepo.EXPECT().FindByID(gomock.Any(), globexQuest.ID).Return(globexQuest, nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

		err := svc.Grant(context.Background(), admin, acmeID, globexQuest.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidGrantTarget)
	})

	t.Run("admin of Acme granting for Globex is forbidden before any lookup", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
		curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

		err := svc.Grant(context.Background(), admin, globexID, globalQuest.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("superadmin may grant for any organization", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
		curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

		operator := &auth.Identity{UserID: uuid.New(), Superadmin: true}
		globex := &model.Organization{ID: globexID, Slug: "globex", Policy: model.PolicyCurated, Active: true}

		orgRepo.EXPECT().FindByID(gomock.Any(), globexID).Return(globex, nil)
		questRepo.EXPECT().FindByID(gomock.Any(), globalQuest.ID).Return(globalQuest, nil)
		curationRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

		assert.NoError(t, svc.Grant(context.Background(), operator, globexID, globalQuest.ID))
	})
}

func TestCurationRevoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acmeID := uuid.New()
	adminID := uuid.New()
	questID := uuid.New()
	admin := &auth.Identity{UserID: adminID, OrganizationID: &acmeID, OrgAdmin: true}

	t.Run("revoking an absent grant is a no-op success", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
		curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

		curationRepo.EXPECT().Delete(gomock.Any(), acmeID, questID).Return(nil)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

		assert.NoError(t, svc.Revoke(context.Background(), admin, acmeID, questID))
	})

	t.Run("revoking another organization's grant is forbidden", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
		curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

		cache := newTestCache()
		defer cache.Close()
		svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

		err := svc.Revoke(context.Background(), admin, uuid.New(), questID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCurationList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acmeID := uuid.New()
	admin := &auth.Identity{UserID: uuid.New(), OrganizationID: &acmeID, OrgAdmin: true}
	granted := []uuid.UUID{uuid.New(), uuid.New()}

	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	questRepo := mocks.NewMockQuestRepositoryIface(ctrl)
	curationRepo := mocks.NewMockCurationRepositoryIface(ctrl)

	curationRepo.EXPECT().FindQuestIDs(gomock.Any(), acmeID).Return(granted, nil)

	cache := newTestCache()
	defer cache.Close()
	svc := service.NewCurationService(curationRepo, questRepo, orgRepo, cache, newTestAuditor())

	ids, err := svc.ListQuestIDs(context.Background(), admin, acmeID)
	assert.NoError(t, err)
	assert.Equal(t, granted, ids)
}
