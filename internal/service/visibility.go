// internal/service/visibility.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/repository"
	"github.com/questdeckhq/questdeck/internal/visibility"
)

const (
	// MaxPageSize caps a single catalog page; larger requests are rejected
	// rather than clamped so callers notice.
	MaxPageSize = 100

	// DefaultPageSize is applied when the caller omits a limit.
	DefaultPageSize = 20
)

// QuestPage is one page of visible quests plus the total match count for
// pagination metadata.
type QuestPage struct {
	Items  []*model.Quest `json:"items"`
	Total  int64          `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

// ListVisibleInput carries caller-supplied filters and pagination. A zero
// Limit means DefaultPageSize.
type ListVisibleInput struct {
	Filters repository.QuestFilters
	Offset  int
	Limit   int
}

// VisibilityEngine computes the per-caller visible subset of the quest
// catalog. It trusts nothing client-supplied: the caller's membership and the
// organization's policy are read fresh (or from the short-TTL cache) on every
// request, and the resulting predicate is evaluated server-side in a single
// query.
type VisibilityEngine struct {
	orgRepo      repository.OrganizationRepositoryIface
	userRepo     repository.UserRepositoryIface
	questRepo    repository.QuestRepositoryIface
	curationRepo repository.CurationRepositoryIface
	cache        *CacheService
	log          *slog.Logger
}

func NewVisibilityEngine(
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	questRepo repository.QuestRepositoryIface,
	curationRepo repository.CurationRepositoryIface,
	cache *CacheService,
	log *slog.Logger,
) *VisibilityEngine {
	return &VisibilityEngine{
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		questRepo:    questRepo,
		curationRepo: curationRepo,
		cache:        cache,
		log:          log,
	}
}

// ListVisible resolves the caller's visibility rule and returns the matching
// page. A nil caller is anonymous. Store failures surface as
// domain.ErrUnavailable so an outage is never mistaken for an empty catalog.
func (e *VisibilityEngine) ListVisible(ctx context.Context, caller *auth.Identity, input ListVisibleInput) (*QuestPage, error) {
	if input.Limit == 0 {
		input.Limit = DefaultPageSize
	}
	if input.Limit < 0 || input.Limit > MaxPageSize || input.Offset < 0 {
		return nil, domain.ErrInvalidInput
	}

	rule, err := e.resolveRule(ctx, caller)
	if err != nil {
		return nil, err
	}

	items, total, err := e.questRepo.FindVisiblePaginated(ctx, rule, input.Filters, input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	return &QuestPage{
		Items:  items,
		Total:  total,
		Offset: input.Offset,
		Limit:  input.Limit,
	}, nil
}

// resolveRule builds the visibility predicate for one request. The
// organization record and the curated id set are read as one request-scoped
// snapshot: the policy is read first, and the curated set only when that
// snapshot says CURATED. A grant landing mid-request may or may not be
// reflected, which shifts the newest grant's visibility by at most one
// request.
func (e *VisibilityEngine) resolveRule(ctx context.Context, caller *auth.Identity) (visibility.Rule, error) {
	if caller == nil {
		return visibility.Anonymous(), nil
	}

	// Membership comes from the store, never from token claims.
	user, err := e.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			e.log.WarnContext(ctx, "authenticated caller unknown to store, serving anonymous catalog",
				"user_id", caller.UserID)
			return visibility.Anonymous(), nil
		}
		return visibility.Rule{}, err
	}

	if user.OrganizationID == nil {
		return visibility.Unaffiliated(user.ID), nil
	}

	org, err := e.organizationSnapshot(ctx, *user.OrganizationID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			e.log.WarnContext(ctx, "user references missing organization",
				"user_id", user.ID, "org_id", *user.OrganizationID)
			return visibility.Unaffiliated(user.ID), nil
		}
		return visibility.Rule{}, err
	}

	// Members of a deactivated organization fall back to the closed rule.
	if !org.Active {
		return visibility.Unaffiliated(user.ID), nil
	}

	if !org.Policy.Valid() {
		e.log.ErrorContext(ctx, "organization has unrecognized visibility policy, failing closed",
			"org_id", org.ID, "policy", org.Policy)
	}

	rule := visibility.Resolve(org.Policy, visibility.Caller{
		UserID:         user.ID,
		OrganizationID: org.ID,
	})

	if rule.Curated {
		ids, err := e.curatedSnapshot(ctx, org.ID)
		if err != nil {
			return visibility.Rule{}, err
		}
		rule = rule.WithCuratedIDs(ids)
	}

	return rule, nil
}

func (e *VisibilityEngine) organizationSnapshot(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	if org, ok := e.cache.GetOrganization(ctx, id); ok {
		return org, nil
	}

	org, err := e.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.cache.SetOrganization(ctx, org)
	return org, nil
}

func (e *VisibilityEngine) curatedSnapshot(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error) {
	if ids, ok := e.cache.GetCuratedIDs(ctx, orgID); ok {
		return ids, nil
	}

	ids, err := e.curationRepo.FindQuestIDs(ctx, orgID)
	if err != nil {
		return nil, err
	}

	e.cache.SetCuratedIDs(ctx, orgID, ids)
	return ids, nil
}
