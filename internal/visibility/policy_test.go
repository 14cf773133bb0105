package visibility_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/visibility"
)

type catalog struct {
	globalActive   *model.Quest
	globalInactive *model.Quest
	acmeOwned      *model.Quest
	globexOwned    *model.Quest
}

func fixtures(acmeID, globexID uuid.UUID) catalog {
	return catalog{
		globalActive: &model.Quest{
			ID:          uuid.New(),
			Title:       "Intro to Go",
			CreatedByID: uuid.New(),
			Active:      true,
		},
		globalInactive: &model.Quest{
			ID:          uuid.New(),
			Title:       "Retired course",
			CreatedByID: uuid.New(),
			Active:      false,
		},
		acmeOwned: &model.Quest{
			ID:                   uuid.New(),
			Title:                "Acme onboarding",
			OwningOrganizationID: &acmeID,
			CreatedByID:          uuid.New(),
			Active:               true,
		},
		globexOwned: &model.Quest{
			ID:                   uuid.New(),
			Title:                "Globex internals",
			OwningOrganizationID: &globexID,
			CreatedByID:          uuid.New(),
			Active:               true,
		},
	}
}

func TestResolve(t *testing.T) {
	acmeID := uuid.New()
	globexID := uuid.New()
	userID := uuid.New()
	c := fixtures(acmeID, globexID)
	caller := visibility.Caller{UserID: userID, OrganizationID: acmeID}

	t.Run("ALL_GLOBAL admits global and own-org quests", func(t *testing.T) {
		rule := visibility.Resolve(model.PolicyAllGlobal, caller)

		assert.True(t, rule.Matches(c.globalActive))
		assert.True(t, rule.Matches(c.acmeOwned))
		assert.False(t, rule.Matches(c.globexOwned))
		assert.False(t, rule.Matches(c.globalInactive))
	})

	t.Run("CURATED admits only granted global quests", func(t *testing.T) {
		rule := visibility.Resolve(model.PolicyCurated, caller)

		assert.False(t, rule.Matches(c.globalActive), "ungranted global quest must stay hidden")

		rule = rule.WithCuratedIDs([]uuid.UUID{c.globalActive.ID})
		assert.True(t, rule.Matches(c.globalActive))
		assert.True(t, rule.Matches(c.acmeOwned))
		assert.False(t, rule.Matches(c.globexOwned))
	})

	t.Run("PRIVATE_ONLY admits only own-org quests", func(t *testing.T) {
		rule := visibility.Resolve(model.PolicyPrivateOnly, caller)

		assert.False(t, rule.Matches(c.globalActive))
		assert.True(t, rule.Matches(c.acmeOwned))
		assert.False(t, rule.Matches(c.globexOwned))
	})

	t.Run("unrecognized policy fails closed", func(t *testing.T) {
		rule := visibility.Resolve(model.VisibilityPolicy("EVERYTHING"), caller)

		assert.True(t, rule.Matches(c.globalActive))
		assert.False(t, rule.Matches(c.acmeOwned), "a bad policy value must never expose org content")
		assert.False(t, rule.Matches(c.globexOwned))
	})
}

func TestAnonymousIsolation(t *testing.T) {
	acmeID := uuid.New()
	globexID := uuid.New()
	c := fixtures(acmeID, globexID)

	rule := visibility.Anonymous()

	assert.True(t, rule.Matches(c.globalActive))
	assert.False(t, rule.Matches(c.globalInactive), "inactive global quests are hidden regardless of policy")
	assert.False(t, rule.Matches(c.acmeOwned))
	assert.False(t, rule.Matches(c.globexOwned))

	// A curated-only global quest is just as hidden: anonymous rules never
	// carry a curated set.
	assert.False(t, rule.Curated)
}

func TestOwnContentOverride(t *testing.T) {
	acmeID := uuid.New()
	globexID := uuid.New()
	authorID := uuid.New()

	// Authored while the user was in Globex, before a transfer to Acme.
	authored := &model.Quest{
		ID:                   uuid.New(),
		OwningOrganizationID: &globexID,
		CreatedByID:          authorID,
		Active:               true,
	}

	caller := visibility.Caller{UserID: authorID, OrganizationID: acmeID}

	for _, policy := range []model.VisibilityPolicy{
		model.PolicyAllGlobal,
		model.PolicyCurated,
		model.PolicyPrivateOnly,
	} {
		rule := visibility.Resolve(policy, caller)
		assert.True(t, rule.Matches(authored), "own authored quest must stay visible under %s", policy)
	}

	// The override never resurrects inactive content.
	authored.Active = false
	rule := visibility.Resolve(model.PolicyAllGlobal, caller)
	assert.False(t, rule.Matches(authored))
}

func TestUnaffiliated(t *testing.T) {
	acmeID := uuid.New()
	globexID := uuid.New()
	userID := uuid.New()
	c := fixtures(acmeID, globexID)

	rule := visibility.Unaffiliated(userID)

	assert.True(t, rule.Matches(c.globalActive))
	assert.False(t, rule.Matches(c.acmeOwned))

	own := &model.Quest{ID: uuid.New(), CreatedByID: userID, Active: true}
	assert.True(t, rule.Matches(own))
}

func TestZeroRuleDeniesEverything(t *testing.T) {
	c := fixtures(uuid.New(), uuid.New())

	var rule visibility.Rule
	assert.False(t, rule.Matches(c.globalActive))
	assert.False(t, rule.Matches(c.acmeOwned))
}
