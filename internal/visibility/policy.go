// internal/visibility/policy.go

// Package visibility builds the per-caller predicate that decides which
// quests a catalog query may return. The predicate is a plain value so it can
// be unit-tested directly and translated to a single SQL condition by the
// quest repository.
package visibility

import (
	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/model"
)

// Caller identifies an organization member for rule resolution. Both fields
// come from the authoritative store, never from client input.
type Caller struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
}

// Rule is the visibility predicate for one request. Zero value denies
// everything.
type Rule struct {
	// IncludeGlobal admits every active global quest.
	IncludeGlobal bool

	// Curated admits the global quests in CuratedIDs. The id set is loaded
	// in one batch by the engine after resolution.
	Curated    bool
	CuratedIDs []uuid.UUID

	// OrganizationID admits quests owned by that organization.
	OrganizationID *uuid.UUID

	// CreatedByID admits quests authored by the caller under every policy,
	// including quests owned by an organization the caller has since left.
	CreatedByID *uuid.UUID
}

// Resolve maps an organization's policy to the caller's visibility rule.
// Pure and total: an unrecognized policy value is a data-integrity fault and
// resolves to the fail-closed rule, which admits no organization content.
func Resolve(policy model.VisibilityPolicy, caller Caller) Rule {
	userID := caller.UserID
	orgID := caller.OrganizationID

	switch policy {
	case model.PolicyAllGlobal:
		return Rule{
			IncludeGlobal:  true,
			OrganizationID: &orgID,
			CreatedByID:    &userID,
		}
	case model.PolicyCurated:
		return Rule{
			Curated:        true,
			OrganizationID: &orgID,
			CreatedByID:    &userID,
		}
	case model.PolicyPrivateOnly:
		return Rule{
			OrganizationID: &orgID,
			CreatedByID:    &userID,
		}
	default:
		return Unaffiliated(userID)
	}
}

// Anonymous is the fixed rule for callers with no identity: active global
// quests only, regardless of any organization's policy.
func Anonymous() Rule {
	return Rule{IncludeGlobal: true}
}

// Unaffiliated covers authenticated callers without an organization (a
// transient provisioning state) and doubles as the fail-closed rule: global
// quests plus the caller's own authored quests, nothing organization-owned.
func Unaffiliated(userID uuid.UUID) Rule {
	return Rule{
		IncludeGlobal: true,
		CreatedByID:   &userID,
	}
}

// WithCuratedIDs returns a copy of the rule carrying the granted quest ids.
func (r Rule) WithCuratedIDs(ids []uuid.UUID) Rule {
	r.CuratedIDs = ids
	return r
}

// Matches evaluates the rule against a single quest in memory. The quest
// repository applies the equivalent SQL condition; this form exists so the
// access rule is directly testable and usable on already-loaded records.
func (r Rule) Matches(q *model.Quest) bool {
	if !q.Active {
		return false
	}
	if r.CreatedByID != nil && q.CreatedByID == *r.CreatedByID {
		return true
	}
	if q.Global() {
		if r.IncludeGlobal {
			return true
		}
		if r.Curated {
			for _, id := range r.CuratedIDs {
				if id == q.ID {
					return true
				}
			}
		}
		return false
	}
	return r.OrganizationID != nil && *q.OwningOrganizationID == *r.OrganizationID
}
