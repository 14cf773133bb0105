// internal/auth/gate.go
package auth

import (
	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/domain"
)

// RequireSuperadmin allows only the platform operator identity. It gates
// organization creation, policy changes, and membership reassignment.
func RequireSuperadmin(caller *Identity) error {
	if caller == nil || !caller.Superadmin {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOrgAdmin allows a platform superadmin, or an org-admin acting on
// their own organization. An admin of organization A acting on organization B
// is always denied; the denial is uniform so it never reveals whether the
// target organization exists.
func RequireOrgAdmin(caller *Identity, targetOrgID uuid.UUID) error {
	if caller == nil {
		return domain.ErrForbidden
	}
	if caller.Superadmin {
		return nil
	}
	if caller.OrgAdmin && caller.OrganizationID != nil && *caller.OrganizationID == targetOrgID {
		return nil
	}
	return domain.ErrForbidden
}
