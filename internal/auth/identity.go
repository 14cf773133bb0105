// internal/auth/identity.go
package auth

import "github.com/google/uuid"

// Identity is the authenticated caller resolved upstream and carried on the
// request. A nil *Identity means the caller is anonymous.
//
// Roles are claims on the identity, not a hardcoded credential: the platform
// operator mints tokens with Superadmin set, and org-admins carry OrgAdmin
// scoped to their own OrganizationID.
type Identity struct {
	UserID         uuid.UUID
	Email          string
	OrganizationID *uuid.UUID
	OrgAdmin       bool
	Superadmin     bool
}
