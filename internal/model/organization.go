// internal/model/organization.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type VisibilityPolicy string

const (
	// PolicyAllGlobal exposes every global quest plus the organization's own.
	PolicyAllGlobal VisibilityPolicy = "ALL_GLOBAL"
	// PolicyCurated exposes only explicitly granted global quests plus the
	// organization's own.
	PolicyCurated VisibilityPolicy = "CURATED"
	// PolicyPrivateOnly exposes only quests the organization authored.
	PolicyPrivateOnly VisibilityPolicy = "PRIVATE_ONLY"
)

// Valid reports whether p is one of the three enumerated policies. Anything
// else is a data-integrity fault and must be treated as deny.
func (p VisibilityPolicy) Valid() bool {
	switch p {
	case PolicyAllGlobal, PolicyCurated, PolicyPrivateOnly:
		return true
	}
	return false
}

type Organization struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string           `gorm:"type:text;not null" json:"name"`
	Slug      string           `gorm:"type:text;not null" json:"slug"`
	Policy    VisibilityPolicy `gorm:"column:visibility_policy;type:visibility_policy;not null;default:'ALL_GLOBAL'" json:"visibility_policy"`
	Active    bool             `gorm:"not null;default:true" json:"active"`
	Branding  json.RawMessage  `gorm:"type:jsonb" json:"branding,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
