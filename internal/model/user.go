// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	DisplayName    string     `gorm:"type:text;not null" json:"display_name"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`
	IsOrgAdmin     bool       `gorm:"not null;default:false" json:"is_org_admin"`
	IsSuperadmin   bool       `gorm:"not null;default:false" json:"is_superadmin"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
