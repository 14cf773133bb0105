// internal/model/curation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CurationGrant records that a CURATED-policy organization has elected to
// expose one global quest to its members. The composite primary key makes
// grants idempotent at the storage layer.
type CurationGrant struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primary_key" json:"organization_id"`
	QuestID        uuid.UUID `gorm:"type:uuid;primary_key" json:"quest_id"`
	GrantedByID    uuid.UUID `gorm:"type:uuid;not null" json:"granted_by_id"`
	CreatedAt      time.Time `json:"created_at"`
}
