// internal/model/quest.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestType string

const (
	QuestTypeLesson    QuestType = "lesson"
	QuestTypeChallenge QuestType = "challenge"
	QuestTypeProject   QuestType = "project"
)

// Quest is a catalog content item. A nil OwningOrganizationID marks a global,
// platform-authored quest.
type Quest struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title                string     `gorm:"type:text;not null" json:"title"`
	Description          string     `gorm:"type:text" json:"description"`
	Category             string     `gorm:"type:text;not null" json:"category"`
	QuestType            QuestType  `gorm:"type:text;not null;default:'lesson'" json:"quest_type"`
	OwningOrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"owning_organization_id,omitempty"`
	CreatedByID          uuid.UUID  `gorm:"type:uuid;not null" json:"created_by_id"`
	Active               bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Global reports whether the quest is platform-authored rather than owned by a
// single organization.
func (q *Quest) Global() bool {
	return q.OwningOrganizationID == nil
}
