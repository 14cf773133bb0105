// internal/repository/quest.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/questdeckhq/questdeck/internal/domain"
	"github.com/questdeckhq/questdeck/internal/model"
	"github.com/questdeckhq/questdeck/internal/visibility"
)

// QuestFilters are the caller-supplied catalog filters, applied alongside the
// visibility rule in the same query.
type QuestFilters struct {
	Category  string
	QuestType string
	Search    string
}

type QuestRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quest, error)
	FindVisiblePaginated(ctx context.Context, rule visibility.Rule, filters QuestFilters, offset, limit int) ([]*model.Quest, int64, error)
}

type QuestRepository struct {
	db *gorm.DB
}

func NewQuestRepository(db *gorm.DB) *QuestRepository {
	return &QuestRepository{db: db}
}

func (r *QuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Quest, error) {
	var quest model.Quest
	if err := r.db.WithContext(ctx).First(&quest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, storeErr("finding quest", err)
	}
	return &quest, nil
}

// FindVisiblePaginated applies the visibility rule and filters server-side in
// a single query, returning the page and the total match count.
func (r *QuestRepository) FindVisiblePaginated(ctx context.Context, rule visibility.Rule, filters QuestFilters, offset, limit int) ([]*model.Quest, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Quest{})
	query = applyRule(query, rule)
	query = applyFilters(query, filters)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, storeErr("counting visible quests", err)
	}

	var quests []*model.Quest
	if err := query.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&quests).Error; err != nil {
		return nil, 0, storeErr("finding visible quests", err)
	}

	return quests, count, nil
}

// applyRule translates the visibility rule into SQL. This is the query-side
// twin of visibility.Rule.Matches; the two must admit the same quests.
func applyRule(db *gorm.DB, rule visibility.Rule) *gorm.DB {
	db = db.Where("active = ?", true)

	var conds []string
	var args []interface{}

	if rule.IncludeGlobal {
		conds = append(conds, "owning_organization_id IS NULL")
	}
	if rule.Curated && len(rule.CuratedIDs) > 0 {
		conds = append(conds, "id IN ?")
		args = append(args, rule.CuratedIDs)
	}
	if rule.OrganizationID != nil {
		conds = append(conds, "owning_organization_id = ?")
		args = append(args, *rule.OrganizationID)
	}
	if rule.CreatedByID != nil {
		conds = append(conds, "created_by_id = ?")
		args = append(args, *rule.CreatedByID)
	}

	// A rule with no admitting branch denies everything.
	if len(conds) == 0 {
		return db.Where("1 = 0")
	}

	return db.Where(strings.Join(conds, " OR "), args...)
}

func applyFilters(db *gorm.DB, filters QuestFilters) *gorm.DB {
	if filters.Category != "" {
		db = db.Where("category = ?", filters.Category)
	}
	if filters.QuestType != "" {
		db = db.Where("quest_type = ?", filters.QuestType)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	return db
}
