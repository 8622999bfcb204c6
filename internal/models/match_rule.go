package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule suggests a category for new transactions by matching the
// payee name against a glob pattern.
type MatchRule struct {
	DefaultModel
	Budget     Budget    `json:"-"`
	BudgetID   uuid.UUID
	Priority   uint      // Lower priority wins
	Match      string    // Glob pattern matched against the payee name
	Category   Category  `json:"-"`
	CategoryID uuid.UUID
}

func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)

	return nil
}

// MatchCategory returns the category ID of the first match rule whose
// pattern matches the payee name, or nil when no rule matches.
func (b Budget) MatchCategory(db *gorm.DB, payeeName string) (*uuid.UUID, error) {
	var rules []MatchRule

	err := db.
		Where(&MatchRule{BudgetID: b.ID}).
		Order("priority ASC").
		Find(&rules).
		Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, payeeName) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
