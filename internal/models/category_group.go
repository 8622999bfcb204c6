package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryGroup groups categories, e.g. "Fixed costs" or "Savings".
type CategoryGroup struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:category_group_budget_name"`
	Name     string    `gorm:"uniqueIndex:category_group_budget_name"`
	Note     string
	System   bool // The auto-created group for payment categories
	Archived bool
}

func (g *CategoryGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

// Categories returns all categories in this group.
func (g CategoryGroup) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.
		Where(&Category{CategoryGroupID: g.ID}).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
