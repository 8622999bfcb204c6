package models

import (
	"strings"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalType describes what a goal is saving towards.
type GoalType string

const (
	GoalTypeSaving   GoalType = "SAVING"
	GoalTypeSpending GoalType = "SPENDING"
	GoalTypeDebt     GoalType = "DEBT"
)

// Goal is a savings, spending or debt target attached to a category.
//
// Goals are read-only inputs to the snapshot: the engine reports them
// alongside the category figures but never computes against them.
type Goal struct {
	DefaultModel
	Name       string
	Note       string
	Category   Category        `json:"-"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:goal_category"`
	Type       GoalType
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	Month      types.Month     // The month the target should be reached in
	Archived   bool
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}
