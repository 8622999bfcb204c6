package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payee is somebody money is paid to or received from.
type Payee struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:payee_budget_name"`
	Name     string    `gorm:"uniqueIndex:payee_budget_name"`
	Note     string
	Archived bool
}

func (p *Payee) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}
