package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is the amount a user budgeted for a category in a specific
// month.
//
// The absence of a row means a budgeted amount of zero, so the engine
// only ever stores allocations that have been explicitly set.
type Allocation struct {
	DefaultModel
	BudgetMonth   BudgetMonth     `json:"-"`
	BudgetMonthID uuid.UUID       `gorm:"uniqueIndex:allocation_budget_month_category"`
	Category      Category        `json:"-"`
	CategoryID    uuid.UUID       `gorm:"uniqueIndex:allocation_budget_month_category"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave rejects negative amounts before they hit the database.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.Amount.IsNegative() {
		return ErrAllocationAmountNegative
	}

	return nil
}

// SetAllocation sets the budgeted amount for a category in this month.
//
// The write is a plain overwrite guarded by the unique index on
// (budget month, category), so retries are idempotent. Concurrent writes
// to the same cell race and the later one wins.
func (b BudgetMonth) SetAllocation(db *gorm.DB, categoryID uuid.UUID, amount decimal.Decimal) (Allocation, error) {
	if amount.IsNegative() {
		return Allocation{}, ErrAllocationAmountNegative
	}

	var allocation Allocation
	err := db.
		Where(Allocation{BudgetMonthID: b.ID, CategoryID: categoryID}).
		Assign(Allocation{Amount: amount}).
		FirstOrCreate(&allocation).
		Error
	if err != nil {
		return Allocation{}, err
	}

	return allocation, nil
}

// CopyPreviousMonth copies every allocation of the immediately preceding
// month into this month.
//
// Categories without an allocation in the preceding month are left
// untouched. When the preceding month has no budget, there is nothing to
// copy and the call is a no-op.
func (b BudgetMonth) CopyPreviousMonth(db *gorm.DB) error {
	var previous BudgetMonth
	err := db.
		Where(&BudgetMonth{BudgetID: b.BudgetID}).
		Where("month = ?", b.Month.AddDate(0, -1)).
		First(&previous).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return nil
		}

		return err
	}

	var allocations []Allocation
	err = db.
		Where(&Allocation{BudgetMonthID: previous.ID}).
		Find(&allocations).
		Error
	if err != nil {
		return err
	}

	for _, allocation := range allocations {
		_, err = b.SetAllocation(db, allocation.CategoryID, allocation.Amount)
		if err != nil {
			return err
		}
	}

	return nil
}
