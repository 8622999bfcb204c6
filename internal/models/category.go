package models

import (
	"errors"
	"strings"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// availabilityWindow is the number of months the availability calculation
// looks into the past. Balances older than this do not roll over, which
// keeps a single calculation from scanning unbounded history.
const availabilityWindow = 24

// Category is the envelope money is budgeted into.
type Category struct {
	DefaultModel
	CategoryGroup   CategoryGroup `json:"-"`
	CategoryGroupID uuid.UUID     `gorm:"uniqueIndex:category_group_name"`
	Name            string        `gorm:"uniqueIndex:category_group_name"`
	Note            string
	System          bool // Payment categories are managed by the backend, not the user
	Archived        bool
}

// BeforeSave trims whitespace from all strings.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

// BeforeUpdate protects system categories from being renamed.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if c.System && tx.Statement.Changed("Name") {
		return ErrCategoryIsSystem
	}

	return nil
}

// BeforeDelete protects system categories from being deleted.
func (c *Category) BeforeDelete(_ *gorm.DB) error {
	if c.System {
		return ErrCategoryIsSystem
	}

	return nil
}

// Activity returns the sum of all transaction amounts posted to the
// category in the given month.
//
// Split children carry their category directly and split parents carry
// none, so summing over category_id includes splits exactly once.
// Transfers never have a category and are excluded the same way.
func (c Category) Activity(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var activity decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("category_id = ?", c.ID).
		Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1)).
		Where("deleted_at IS NULL").
		Find(&activity).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !activity.Valid {
		return decimal.Zero, nil
	}

	return activity.Decimal, nil
}

// Available derives the category's available balance for the month.
//
// The balance is never stored. It is computed from the allocation and
// activity history of the last availabilityWindow months: every month
// carries its non-negative remainder into the next one, overspending is
// floored at zero and does not travel forward as debt.
func (c Category) Available(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	paymentAccount, err := c.paymentAccount(db)
	if err != nil {
		return decimal.Zero, err
	}

	return c.available(db, month, paymentAccount)
}

// paymentAccount returns the credit account this category is the payment
// category for, or nil if there is none.
func (c Category) paymentAccount(db *gorm.DB) (*Account, error) {
	var account Account

	err := db.Where("payment_category_id = ?", c.ID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

// available runs the actual rollover walk. The payment account is passed
// in so that the snapshot assembler can resolve all credit links with a
// single query instead of one per category.
func (c Category) available(db *gorm.DB, month types.Month, paymentAccount *Account) (decimal.Decimal, error) {
	window := month.Window(availabilityWindow)
	first := window[0]

	budgetID, err := c.budgetID(db)
	if err != nil {
		return decimal.Zero, err
	}

	// All months of the window that have a budget
	var budgetMonths []BudgetMonth
	err = db.
		Where(&BudgetMonth{BudgetID: budgetID}).
		Where("month >= date(?) AND month < date(?)", first, month.AddDate(0, 1)).
		Find(&budgetMonths).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	hasBudget := make(map[string]bool, len(budgetMonths))
	for _, budgetMonth := range budgetMonths {
		hasBudget[budgetMonth.Month.String()] = true
	}

	// All allocations for the category in the window, in one query
	var allocated []struct {
		Month  types.Month     `gorm:"column:month"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	err = db.
		Table("allocations").
		Select("budget_months.month AS month, allocations.amount AS amount").
		Joins("JOIN budget_months ON budget_months.id = allocations.budget_month_id AND budget_months.deleted_at IS NULL").
		Where("allocations.category_id = ?", c.ID).
		Where("budget_months.month >= date(?) AND budget_months.month < date(?)", first, month.AddDate(0, 1)).
		Where("allocations.deleted_at IS NULL").
		Find(&allocated).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	budgeted := make(map[string]decimal.Decimal, len(allocated))
	for _, allocation := range allocated {
		budgeted[allocation.Month.String()] = allocation.Amount
	}

	// All activity for the category in the window, grouped by month
	var active []struct {
		Month  string          `gorm:"column:month"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	err = db.
		Table("transactions").
		Select("strftime('%Y-%m', date) AS month, SUM(amount) AS amount").
		Where("category_id = ?", c.ID).
		Where("date >= date(?) AND date < date(?)", first, month.AddDate(0, 1)).
		Where("deleted_at IS NULL").
		Group("strftime('%Y-%m', date)").
		Find(&active).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	activity := make(map[string]decimal.Decimal, len(active))
	for _, sum := range active {
		activity[sum.Month] = sum.Amount
	}

	available := decimal.Zero
	for _, walkMonth := range window {
		// Overspending does not carry into the next month
		if available.IsNegative() {
			available = decimal.Zero
		}

		// A month without a budget can neither allocate money nor
		// accrue debt
		if !hasBudget[walkMonth.String()] {
			continue
		}

		available = available.
			Add(budgeted[walkMonth.String()]).
			Add(activity[walkMonth.String()])
	}

	// Payment categories additionally track the net card utilization of
	// their account for the target month. The adjustment is recomputed
	// fresh every month and never rolls forward.
	if paymentAccount != nil {
		utilization, err := paymentAccount.NetUtilization(db, month)
		if err != nil {
			return decimal.Zero, err
		}

		available = available.Add(utilization)
	}

	return available, nil
}

// budgetID resolves the budget the category belongs to via its group.
func (c Category) budgetID(db *gorm.DB) (uuid.UUID, error) {
	var group CategoryGroup

	err := db.First(&group, "id = ?", c.CategoryGroupID).Error
	if err != nil {
		return uuid.Nil, err
	}

	return group.BudgetID, nil
}
