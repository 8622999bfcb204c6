package models

import (
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetMonth is the monthly container for a budget.
//
// It is created lazily on first access to a month. The calculation engine
// never creates it: a month without a BudgetMonth row reads as "not
// budgeted yet" everywhere.
type BudgetMonth struct {
	DefaultModel
	Budget   Budget      `json:"-"`
	BudgetID uuid.UUID   `gorm:"uniqueIndex:budget_month_budget_month"`
	Month    types.Month `gorm:"uniqueIndex:budget_month_budget_month"`
	Note     string
}

// onBudgetFilter is the SQL resolution of the on-budget tri-state: an
// explicit override on the account wins, otherwise the type default
// applies. Only investment accounts default to off-budget.
const onBudgetFilter = "(accounts.on_budget = true OR (accounts.on_budget IS NULL AND accounts.type != 'INVESTMENT'))"

// Income returns the income for a budget in a given month.
//
// Income is the sum of all top-level income transactions on on-budget
// accounts. Split children are excluded since their parent already
// carries the full amount.
func (b Budget) Income(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var income decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.budget_id = ?", b.ID).
		Where(onBudgetFilter).
		Where("transactions.type = ?", TransactionTypeIncome).
		Where("transactions.parent_transaction_id IS NULL").
		Where("transactions.date >= date(?) AND transactions.date < date(?)", month, month.AddDate(0, 1)).
		Where("transactions.deleted_at IS NULL").
		Find(&income).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !income.Valid {
		return decimal.Zero, nil
	}

	return income.Decimal, nil
}

// Budgeted calculates the sum that has been allocated for a specific month.
func (b Budget) Budgeted(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var budgeted decimal.NullDecimal

	err := db.
		Table("allocations").
		Select("SUM(amount)").
		Joins("JOIN budget_months ON budget_months.id = allocations.budget_month_id AND budget_months.deleted_at IS NULL").
		Where("budget_months.budget_id = ?", b.ID).
		Where("budget_months.month >= date(?) AND budget_months.month < date(?)", month, month.AddDate(0, 1)).
		Where("allocations.deleted_at IS NULL").
		Find(&budgeted).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !budgeted.Valid {
		return decimal.Zero, nil
	}

	return budgeted.Decimal, nil
}

// AvailableToBudget derives the money that is not yet assigned to any
// category for the month.
//
// Like the category availability, it walks the availabilityWindow months
// ending at the target month: every budgeted month contributes its income
// minus its allocations, surpluses carry forward, deficits are floored at
// zero. Months without a BudgetMonth row contribute nothing.
func (b Budget) AvailableToBudget(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	window := month.Window(availabilityWindow)
	first := window[0]

	var budgetMonths []BudgetMonth
	err := db.
		Where(&BudgetMonth{BudgetID: b.ID}).
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

	// Income for the whole window, grouped by month
	var earned []struct {
		Month  string          `gorm:"column:month"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	err = db.
		Table("transactions").
		Select("strftime('%Y-%m', transactions.date) AS month, SUM(amount) AS amount").
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.budget_id = ?", b.ID).
		Where(onBudgetFilter).
		Where("transactions.type = ?", TransactionTypeIncome).
		Where("transactions.parent_transaction_id IS NULL").
		Where("transactions.date >= date(?) AND transactions.date < date(?)", first, month.AddDate(0, 1)).
		Where("transactions.deleted_at IS NULL").
		Group("strftime('%Y-%m', transactions.date)").
		Find(&earned).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	income := make(map[string]decimal.Decimal, len(earned))
	for _, sum := range earned {
		income[sum.Month] = sum.Amount
	}

	// Allocations for the whole window, grouped by month
	var allocated []struct {
		Month  types.Month     `gorm:"column:month"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	err = db.
		Table("allocations").
		Select("budget_months.month AS month, SUM(allocations.amount) AS amount").
		Joins("JOIN budget_months ON budget_months.id = allocations.budget_month_id AND budget_months.deleted_at IS NULL").
		Where("budget_months.budget_id = ?", b.ID).
		Where("budget_months.month >= date(?) AND budget_months.month < date(?)", first, month.AddDate(0, 1)).
		Where("allocations.deleted_at IS NULL").
		Group("budget_months.month").
		Find(&allocated).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	budgeted := make(map[string]decimal.Decimal, len(allocated))
	for _, sum := range allocated {
		budgeted[sum.Month.String()] = sum.Amount
	}

	available := decimal.Zero
	for _, walkMonth := range window {
		// Overbudgeting is not carried into the next month as debt
		if available.IsNegative() {
			available = decimal.Zero
		}

		if !hasBudget[walkMonth.String()] {
			continue
		}

		available = available.
			Add(income[walkMonth.String()]).
			Sub(budgeted[walkMonth.String()])
	}

	return available, nil
}
