package models

import (
	"fmt"
	"strings"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType describes what kind of account an Account is.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

// Valid reports whether the account type is one of the known types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash, AccountTypeCredit, AccountTypeInvestment:
		return true
	}

	return false
}

// Liability reports whether accounts of this type hold debt.
func (t AccountType) Liability() bool {
	return t == AccountTypeCredit
}

// OnBudgetDefault is the on-budget behavior accounts of this type inherit
// when they do not carry an explicit override.
func (t AccountType) OnBudgetDefault() bool {
	return t != AccountTypeInvestment
}

// Account represents an account of the user, e.g. a bank account or a
// credit card.
type Account struct {
	DefaultModel
	Budget            Budget      `json:"-"`
	BudgetID          uuid.UUID   `gorm:"uniqueIndex:account_budget_name"`
	Name              string      `gorm:"uniqueIndex:account_budget_name"`
	Note              string
	Type              AccountType
	OnBudget          *bool      // Overrides the default for the account type when set
	Archived          bool       // Closed accounts are kept for history, but hidden from normal flows
	PaymentCategoryID *uuid.UUID // Set for credit accounts: the category holding money set aside to pay this card
}

// IsOnBudget resolves the on-budget tri-state: an explicit override wins,
// otherwise the account type's default applies.
func (a Account) IsOnBudget() bool {
	if a.OnBudget != nil {
		return *a.OnBudget
	}

	return a.Type.OnBudgetDefault()
}

// BeforeSave trims whitespace and verifies the account type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if !a.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	return nil
}

// AfterCreate wires up the payment category for credit accounts.
//
// The category represents money set aside to pay this card. It is created
// in the same database transaction as the account, so an account create
// either succeeds with its payment category or not at all.
func (a *Account) AfterCreate(tx *gorm.DB) error {
	if a.Type != AccountTypeCredit || a.PaymentCategoryID != nil {
		return nil
	}

	var group CategoryGroup
	err := tx.Where(CategoryGroup{BudgetID: a.BudgetID, Name: paymentGroupName}).
		Assign(CategoryGroup{System: true}).
		FirstOrCreate(&group).Error
	if err != nil {
		return err
	}

	category := Category{
		CategoryGroupID: group.ID,
		Name:            fmt.Sprintf("%s Payment", a.Name),
		System:          true,
	}
	err = tx.Create(&category).Error
	if err != nil {
		return err
	}

	a.PaymentCategoryID = &category.ID

	// UpdateColumn skips the hooks, the zero values of the receiver must
	// not be validated again
	return tx.Model(&Account{}).Where("id = ?", a.ID).UpdateColumn("payment_category_id", category.ID).Error
}

// paymentGroupName is the name of the system category group that holds
// the auto-created payment categories.
const paymentGroupName = "Payments"

// NetUtilization computes the net credit card utilization for the month:
// the categorized charges on the account minus the payments made onto it.
//
// Charges are categorized expense transactions on the account (split
// children carry their category directly, so they are included and their
// uncategorized parents are not). Payments are the transfer legs with a
// positive amount landing on the account. The result is the amount by
// which the payment category's available sum has to rise so that paying
// the card off stays possible without budgeting twice.
func (a Account) NetUtilization(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var charges decimal.NullDecimal
	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("account_id = ?", a.ID).
		Where("type = ?", TransactionTypeExpense).
		Where("category_id IS NOT NULL").
		Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1)).
		Where("deleted_at IS NULL").
		Find(&charges).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	var payments decimal.NullDecimal
	err = db.
		Table("transactions").
		Select("SUM(amount)").
		Where("account_id = ?", a.ID).
		Where("type = ?", TransactionTypeTransfer).
		Where("amount > 0").
		Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1)).
		Where("deleted_at IS NULL").
		Find(&payments).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// Charges are stored negative, flip the sign so that a charge raises
	// the utilization
	return charges.Decimal.Neg().Sub(payments.Decimal), nil
}
