package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType describes which role a transaction plays in the budget.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Valid reports whether the transaction type is one of the known types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}

	return false
}

// Transaction represents a movement of money on an account.
//
// Split children reference their parent and carry their own category and
// amount, everything else is inherited from the parent. Transfer legs
// reference the opposite leg on the other account and never carry a
// category, so they are invisible to all category calculations.
type Transaction struct {
	DefaultModel
	Account               Account         `json:"-"`
	AccountID             uuid.UUID
	Category              *Category       `json:"-"`
	CategoryID            *uuid.UUID
	Payee                 *Payee          `json:"-"`
	PayeeID               *uuid.UUID
	Amount                decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date                  time.Time
	Type                  TransactionType
	Cleared               bool
	Note                  string
	ParentTransactionID   *uuid.UUID // Set on split children
	TransferTransactionID *uuid.UUID // Links the two legs of a transfer
}

// BeforeSave enforces the invariants that hold for every single
// transaction row and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Type == TransactionTypeTransfer && t.CategoryID != nil {
		return ErrTransferWithCategory
	}

	return nil
}

// BeforeCreate makes split children inherit date, account and type from
// their parent and keeps splits flat.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	err := t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if t.ParentTransactionID == nil {
		return nil
	}

	var parent Transaction
	err = tx.First(&parent, "id = ?", *t.ParentTransactionID).Error
	if err != nil {
		return err
	}

	if parent.ParentTransactionID != nil {
		return ErrSplitOfSplit
	}

	t.AccountID = parent.AccountID
	t.Date = parent.Date
	t.Type = parent.Type

	return nil
}

// AfterFind updates the date and timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// SplitChildren returns the split children of the transaction.
func (t Transaction) SplitChildren(db *gorm.DB) ([]Transaction, error) {
	var children []Transaction

	err := db.Where("parent_transaction_id = ?", t.ID).Find(&children).Error
	if err != nil {
		return nil, err
	}

	return children, nil
}
