package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Budget errors
var ErrCurrencyInvalid = errors.New("the currency must be a valid ISO 4217 code")

// BudgetMonth errors
var (
	ErrBudgetMonthNotFound  = errors.New("there is no budget for this month")
	ErrBudgetMonthNotUnique = errors.New("there already is a budget for this month")
)

// Account errors
var (
	ErrAccountNameNotUnique = errors.New("the account name must be unique for the budget")
	ErrAccountTypeInvalid   = errors.New("the account type is invalid")
)

// Category errors
var (
	ErrCategoryNameNotUnique      = errors.New("the category name must be unique for the category group")
	ErrCategoryGroupNameNotUnique = errors.New("the category group name must be unique for the budget")
	ErrCategoryIsSystem           = errors.New("system categories cannot be renamed or deleted")
)

// Allocation errors
var (
	ErrAllocationNotUnique      = errors.New("there already is an allocation for this category and month")
	ErrAllocationAmountNegative = errors.New("allocation amounts must not be negative")
)

// Transaction errors
var (
	ErrTransactionTypeInvalid  = errors.New("the transaction type is invalid")
	ErrTransferWithCategory    = errors.New("transfers cannot have a category")
	ErrTransferSameAccount     = errors.New("the two accounts of a transfer must be different")
	ErrSplitAmountMismatch     = errors.New("the amounts of the split transactions must sum up to the amount of the parent transaction")
	ErrSplitParentWithCategory = errors.New("a transaction with splits cannot have a category itself")
	ErrSplitOfSplit            = errors.New("a split transaction cannot be split further")
)

// Payee errors
var ErrPayeeNameNotUnique = errors.New("the payee name must be unique for the budget")

// Goal errors
var (
	ErrGoalAmountNotPositive = errors.New("goal amounts must be positive")
	ErrGoalNotUnique         = errors.New("there already is a goal for this category")
)
