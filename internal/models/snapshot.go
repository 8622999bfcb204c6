package models

import (
	"errors"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategorySnapshot contains the calculated budget figures for one
// category in one month.
type CategorySnapshot struct {
	ID        uuid.UUID       `json:"id" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // ID of the category
	Name      string          `json:"name" example:"Groceries"`                          // Name of the category
	GroupName string          `json:"groupName" example:"Everyday expenses"`             // Name of the category group
	System    bool            `json:"system" example:"false"`                            // Is this a payment category managed by the backend?
	Budgeted  decimal.Decimal `json:"budgeted" example:"200"`                            // The amount allocated to the category this month
	Activity  decimal.Decimal `json:"activity" example:"-50.25"`                         // The sum of transactions posted to the category this month
	Available decimal.Decimal `json:"available" example:"149.75"`                        // The amount left to spend, including rollover
	Goal      *Goal           `json:"goal"`                                              // The goal attached to the category, if any
}

// Snapshot is the full calculated state of a budget for one month.
type Snapshot struct {
	BudgetMonthID     uuid.UUID          `json:"budgetMonthId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // The ID of the BudgetMonth
	BudgetID          uuid.UUID          `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`      // The ID of the Budget
	Month             types.Month        `json:"month" example:"2006-05-01T00:00:00.000000Z"`                  // The month
	Income            decimal.Decimal    `json:"income" example:"2317.34"`                                     // The total income for the month
	Budgeted          decimal.Decimal    `json:"budgeted" example:"2100"`                                      // The sum of all allocations for the month
	AvailableToBudget decimal.Decimal    `json:"availableToBudget" example:"217.34"`                           // Income not yet assigned to any category
	Activity          decimal.Decimal    `json:"activity" example:"-133.70"`                                   // The sum of all category activity for the month
	Categories        []CategorySnapshot `json:"categories"`                                                   // Per-category figures
}

// Snapshot assembles the complete budget state for a month.
//
// Nothing in the snapshot is read from a stored balance: every figure is
// derived from the transaction and allocation history at call time, so a
// snapshot is consistent no matter which month is asked for first.
//
// It fails with ErrBudgetMonthNotFound when the month has no BudgetMonth
// row. Creating one is the caller's job, not the engine's.
func (b Budget) Snapshot(db *gorm.DB, month types.Month) (Snapshot, error) {
	var budgetMonth BudgetMonth
	err := db.
		Where(&BudgetMonth{BudgetID: b.ID}).
		Where("month = ?", month).
		First(&budgetMonth).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return Snapshot{}, ErrBudgetMonthNotFound
		}

		return Snapshot{}, err
	}

	result := Snapshot{
		BudgetMonthID: budgetMonth.ID,
		BudgetID:      b.ID,
		Month:         month,
		Categories:    make([]CategorySnapshot, 0),
	}

	// Resolve all credit card links once: payment category ID to account
	var creditAccounts []Account
	err = db.
		Where(&Account{BudgetID: b.ID}).
		Where("payment_category_id IS NOT NULL").
		Find(&creditAccounts).
		Error
	if err != nil {
		return Snapshot{}, err
	}

	paymentAccounts := make(map[uuid.UUID]Account, len(creditAccounts))
	for _, account := range creditAccounts {
		paymentAccounts[*account.PaymentCategoryID] = account
	}

	// All allocations for the month in one query
	var allocations []Allocation
	err = db.
		Where(&Allocation{BudgetMonthID: budgetMonth.ID}).
		Find(&allocations).
		Error
	if err != nil {
		return Snapshot{}, err
	}

	budgeted := make(map[uuid.UUID]decimal.Decimal, len(allocations))
	for _, allocation := range allocations {
		budgeted[allocation.CategoryID] = allocation.Amount
	}

	// All goals for the budget in one query
	var goals []Goal
	err = db.
		Joins("JOIN categories ON categories.id = goals.category_id AND categories.deleted_at IS NULL").
		Joins("JOIN category_groups ON category_groups.id = categories.category_group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.budget_id = ?", b.ID).
		Find(&goals).
		Error
	if err != nil {
		return Snapshot{}, err
	}

	goalFor := make(map[uuid.UUID]Goal, len(goals))
	for _, goal := range goals {
		goalFor[goal.CategoryID] = goal
	}

	var groups []CategoryGroup
	err = db.
		Where(&CategoryGroup{BudgetID: b.ID}).
		Order("name ASC").
		Find(&groups).
		Error
	if err != nil {
		return Snapshot{}, err
	}

	for _, group := range groups {
		categories, err := group.Categories(db)
		if err != nil {
			return Snapshot{}, err
		}

		for _, category := range categories {
			if category.Archived {
				continue
			}

			activity, err := category.Activity(db, month)
			if err != nil {
				return Snapshot{}, err
			}

			var paymentAccount *Account
			if account, ok := paymentAccounts[category.ID]; ok {
				paymentAccount = &account
			}

			available, err := category.available(db, month, paymentAccount)
			if err != nil {
				return Snapshot{}, err
			}

			snapshot := CategorySnapshot{
				ID:        category.ID,
				Name:      category.Name,
				GroupName: group.Name,
				System:    category.System,
				Budgeted:  budgeted[category.ID],
				Activity:  activity,
				Available: available,
			}

			if goal, ok := goalFor[category.ID]; ok {
				snapshot.Goal = &goal
			}

			result.Activity = result.Activity.Add(activity)
			result.Budgeted = result.Budgeted.Add(snapshot.Budgeted)
			result.Categories = append(result.Categories, snapshot)
		}
	}

	income, err := b.Income(db, month)
	if err != nil {
		return Snapshot{}, err
	}
	result.Income = income

	available, err := b.AvailableToBudget(db, month)
	if err != nil {
		return Snapshot{}, err
	}
	result.AvailableToBudget = available

	return result, nil
}
