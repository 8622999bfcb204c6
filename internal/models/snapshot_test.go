package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSnapshotMonthNotFound() {
	budget := suite.createTestBudget(models.Budget{})

	_, err := budget.Snapshot(models.DB, types.NewMonth(2022, 3))
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotFound)
}

func (suite *TestSuiteStandard) TestSnapshot() {
	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	visa := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Visa", Type: models.AccountTypeCredit})

	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID, Name: "Everyday expenses"})
	groceries := suite.createTestCategory(models.Category{CategoryGroupID: group.ID, Name: "Groceries"})
	savings := suite.createTestCategory(models.Category{CategoryGroupID: group.ID, Name: "Savings"})

	march := types.NewMonth(2022, 3)
	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Amount:    decimal.NewFromFloat(2000),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	_, err := budgetMonth.SetAllocation(models.DB, groceries.ID, decimal.NewFromFloat(200))
	assert.Nil(suite.T(), err)
	_, err = budgetMonth.SetAllocation(models.DB, savings.ID, decimal.NewFromFloat(100))
	assert.Nil(suite.T(), err)

	// Groceries bought with the card
	suite.createTestTransaction(models.Transaction{
		AccountID:  visa.ID,
		CategoryID: &groceries.ID,
		Amount:     decimal.NewFromFloat(-40),
		Date:       time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	snapshot, err := budget.Snapshot(models.DB, march)
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), budgetMonth.ID, snapshot.BudgetMonthID)
	assert.Equal(suite.T(), budget.ID, snapshot.BudgetID)
	assert.True(suite.T(), snapshot.Income.Equal(decimal.NewFromFloat(2000)), "Income is wrong: %v", snapshot.Income)
	assert.True(suite.T(), snapshot.Budgeted.Equal(decimal.NewFromFloat(300)), "Budgeted is wrong: %v", snapshot.Budgeted)
	assert.True(suite.T(), snapshot.AvailableToBudget.Equal(decimal.NewFromFloat(1700)), "Available to budget is wrong: %v", snapshot.AvailableToBudget)

	// Groceries, Savings and the auto-created Visa Payment category
	assert.Len(suite.T(), snapshot.Categories, 3)

	byName := make(map[string]models.CategorySnapshot)
	for _, category := range snapshot.Categories {
		byName[category.Name] = category
	}

	groceriesSnapshot := byName["Groceries"]
	assert.Equal(suite.T(), "Everyday expenses", groceriesSnapshot.GroupName)
	assert.True(suite.T(), groceriesSnapshot.Budgeted.Equal(decimal.NewFromFloat(200)), "Groceries budgeted is wrong: %v", groceriesSnapshot.Budgeted)
	assert.True(suite.T(), groceriesSnapshot.Activity.Equal(decimal.NewFromFloat(-40)), "Groceries activity is wrong: %v", groceriesSnapshot.Activity)
	assert.True(suite.T(), groceriesSnapshot.Available.Equal(decimal.NewFromFloat(160)), "Groceries available is wrong: %v", groceriesSnapshot.Available)

	savingsSnapshot := byName["Savings"]
	assert.True(suite.T(), savingsSnapshot.Available.Equal(decimal.NewFromFloat(100)), "Savings available is wrong: %v", savingsSnapshot.Available)

	// The card was charged 40 and not paid yet
	paymentSnapshot := byName["Visa Payment"]
	assert.True(suite.T(), paymentSnapshot.System)
	assert.Equal(suite.T(), "Payments", paymentSnapshot.GroupName)
	assert.True(suite.T(), paymentSnapshot.Available.Equal(decimal.NewFromFloat(40)), "Payment category available is wrong: %v", paymentSnapshot.Available)
}

func (suite *TestSuiteStandard) TestSnapshotSkipsArchivedCategories() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	suite.createTestCategory(models.Category{CategoryGroupID: group.ID, Name: "Active"})
	suite.createTestCategory(models.Category{CategoryGroupID: group.ID, Name: "Old", Archived: true})

	march := types.NewMonth(2022, 3)
	suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	snapshot, err := budget.Snapshot(models.DB, march)
	assert.Nil(suite.T(), err)

	assert.Len(suite.T(), snapshot.Categories, 1)
	assert.Equal(suite.T(), "Active", snapshot.Categories[0].Name)
}

func (suite *TestSuiteStandard) TestSnapshotIncludesGoals() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID, Name: "Vacation"})

	goal := suite.createTestGoal(models.Goal{
		CategoryID: category.ID,
		Type:       models.GoalTypeSaving,
		Amount:     decimal.NewFromFloat(1200),
		Month:      types.NewMonth(2022, 12),
	})

	march := types.NewMonth(2022, 3)
	suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	snapshot, err := budget.Snapshot(models.DB, march)
	assert.Nil(suite.T(), err)

	assert.Len(suite.T(), snapshot.Categories, 1)
	assert.NotNil(suite.T(), snapshot.Categories[0].Goal)
	assert.Equal(suite.T(), goal.ID, snapshot.Categories[0].Goal.ID)
}
