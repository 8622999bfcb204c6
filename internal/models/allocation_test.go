package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSetAllocation() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2022, 3),
	})

	allocation, err := budgetMonth.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(200))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), allocation.Amount.Equal(decimal.NewFromFloat(200)))
}

func (suite *TestSuiteStandard) TestSetAllocationOverwrites() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2022, 3),
	})

	first, err := budgetMonth.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(200))
	assert.Nil(suite.T(), err)

	second, err := budgetMonth.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(150))
	assert.Nil(suite.T(), err)

	// The same row is updated, not a second one created
	assert.Equal(suite.T(), first.ID, second.ID)
	assert.True(suite.T(), second.Amount.Equal(decimal.NewFromFloat(150)), "Allocation amount is wrong: %v", second.Amount)

	var count int64
	models.DB.Model(&models.Allocation{}).Where("budget_month_id = ?", budgetMonth.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSetAllocationIdempotent() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2022, 3),
	})

	for i := 0; i < 3; i++ {
		_, err := budgetMonth.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(99.99))
		assert.Nil(suite.T(), err)
	}

	budgeted, err := budget.Budgeted(models.DB, budgetMonth.Month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), budgeted.Equal(decimal.NewFromFloat(99.99)), "Budgeted is wrong after repeated writes: %v", budgeted)
}

func (suite *TestSuiteStandard) TestSetAllocationNegative() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2022, 3),
	})

	_, err := budgetMonth.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(-10))
	assert.ErrorIs(suite.T(), err, models.ErrAllocationAmountNegative)
}

func (suite *TestSuiteStandard) TestCopyPreviousMonth() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})
	rent := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	april := march.AddDate(0, 1)

	marchBudget := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})
	aprilBudget := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: april})

	_, err := marchBudget.SetAllocation(models.DB, groceries.ID, decimal.NewFromFloat(200))
	assert.Nil(suite.T(), err)
	_, err = marchBudget.SetAllocation(models.DB, rent.ID, decimal.NewFromFloat(1500))
	assert.Nil(suite.T(), err)

	err = aprilBudget.CopyPreviousMonth(models.DB)
	assert.Nil(suite.T(), err)

	budgeted, err := budget.Budgeted(models.DB, april)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), budgeted.Equal(decimal.NewFromFloat(1700)), "Budgeted after copy is wrong: %v", budgeted)
}

func (suite *TestSuiteStandard) TestCopyPreviousMonthEmpty() {
	budget := suite.createTestBudget(models.Budget{})

	aprilBudget := suite.createTestBudgetMonth(models.BudgetMonth{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2022, 4),
	})

	// No March budget exists, nothing happens
	err := aprilBudget.CopyPreviousMonth(models.DB)
	assert.Nil(suite.T(), err)

	budgeted, err := budget.Budgeted(models.DB, aprilBudget.Month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), budgeted.IsZero())
}
