package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalAmountNotPositive() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	tests := []struct {
		amount decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrGoalAmountNotPositive},
		{decimal.Zero, models.ErrGoalAmountNotPositive},
		{decimal.NewFromFloat(750), nil},
	}

	for _, tt := range tests {
		err := models.DB.Create(&models.Goal{
			CategoryID: category.ID,
			Type:       models.GoalTypeSaving,
			Amount:     tt.amount,
			Month:      types.NewMonth(2022, 12),
		}).Error

		if tt.err == nil {
			assert.Nil(suite.T(), err)
		} else {
			assert.ErrorIs(suite.T(), err, tt.err)
		}
	}
}

func (suite *TestSuiteStandard) TestGoalUniquePerCategory() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	suite.createTestGoal(models.Goal{
		CategoryID: category.ID,
		Type:       models.GoalTypeSaving,
		Amount:     decimal.NewFromFloat(1000),
		Month:      types.NewMonth(2022, 12),
	})

	err := models.DB.Create(&models.Goal{
		CategoryID: category.ID,
		Type:       models.GoalTypeSpending,
		Amount:     decimal.NewFromFloat(500),
		Month:      types.NewMonth(2023, 6),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrGoalNotUnique)
}
