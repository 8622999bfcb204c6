package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{
		Name:     "  Household ",
		Note:     " For the family\t",
		Currency: " eur ",
	})

	assert.Equal(suite.T(), "Household", budget.Name)
	assert.Equal(suite.T(), "For the family", budget.Note)
	assert.Equal(suite.T(), "EUR", budget.Currency)
}

func (suite *TestSuiteStandard) TestBudgetCurrencyInvalid() {
	err := models.DB.Create(&models.Budget{
		Name:     "Some budget",
		Currency: "DOUBLOONS",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestBudgetCurrencyEmpty() {
	// An empty currency is allowed, it simply stays unset
	budget := suite.createTestBudget(models.Budget{Name: "No currency"})
	assert.Equal(suite.T(), "", budget.Currency)
}
