package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	err := models.DB.Create(&models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(-10),
		Type:      "LOAN",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(-10),
	})

	assert.False(suite.T(), transaction.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransferCannotHaveCategory() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	err := models.DB.Create(&models.Transaction{
		AccountID:  account.ID,
		CategoryID: &category.ID,
		Amount:     decimal.NewFromFloat(-100),
		Type:       models.TransactionTypeTransfer,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransferWithCategory)
}

func (suite *TestSuiteStandard) TestSplitChildrenInheritFromParent() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	date := time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC)
	parent := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(-100),
		Date:      date,
	})

	child := suite.createTestTransaction(models.Transaction{
		ParentTransactionID: &parent.ID,
		CategoryID:          &category.ID,
		Amount:              decimal.NewFromFloat(-100),
	})

	assert.Equal(suite.T(), parent.AccountID, child.AccountID)
	assert.Equal(suite.T(), parent.Type, child.Type)
	assert.True(suite.T(), parent.Date.Equal(child.Date))

	children, err := parent.SplitChildren(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), children, 1)
}

func (suite *TestSuiteStandard) TestSplitOfSplit() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	parent := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(-100),
	})

	child := suite.createTestTransaction(models.Transaction{
		ParentTransactionID: &parent.ID,
		Amount:              decimal.NewFromFloat(-100),
	})

	err := models.DB.Create(&models.Transaction{
		ParentTransactionID: &child.ID,
		Amount:              decimal.NewFromFloat(-50),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrSplitOfSplit)
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(-10),
		Note:      "  Dinner with friends \t",
	})

	assert.Equal(suite.T(), "Dinner with friends", transaction.Note)
}
