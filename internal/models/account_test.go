package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTypeInvalid() {
	budget := suite.createTestBudget(models.Budget{})

	err := models.DB.Create(&models.Account{
		BudgetID: budget.ID,
		Name:     "Some Account",
		Type:     "GOLD_BARS",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAccountTypeInvalid)
}

func (suite *TestSuiteStandard) TestAccountNameUniquePerBudget() {
	budget := suite.createTestBudget(models.Budget{})
	suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	err := models.DB.Create(&models.Account{
		BudgetID: budget.ID,
		Name:     "Checking",
		Type:     models.AccountTypeChecking,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)

	// The same name on another budget is fine
	other := suite.createTestBudget(models.Budget{})
	suite.createTestAccount(models.Account{BudgetID: other.ID, Name: "Checking"})
}

func (suite *TestSuiteStandard) TestAccountIsOnBudget() {
	off := false
	on := true

	tests := []struct {
		name     string
		account  models.Account
		expected bool
	}{
		{"checking defaults on", models.Account{Type: models.AccountTypeChecking}, true},
		{"investment defaults off", models.Account{Type: models.AccountTypeInvestment}, false},
		{"override wins for checking", models.Account{Type: models.AccountTypeChecking, OnBudget: &off}, false},
		{"override wins for investment", models.Account{Type: models.AccountTypeInvestment, OnBudget: &on}, true},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.expected, tt.account.IsOnBudget(), tt.name)
	}
}

func (suite *TestSuiteStandard) TestAccountCreditCreatesPaymentCategory() {
	budget := suite.createTestBudget(models.Budget{})

	visa := suite.createTestAccount(models.Account{
		BudgetID: budget.ID,
		Name:     "Visa",
		Type:     models.AccountTypeCredit,
	})

	assert.NotNil(suite.T(), visa.PaymentCategoryID, "Credit accounts must get a payment category")

	var category models.Category
	err := models.DB.First(&category, "id = ?", *visa.PaymentCategoryID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Visa Payment", category.Name)
	assert.True(suite.T(), category.System)

	var group models.CategoryGroup
	err = models.DB.First(&group, "id = ?", category.CategoryGroupID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Payments", group.Name)
	assert.True(suite.T(), group.System)
}

func (suite *TestSuiteStandard) TestAccountCreditReusesPaymentGroup() {
	budget := suite.createTestBudget(models.Budget{})

	visa := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Visa", Type: models.AccountTypeCredit})
	amex := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Amex", Type: models.AccountTypeCredit})

	var visaCategory, amexCategory models.Category
	assert.Nil(suite.T(), models.DB.First(&visaCategory, "id = ?", *visa.PaymentCategoryID).Error)
	assert.Nil(suite.T(), models.DB.First(&amexCategory, "id = ?", *amex.PaymentCategoryID).Error)

	// Both payment categories live in the same system group
	assert.Equal(suite.T(), visaCategory.CategoryGroupID, amexCategory.CategoryGroupID)

	var count int64
	models.DB.Model(&models.CategoryGroup{}).Where("budget_id = ? AND system = true", budget.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestAccountNetUtilization() {
	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	visa := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Visa", Type: models.AccountTypeCredit})

	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)

	// A categorized charge on the card
	suite.createTestTransaction(models.Transaction{
		AccountID:  visa.ID,
		CategoryID: &groceries.ID,
		Amount:     decimal.NewFromFloat(-40),
		Date:       time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	// A payment from checking onto the card
	outgoing := suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Amount:    decimal.NewFromFloat(-15),
		Type:      models.TransactionTypeTransfer,
		Date:      time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:             visa.ID,
		Amount:                decimal.NewFromFloat(15),
		Type:                  models.TransactionTypeTransfer,
		Date:                  time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC),
		TransferTransactionID: &outgoing.ID,
	})

	utilization, err := visa.NetUtilization(models.DB, march)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(25)
	assert.True(suite.T(), utilization.Equal(expected), "Net utilization for 2022-03 is wrong: should be %v, but is %v", expected, utilization)
}

func (suite *TestSuiteStandard) TestAccountPaymentCategoryAvailable() {
	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	visa := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Visa", Type: models.AccountTypeCredit})

	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	// Spending on the card moves the budgeted money into the payment
	// category instead of destroying it
	suite.createTestTransaction(models.Transaction{
		AccountID:  visa.ID,
		CategoryID: &groceries.ID,
		Amount:     decimal.NewFromFloat(-40),
		Date:       time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	outgoing := suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Amount:    decimal.NewFromFloat(-15),
		Type:      models.TransactionTypeTransfer,
		Date:      time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:             visa.ID,
		Amount:                decimal.NewFromFloat(15),
		Type:                  models.TransactionTypeTransfer,
		Date:                  time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC),
		TransferTransactionID: &outgoing.ID,
	})

	var paymentCategory models.Category
	assert.Nil(suite.T(), models.DB.First(&paymentCategory, "id = ?", *visa.PaymentCategoryID).Error)

	available, err := paymentCategory.Available(models.DB, march)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(25)
	assert.True(suite.T(), available.Equal(expected), "Payment category available is wrong: should be %v, but is %v", expected, available)
}
