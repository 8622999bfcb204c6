package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetMonthUnique() {
	budget := suite.createTestBudget(models.Budget{})
	march := types.NewMonth(2022, 3)

	suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	err := models.DB.Create(&models.BudgetMonth{BudgetID: budget.ID, Month: march}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetMonthFoundByMonth() {
	budget := suite.createTestBudget(models.Budget{})
	march := types.NewMonth(2022, 3)

	created := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	// The month value the driver wrote must compare equal to a freshly
	// bound one, otherwise every lookup by month comes up empty
	var found models.BudgetMonth
	err := models.DB.
		Where(&models.BudgetMonth{BudgetID: budget.ID}).
		Where("month = ?", march).
		First(&found).
		Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), created.ID, found.ID)

	// Repeating the lazy-creation idiom must find the row instead of
	// running into the unique index
	var again models.BudgetMonth
	err = models.DB.
		Where(models.BudgetMonth{BudgetID: budget.ID}).
		Where("month = ?", march).
		Attrs(models.BudgetMonth{Month: march}).
		FirstOrCreate(&again).
		Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), created.ID, again.ID)
}

func (suite *TestSuiteStandard) TestBudgetIncome() {
	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	investment := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeInvestment})

	march := types.NewMonth(2022, 3)

	suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Amount:    decimal.NewFromFloat(2317.34),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	// Income on off-budget accounts does not count
	suite.createTestTransaction(models.Transaction{
		AccountID: investment.ID,
		Amount:    decimal.NewFromFloat(500),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC),
	})

	income, err := budget.Income(models.DB, march)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(2317.34)
	assert.True(suite.T(), income.Equal(expected), "Income for 2022-03 is wrong: should be %v, but is %v", expected, income)
}

func (suite *TestSuiteStandard) TestBudgetIncomeOnBudgetOverride() {
	budget := suite.createTestBudget(models.Budget{})

	onBudget := true
	investment := suite.createTestAccount(models.Account{
		BudgetID: budget.ID,
		Type:     models.AccountTypeInvestment,
		OnBudget: &onBudget,
	})

	march := types.NewMonth(2022, 3)

	suite.createTestTransaction(models.Transaction{
		AccountID: investment.ID,
		Amount:    decimal.NewFromFloat(125),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC),
	})

	income, err := budget.Income(models.DB, march)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), income.Equal(decimal.NewFromFloat(125)), "Income for 2022-03 is wrong: %v", income)
}

func (suite *TestSuiteStandard) TestBudgetBudgeted() {
	budget := suite.createTestBudget(models.Budget{})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})
	rent := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	_, err := budgetMonth.SetAllocation(models.DB, groceries.ID, decimal.NewFromFloat(200))
	assert.Nil(suite.T(), err)

	_, err = budgetMonth.SetAllocation(models.DB, rent.ID, decimal.NewFromFloat(1900))
	assert.Nil(suite.T(), err)

	budgeted, err := budget.Budgeted(models.DB, march)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(2100)
	assert.True(suite.T(), budgeted.Equal(expected), "Budgeted for 2022-03 is wrong: should be %v, but is %v", expected, budgeted)
}

func (suite *TestSuiteStandard) TestBudgetAvailableToBudget() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(2317.34),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	_, err := budgetMonth.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(2100))
	assert.Nil(suite.T(), err)

	available, err := budget.AvailableToBudget(models.DB, march)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(217.34)
	assert.True(suite.T(), available.Equal(expected), "Available to budget for 2022-03 is wrong: should be %v, but is %v", expected, available)
}

func (suite *TestSuiteStandard) TestBudgetAvailableToBudgetCarriesSurplus() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	april := march.AddDate(0, 1)

	marchBudget := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})
	suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: april})

	suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(1000),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	_, err := marchBudget.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(600))
	assert.Nil(suite.T(), err)

	available, err := budget.AvailableToBudget(models.DB, april)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(400)
	assert.True(suite.T(), available.Equal(expected), "Available to budget for 2022-04 is wrong: should be %v, but is %v", expected, available)
}

func (suite *TestSuiteStandard) TestBudgetAvailableToBudgetFloorsDeficit() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	category := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	april := march.AddDate(0, 1)

	marchBudget := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})
	suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: april})

	suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(100),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	// More budgeted than earned
	_, err := marchBudget.SetAllocation(models.DB, category.ID, decimal.NewFromFloat(250))
	assert.Nil(suite.T(), err)

	suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(500),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	// April starts fresh instead of inheriting the -150
	available, err := budget.AvailableToBudget(models.DB, april)
	assert.Nil(suite.T(), err)

	expected := decimal.NewFromFloat(500)
	assert.True(suite.T(), available.Equal(expected), "Available to budget for 2022-04 is wrong: should be %v, but is %v", expected, available)
}

func (suite *TestSuiteStandard) TestBudgetAvailableToBudgetConservation() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})
	rent := suite.createTestCategory(models.Category{CategoryGroupID: group.ID})

	march := types.NewMonth(2022, 3)
	budgetMonth := suite.createTestBudgetMonth(models.BudgetMonth{BudgetID: budget.ID, Month: march})

	suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(2000),
		Type:      models.TransactionTypeIncome,
		Date:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	_, err := budgetMonth.SetAllocation(models.DB, groceries.ID, decimal.NewFromFloat(300))
	assert.Nil(suite.T(), err)
	_, err = budgetMonth.SetAllocation(models.DB, rent.ID, decimal.NewFromFloat(1200))
	assert.Nil(suite.T(), err)

	income, err := budget.Income(models.DB, march)
	assert.Nil(suite.T(), err)

	budgeted, err := budget.Budgeted(models.DB, march)
	assert.Nil(suite.T(), err)

	available, err := budget.AvailableToBudget(models.DB, march)
	assert.Nil(suite.T(), err)

	// Every earned unit is either assigned or still available
	assert.True(suite.T(), income.Equal(budgeted.Add(available)), "Income %v must equal budgeted %v plus available %v", income, budgeted, available)
}
