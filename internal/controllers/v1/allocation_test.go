package v1_test

import (
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) allocationTestCategory() (v1.BudgetResponse, v1.CategoryResponse) {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Allocations"})
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{BudgetID: budget.Data.ID, Name: "Everyday"})
	category := suite.createTestCategory(v1.CategoryEditable{CategoryGroupID: group.Data.ID, Name: "Groceries"})

	return budget, category
}

func (suite *TestSuiteStandard) TestAllocationOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAllocationCreate() {
	budget, category := suite.allocationTestCategory()

	allocation := suite.createTestAllocation(v1.AllocationEditable{
		BudgetID:   budget.Data.ID,
		Month:      "2022-03",
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(250),
	})

	suite.Assert().True(allocation.Data.Amount.Equal(decimal.NewFromInt(250)))
	suite.Assert().Equal(category.Data.ID, allocation.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestAllocationOverwrites() {
	budget, category := suite.allocationTestCategory()

	first := suite.createTestAllocation(v1.AllocationEditable{
		BudgetID:   budget.Data.ID,
		Month:      "2022-03",
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(250),
	})

	second := suite.createTestAllocation(v1.AllocationEditable{
		BudgetID:   budget.Data.ID,
		Month:      "2022-03",
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(100),
	})

	suite.Assert().Equal(first.Data.ID, second.Data.ID)
	suite.Assert().True(second.Data.Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestAllocationNegativeAmount() {
	budget, category := suite.allocationTestCategory()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", v1.AllocationEditable{
		BudgetID:   budget.Data.ID,
		Month:      "2022-03",
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(-10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestAllocationInvalidMonth() {
	budget, category := suite.allocationTestCategory()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", v1.AllocationEditable{
		BudgetID:   budget.Data.ID,
		Month:      "March 2022",
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationUnknownBudget() {
	_, category := suite.allocationTestCategory()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", map[string]any{
		"budgetId":   "a2c0cacf-6ec9-4c14-bb29-1dc4f66fb0cf",
		"month":      "2022-03",
		"categoryId": category.Data.ID,
		"amount":     10,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
