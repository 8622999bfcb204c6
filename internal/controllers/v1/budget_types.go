package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name     string `json:"name" example:"Morre's Budget" default:""`       // Name of the budget
	Note     string `json:"note" example:"My personal budget" default:""`   // A longer description of the budget
	Currency string `json:"currency" example:"EUR" default:""`              // The currency for the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                      // The budget itself
	Accounts string `json:"accounts" example:"https://example.com/v1/accounts?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // Accounts for this budget
	Groups   string `json:"groups" example:"https://example.com/v1/category-groups?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // Category groups for this budget
	Payees   string `json:"payees" example:"https://example.com/v1/payees?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`              // Payees for this budget
	Month    string `json:"month" example:"https://example.com/v1/months?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf&month=YYYY-MM"` // The YYYY-MM part must be replaced by the actual month
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Accounts: fmt.Sprintf("%s/v1/accounts?budget=%s", url, model.ID),
			Groups:   fmt.Sprintf("%s/v1/category-groups?budget=%s", url, model.ID),
			Payees:   fmt.Sprintf("%s/v1/payees?budget=%s", url, model.ID),
			Month:    fmt.Sprintf("%s/v1/months?budget=%s&month=YYYY-MM", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`     // By name
	Note     string `form:"note" filterField:"false"`     // By note
	Currency string `form:"currency"`                     // By currency
	Search   string `form:"search" filterField:"false"`   // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
	}
}
