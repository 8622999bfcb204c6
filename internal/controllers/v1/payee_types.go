package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayeeEditable represents all user configurable parameters
type PayeeEditable struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Name     string    `json:"name" example:"REWE Superstore" default:""`               // Name of the payee
	Note     string    `json:"note" example:"The one around the corner" default:""`     // Notes about the payee
	Archived bool      `json:"archived" example:"true" default:"false"`                 // Is the payee archived?
}

func (editable PayeeEditable) model() models.Payee {
	return models.Payee{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type PayeeLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/payees/2e7eb7e3-180c-4a0e-bc2c-1d90cdcbec09"`                     // The payee itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?payee=2e7eb7e3-180c-4a0e-bc2c-1d90cdcbec09"` // Transactions with this payee
}

type Payee struct {
	models.DefaultModel
	PayeeEditable
	Links PayeeLinks `json:"links"`
}

func newPayee(c *gin.Context, model models.Payee) Payee {
	url := c.GetString(string(models.DBContextURL))

	return Payee{
		DefaultModel: model.DefaultModel,
		PayeeEditable: PayeeEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: PayeeLinks{
			Self:         fmt.Sprintf("%s/v1/payees/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?payee=%s", url, model.ID),
		},
	}
}

type PayeeListResponse struct {
	Data       []Payee     `json:"data"`                                                          // List of payees
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PayeeResponse struct {
	Data  *Payee  `json:"data"`                                                          // Data for the payee
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PayeeQueryFilter struct {
	BudgetID ct_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	Archived bool         `form:"archived"`                   // Is the payee archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first payee returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of payees to return. Defaults to 50.
}

func (f PayeeQueryFilter) model() models.Payee {
	return models.Payee{
		BudgetID: f.BudgetID.UUID,
		Archived: f.Archived,
	}
}
