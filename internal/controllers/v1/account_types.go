package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	BudgetID uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget this account belongs to
	Name     string             `json:"name" example:"Cash" default:""`                          // Name of the account
	Note     string             `json:"note" example:"Money in my wallet" default:""`            // A longer description for the account
	Type     models.AccountType `json:"type" example:"CHECKING"`                                 // The type of the account
	OnBudget *bool              `json:"onBudget" example:"true"`                                 // Overrides the on-budget default of the account type when set
	Archived bool               `json:"archived" example:"true" default:"false"`                 // Is the account archived?
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Note:     editable.Note,
		Type:     editable.Type,
		OnBudget: editable.OnBudget,
		Archived: editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	OnBudgetResolved  bool         `json:"onBudgetResolved" example:"true"` // The resolved on-budget state, including the type default
	PaymentCategoryID *uuid.UUID   `json:"paymentCategoryId"`               // The payment category for credit accounts
	Links             AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Note:     model.Note,
			Type:     model.Type,
			OnBudget: model.OnBudget,
			Archived: model.Archived,
		},
		OnBudgetResolved:  model.IsOnBudget(),
		PaymentCategoryID: model.PaymentCategoryID,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	BudgetID ct_uuid.UUID       `form:"budget"`                     // By ID of the budget
	Name     string             `form:"name" filterField:"false"`   // By name
	Note     string             `form:"note" filterField:"false"`   // By note
	Type     models.AccountType `form:"type"`                       // By type
	Archived bool               `form:"archived"`                   // Is the account archived?
	Search   string             `form:"search" filterField:"false"` // By string in name or note
	Offset   uint               `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit    int                `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		BudgetID: f.BudgetID.UUID,
		Type:     f.Type,
		Archived: f.Archived,
	}
}
