package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitEditable is one part of a split transaction. Account, date and
// type are inherited from the parent.
type SplitEditable struct {
	CategoryID *uuid.UUID      `json:"categoryId"`                     // ID of the category for this part
	Amount     decimal.Decimal `json:"amount" example:"-70"`           // Amount of this part
	Note       string          `json:"note" example:"Food" default:""` // Notes for this part
}

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	AccountID         uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the transaction is on
	CategoryID        *uuid.UUID      `json:"categoryId"`                                               // ID of the category, not allowed for transfers
	PayeeID           *uuid.UUID      `json:"payeeId"`                                                  // ID of the payee
	Amount            decimal.Decimal `json:"amount" example:"-14.50"`                                  // The amount, negative for spending
	Date              time.Time       `json:"date" example:"2022-03-10T00:00:00Z"`                      // Date of the transaction
	Type              models.TransactionType `json:"type" example:"EXPENSE"`                            // INCOME, EXPENSE or TRANSFER
	Cleared           bool            `json:"cleared" example:"false" default:"false"`                  // Has the transaction cleared the account?
	Note              string          `json:"note" example:"Lunch" default:""`                          // Notes for the transaction
	TransferAccountID *uuid.UUID      `json:"transferAccountId"`                                        // The receiving account, required for transfers
	Splits            []SplitEditable `json:"splits"`                                                   // Split parts, the parent must not have a category then
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
		PayeeID:    editable.PayeeID,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Type:       editable.Type,
		Cleared:    editable.Cleared,
		Note:       editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	ParentTransactionID   *uuid.UUID       `json:"parentTransactionId"`   // Set on split parts
	TransferTransactionID *uuid.UUID       `json:"transferTransactionId"` // The other leg of a transfer
	Children              []Transaction    `json:"children,omitempty"`    // Split parts of the transaction
	Links                 TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
			PayeeID:    model.PayeeID,
			Amount:     model.Amount,
			Date:       model.Date,
			Type:       model.Type,
			Cleared:    model.Cleared,
			Note:       model.Note,
		},
		ParentTransactionID:   model.ParentTransactionID,
		TransferTransactionID: model.TransferTransactionID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	AccountID  ct_uuid.UUID           `form:"account"`                    // By ID of the account
	CategoryID ct_uuid.UUID           `form:"category"`                   // By ID of the category
	PayeeID    ct_uuid.UUID           `form:"payee"`                      // By ID of the payee
	Type       models.TransactionType `form:"type"`                       // By transaction type
	Offset     uint                   `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	transaction := models.Transaction{
		AccountID: f.AccountID.UUID,
		Type:      f.Type,
	}

	if f.CategoryID != ct_uuid.Nil {
		id := f.CategoryID.UUID
		transaction.CategoryID = &id
	}

	if f.PayeeID != ct_uuid.Nil {
		id := f.PayeeID.UUID
		transaction.PayeeID = &id
	}

	return transaction
}
