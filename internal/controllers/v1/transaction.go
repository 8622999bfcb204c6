package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for Transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{})
}

// @Summary		Create transaction
// @Description	Creates a new transaction. Transfers create both legs, splits create the parent and all parts.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction := editable.model()

	switch {
	case editable.Type == models.TransactionTypeTransfer:
		err = createTransfer(&transaction, editable)

	case len(editable.Splits) > 0:
		err = createSplit(&transaction, editable)

	default:
		err = suggestCategory(&transaction)
		if err == nil {
			err = models.DB.Create(&transaction).Error
		}
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)

	children, err := transaction.SplitChildren(models.DB)
	if err == nil {
		for _, child := range children {
			data.Children = append(data.Children, newTransaction(c, child))
		}
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// createTransfer creates both legs of a transfer in one database
// transaction. The amount of the request is the amount leaving the
// source account, the receiving account gets the opposite sign.
func createTransfer(transaction *models.Transaction, editable TransactionEditable) error {
	if editable.CategoryID != nil {
		return models.ErrTransferWithCategory
	}

	if editable.TransferAccountID == nil {
		return errTransferAccountNotSet
	}

	if *editable.TransferAccountID == editable.AccountID {
		return models.ErrTransferSameAccount
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		leg := models.Transaction{
			AccountID:             *editable.TransferAccountID,
			Amount:                editable.Amount.Neg(),
			Date:                  transaction.Date,
			Type:                  models.TransactionTypeTransfer,
			Cleared:               editable.Cleared,
			Note:                  editable.Note,
			TransferTransactionID: &transaction.ID,
		}
		if err := tx.Create(&leg).Error; err != nil {
			return err
		}

		transaction.TransferTransactionID = &leg.ID

		// UpdateColumn skips the hooks, an empty receiver must not be
		// validated
		return tx.Model(&models.Transaction{}).Where("id = ?", transaction.ID).UpdateColumn("transfer_transaction_id", leg.ID).Error
	})
}

// createSplit creates the parent transaction and all split parts in one
// database transaction. The parts must sum up to the parent amount.
func createSplit(transaction *models.Transaction, editable TransactionEditable) error {
	if editable.CategoryID != nil {
		return models.ErrSplitParentWithCategory
	}

	sum := decimal.Zero
	for _, split := range editable.Splits {
		sum = sum.Add(split.Amount)
	}

	if !sum.Equal(editable.Amount) {
		return models.ErrSplitAmountMismatch
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		for _, split := range editable.Splits {
			child := models.Transaction{
				CategoryID:          split.CategoryID,
				PayeeID:             editable.PayeeID,
				Amount:              split.Amount,
				Note:                split.Note,
				ParentTransactionID: &transaction.ID,
			}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// suggestCategory fills in the category for uncategorized expenses by
// matching the payee name against the budget's match rules.
func suggestCategory(transaction *models.Transaction) error {
	if transaction.Type != models.TransactionTypeExpense || transaction.CategoryID != nil || transaction.PayeeID == nil {
		return nil
	}

	var payee models.Payee
	err := models.DB.First(&payee, "id = ?", *transaction.PayeeID).Error
	if err != nil {
		return err
	}

	budget := models.Budget{DefaultModel: models.DefaultModel{ID: payee.BudgetID}}
	match, err := budget.MatchCategory(models.DB, payee.Name)
	if err != nil {
		return err
	}

	transaction.CategoryID = match
	return nil
}

// @Summary		List transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			payee		query	string	false	"Filter by payee ID"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var transactions []models.Transaction

	q := models.DB.
		Order("date DESC").
		Where(filter.model(), queryFields...)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Transaction, 0)
	for _, transaction := range transactions {
		apiResources = append(apiResources, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction including its split parts
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	data := newTransaction(c, transaction)

	children, err := transaction.SplitChildren(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}
	for _, child := range children {
		data.Children = append(data.Children, newTransaction(c, child))
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	// Transfer legs and split structure are fixed at creation
	updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
		return field == "TransferAccountID" || field == "Splits"
	})

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	deleteResource[models.Transaction](c)
}
