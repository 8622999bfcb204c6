package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
	r.POST("", SetMonth)
}

// MonthQuery selects the budget and month a request refers to.
type MonthQuery struct {
	BudgetID ct_uuid.UUID `form:"budget"` // ID of the budget
	Month    string       `form:"month"`  // The month in YYYY-MM format
}

// MonthWriteRequest is the body for POST requests to the month endpoint.
type MonthWriteRequest struct {
	Mode string `json:"mode" example:"ALLOCATE_LAST_MONTH_BUDGET"` // The operation to perform
}

type MonthResponse struct {
	Data  *models.Snapshot `json:"data"`                                                          // The calculated budget state for the month
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// monthFromQuery resolves the budget and the BudgetMonth a request
// refers to, creating the BudgetMonth row on first access.
func monthFromQuery(c *gin.Context) (models.Budget, models.BudgetMonth, types.Month, error) {
	var query MonthQuery
	if err := c.BindQuery(&query); err != nil {
		return models.Budget{}, models.BudgetMonth{}, types.Month{}, httputil.ErrInvalidUUID
	}

	if query.BudgetID == ct_uuid.Nil {
		return models.Budget{}, models.BudgetMonth{}, types.Month{}, errBudgetNotSetInQuery
	}

	if query.Month == "" {
		return models.Budget{}, models.BudgetMonth{}, types.Month{}, errMonthNotSetInQuery
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		return models.Budget{}, models.BudgetMonth{}, types.Month{}, httputil.ErrInvalidMonth
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ?", query.BudgetID.UUID).Error
	if err != nil {
		return models.Budget{}, models.BudgetMonth{}, types.Month{}, err
	}

	// The BudgetMonth row is created on first access to the month
	var budgetMonth models.BudgetMonth
	err = models.DB.
		Where(models.BudgetMonth{BudgetID: budget.ID}).
		Where("month = ?", month).
		Attrs(models.BudgetMonth{Month: month}).
		FirstOrCreate(&budgetMonth).
		Error
	if err != nil {
		return models.Budget{}, models.BudgetMonth{}, types.Month{}, err
	}

	return budget, budgetMonth, month, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get month
// @Description	Returns the calculated budget state for a month. The month is created on first access.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			budget	query		string	true	"ID of the budget"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	budget, _, month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := budget.Snapshot(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &snapshot})
}

// @Summary		Modify month
// @Description	Runs an operation on a month. Currently supports copying all allocations from the previous month.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			budget	query		string				true	"ID of the budget"
// @Param			month	query		string				true	"The month in YYYY-MM format"
// @Param			mode	body		MonthWriteRequest	true	"Operation"
// @Router			/v1/months [post]
func SetMonth(c *gin.Context) {
	budget, budgetMonth, month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var request MonthWriteRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	if request.Mode != "ALLOCATE_LAST_MONTH_BUDGET" {
		s := errMonthModeInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	err = budgetMonth.CopyPreviousMonth(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := budget.Snapshot(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &snapshot})
}
