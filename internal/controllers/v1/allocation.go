package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterAllocationRoutes registers the routes for Allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAllocationList)
	r.POST("", CreateAllocation)
}

// AllocationEditable represents all user configurable parameters
type AllocationEditable struct {
	BudgetID   uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // ID of the budget
	Month      string          `json:"month" example:"2022-03"`                                   // The month in YYYY-MM format
	CategoryID uuid.UUID       `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // ID of the category
	Amount     decimal.Decimal `json:"amount" example:"250"`                                      // Amount to assign to the category for the month
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
	BudgetMonthID uuid.UUID `json:"budgetMonthId" example:"33109e39-ebab-4ac0-91e4-a10d3f14d40b"` // ID of the month the allocation belongs to
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Set allocation
// @Description	Assigns an amount to a category for a month. Overwrites an existing assignment for the same category and month. The month is created on first access.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	month, err := types.ParseMonth(editable.Month)
	if err != nil {
		e := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ?", editable.BudgetID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var budgetMonth models.BudgetMonth
	err = models.DB.
		Where(models.BudgetMonth{BudgetID: budget.ID}).
		Where("month = ?", month).
		Attrs(models.BudgetMonth{Month: month}).
		FirstOrCreate(&budgetMonth).
		Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	allocation, err := budgetMonth.SetAllocation(models.DB, editable.CategoryID, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	data := Allocation{
		DefaultModel: allocation.DefaultModel,
		AllocationEditable: AllocationEditable{
			BudgetID:   budget.ID,
			Month:      month.String(),
			CategoryID: allocation.CategoryID,
			Amount:     allocation.Amount,
		},
		BudgetMonthID: allocation.BudgetMonthID,
	}

	c.JSON(http.StatusCreated, AllocationResponse{Data: &data})
}
