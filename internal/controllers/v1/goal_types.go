package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name       string          `json:"name" example:"New TV" default:""`                          // Name of the goal
	Note       string          `json:"note" example:"We want the big one" default:""`             // Notes about the goal
	CategoryID uuid.UUID       `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // ID of the category the goal is for
	Type       models.GoalType `json:"type" example:"SAVING"`                                     // SAVING, SPENDING or DEBT
	Amount     decimal.Decimal `json:"amount" example:"750" minimum:"0.00000001"`                 // The target for the goal
	Month      types.Month     `json:"month" example:"2024-06-01T00:00:00Z"`                      // The month the target should be reached in
	Archived   bool            `json:"archived" example:"true" default:"false"`                   // Is the goal archived?
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:       editable.Name,
		Note:       editable.Note,
		CategoryID: editable.CategoryID,
		Type:       editable.Type,
		Amount:     editable.Amount,
		Month:      editable.Month,
		Archived:   editable.Archived,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/goals/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`          // The goal itself
	Category string `json:"category" example:"https://example.com/v1/categories/dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // The category the goal is for
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:       model.Name,
			Note:       model.Note,
			CategoryID: model.CategoryID,
			Type:       model.Type,
			Amount:     model.Amount,
			Month:      model.Month,
			Archived:   model.Archived,
		},
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	CategoryID ct_uuid.UUID    `form:"category"`                   // By ID of the category
	Type       models.GoalType `form:"type"`                       // By goal type
	Name       string          `form:"name" filterField:"false"`   // By name
	Note       string          `form:"note" filterField:"false"`   // By note
	Archived   bool            `form:"archived"`                   // Is the goal archived?
	Search     string          `form:"search" filterField:"false"` // By string in name or note
	Offset     uint            `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit      int             `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		CategoryID: f.CategoryID.UUID,
		Type:       f.Type,
		Archived:   f.Archived,
	}
}
