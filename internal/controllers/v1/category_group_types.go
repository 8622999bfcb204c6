package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryGroupEditable represents all user configurable parameters
type CategoryGroupEditable struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // ID of the budget the group belongs to
	Name     string    `json:"name" example:"Fixed costs" default:""`                         // Name of the category group
	Note     string    `json:"note" example:"All the bills that come every month" default:""` // Notes about the group
	Archived bool      `json:"archived" example:"true" default:"false"`                       // Is the group archived?
}

func (editable CategoryGroupEditable) model() models.CategoryGroup {
	return models.CategoryGroup{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type CategoryGroupLinks struct {
	Self       string `json:"self" example:"https://example.com/v1/category-groups/3b1ea324-d438-4419-882a-2fc91d71772f"`           // The group itself
	Categories string `json:"categories" example:"https://example.com/v1/categories?group=3b1ea324-d438-4419-882a-2fc91d71772f"` // Categories in this group
}

type CategoryGroup struct {
	models.DefaultModel
	CategoryGroupEditable
	System bool               `json:"system" example:"false"` // Is this the group managed by the backend for payment categories?
	Links  CategoryGroupLinks `json:"links"`
}

func newCategoryGroup(c *gin.Context, model models.CategoryGroup) CategoryGroup {
	url := c.GetString(string(models.DBContextURL))

	return CategoryGroup{
		DefaultModel: model.DefaultModel,
		CategoryGroupEditable: CategoryGroupEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		System: model.System,
		Links: CategoryGroupLinks{
			Self:       fmt.Sprintf("%s/v1/category-groups/%s", url, model.ID),
			Categories: fmt.Sprintf("%s/v1/categories?group=%s", url, model.ID),
		},
	}
}

type CategoryGroupListResponse struct {
	Data       []CategoryGroup `json:"data"`                                                          // List of category groups
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type CategoryGroupResponse struct {
	Data  *CategoryGroup `json:"data"`                                                          // Data for the category group
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryGroupQueryFilter struct {
	BudgetID ct_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	Archived bool         `form:"archived"`                   // Is the group archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first group returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of groups to return. Defaults to 50.
}

func (f CategoryGroupQueryFilter) model() models.CategoryGroup {
	return models.CategoryGroup{
		BudgetID: f.BudgetID.UUID,
		Archived: f.Archived,
	}
}
