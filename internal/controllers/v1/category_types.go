package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	CategoryGroupID uuid.UUID `json:"groupId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category group
	Name            string    `json:"name" example:"Groceries" default:""`                    // Name of the category
	Note            string    `json:"note" example:"Everything edible" default:""`            // Notes about the category
	Archived        bool      `json:"archived" example:"true" default:"false"`                // Is the category archived?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		CategoryGroupID: editable.CategoryGroupID,
		Name:            editable.Name,
		Note:            editable.Note,
		Archived:        editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/categories/dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`                     // The category itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?category=dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // Transactions for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	System bool          `json:"system" example:"false"` // Is this a payment category managed by the backend?
	Links  CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			CategoryGroupID: model.CategoryGroupID,
			Name:            model.Name,
			Note:            model.Note,
			Archived:        model.Archived,
		},
		System: model.System,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	CategoryGroupID ct_uuid.UUID `form:"group"`                      // By ID of the category group
	Name            string       `form:"name" filterField:"false"`   // By name
	Note            string       `form:"note" filterField:"false"`   // By note
	Archived        bool         `form:"archived"`                   // Is the category archived?
	Search          string       `form:"search" filterField:"false"` // By string in name or note
	Offset          uint         `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		CategoryGroupID: f.CategoryGroupID.UUID,
		Archived:        f.Archived,
	}
}
