package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	ct_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	BudgetID   uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // ID of the budget
	Priority   uint      `json:"priority" example:"2"`                                      // The priority of the match rule, lower wins
	Match      string    `json:"match" example:"Bank*"`                                     // The matching applied to the payee name, supports globbing
	CategoryID uuid.UUID `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // ID of the category the rule matches to
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		BudgetID:   editable.BudgetID,
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: editable.CategoryID,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			BudgetID:   model.BudgetID,
			Priority:   model.Priority,
			Match:      model.Match,
			CategoryID: model.CategoryID,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of match rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the match rule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleQueryFilter struct {
	BudgetID   ct_uuid.UUID `form:"budget"`                     // By ID of the budget
	Priority   uint         `form:"priority"`                   // By priority
	Match      string       `form:"match" filterField:"false"`  // By match
	CategoryID ct_uuid.UUID `form:"category"`                   // By ID of the category the rule matches to
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first match rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of match rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		BudgetID:   f.BudgetID.UUID,
		Priority:   f.Priority,
		CategoryID: f.CategoryID.UUID,
	}
}
