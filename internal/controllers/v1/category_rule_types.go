package v1

import (
	"github.com/orbita-crm/backend/internal/models"
)

// CategoryRuleEditable represents all user configurable parameters of a
// category rule.
type CategoryRuleEditable struct {
	Priority uint   `json:"priority" example:"1" default:"0"`        // Rules with lower priority are evaluated first
	Match    string `json:"match" example:"ТОО*" default:""`         // Glob pattern matched against the counterparty name
	Category string `json:"category" example:"Клиенты" default:""`   // Category assigned to matching imported transactions
}

func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
}

func newCategoryRule(model models.CategoryRule) CategoryRule {
	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
	}
}

type CategoryRuleListResponse struct {
	Data  []CategoryRule `json:"data"`                                                          // List of Category Rules, ordered by priority
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleCreateResponse struct {
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of the created Category Rules or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryRuleResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the Category Rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
