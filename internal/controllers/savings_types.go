package controllers

import (
	"fmt"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsEditable represents all user configurable parameters
type SavingsEditable struct {
	BudgetID     uuid.UUID           `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the budget the savings goal belongs to
	Goal         string              `json:"goal" example:"Emergency fund" default:""`                // What the money is saved for
	TargetAmount decimal.Decimal     `json:"targetAmount" example:"1000" minimum:"0"`                 // The amount to be saved
	ActualAmount decimal.Decimal     `json:"actualAmount" example:"250" minimum:"0"`                  // The amount saved so far
	SavingMethod models.SavingMethod `json:"savingMethod" example:"Manual" default:"Manual"`          // How the money is put aside
	Notes        string              `json:"notes" default:""`                                        // Notes about the savings goal
}

func (editable SavingsEditable) model() models.Savings {
	return models.Savings{
		BudgetID:     editable.BudgetID,
		Goal:         editable.Goal,
		TargetAmount: editable.TargetAmount,
		ActualAmount: editable.ActualAmount,
		SavingMethod: editable.SavingMethod,
		Notes:        editable.Notes,
	}
}

func newSavingsEditable(model models.Savings) SavingsEditable {
	return SavingsEditable{
		BudgetID:     model.BudgetID,
		Goal:         model.Goal,
		TargetAmount: model.TargetAmount,
		ActualAmount: model.ActualAmount,
		SavingMethod: model.SavingMethod,
		Notes:        model.Notes,
	}
}

// savingsEditableFields names the model fields written on update. The
// derived progress percentage is included since it is recalculated on
// every write.
var savingsEditableFields = []string{"Goal", "TargetAmount", "ActualAmount", "SavingMethod", "Notes", "ProgressPercentage"}

type SavingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/savings/d430d7c3-d14c-4712-9336-ee56965a6673"`
}

// Savings is the API representation of a savings goal.
type Savings struct {
	models.DefaultModel
	SavingsEditable

	// ProgressPercentage is derived from the amounts and cannot be set
	// through the API.
	ProgressPercentage decimal.Decimal `json:"progressPercentage" example:"25" minimum:"0" maximum:"100"`

	Links SavingsLinks `json:"links"`
}

func newSavings(c *gin.Context, model models.Savings) Savings {
	return Savings{
		DefaultModel:       model.DefaultModel,
		SavingsEditable:    newSavingsEditable(model),
		ProgressPercentage: model.ProgressPercentage,
		Links: SavingsLinks{
			Self: fmt.Sprintf("%s/api/savings/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type SavingsResponse struct {
	Success bool     `json:"success"`
	Data    *Savings `json:"data"`
}

type SavingsListResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Savings `json:"data"`
}

type SavingsQueryFilter struct {
	BudgetID bb_uuid.UUID `form:"budgetId"` // Filter by budget
}
