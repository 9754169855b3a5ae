package controllers

import (
	"fmt"
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	BudgetID      uuid.UUID       `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the budget the income belongs to
	Type          string          `json:"type" example:"Salary" default:""`                        // Type of the income, e.g. salary, gift, loan
	Source        string          `json:"source" example:"ACME Inc." default:""`                   // Where the money comes from
	Amount        decimal.Decimal `json:"amount" example:"1830.12" minimum:"0"`                    // The amount of the income
	ExpectedDate  time.Time       `json:"expectedDate" example:"2026-03-25T00:00:00Z"`             // When the money is expected
	ReceivedDate  *time.Time      `json:"receivedDate" example:"2026-03-24T00:00:00Z"`             // When the money actually arrived
	WeekOfArrival int             `json:"weekOfArrival" example:"4" minimum:"1" maximum:"5"`       // Week of the month the money arrives, 1-5
	Received      bool            `json:"received" example:"true" default:"false"`                 // Has the money arrived?
	Notes         string          `json:"notes" default:""`                                        // Notes about the income
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		BudgetID:      editable.BudgetID,
		Type:          editable.Type,
		Source:        editable.Source,
		Amount:        editable.Amount,
		ExpectedDate:  editable.ExpectedDate,
		ReceivedDate:  editable.ReceivedDate,
		WeekOfArrival: editable.WeekOfArrival,
		Received:      editable.Received,
		Notes:         editable.Notes,
	}
}

func newIncomeEditable(model models.Income) IncomeEditable {
	return IncomeEditable{
		BudgetID:      model.BudgetID,
		Type:          model.Type,
		Source:        model.Source,
		Amount:        model.Amount,
		ExpectedDate:  model.ExpectedDate,
		ReceivedDate:  model.ReceivedDate,
		WeekOfArrival: model.WeekOfArrival,
		Received:      model.Received,
		Notes:         model.Notes,
	}
}

// incomeEditableFields names the model fields written on update. The
// budget reference is fixed at creation and not part of the list.
var incomeEditableFields = []string{"Type", "Source", "Amount", "ExpectedDate", "ReceivedDate", "WeekOfArrival", "Received", "Notes"}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/incomes/d430d7c3-d14c-4712-9336-ee56965a6673"`
}

// Income is the API representation of an income.
type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	return Income{
		DefaultModel:   model.DefaultModel,
		IncomeEditable: newIncomeEditable(model),
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/api/incomes/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type IncomeResponse struct {
	Success bool    `json:"success"`
	Data    *Income `json:"data"`
}

type IncomeListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []Income `json:"data"`
}

type IncomeQueryFilter struct {
	BudgetID bb_uuid.UUID `form:"budgetId"` // Filter by budget
}
