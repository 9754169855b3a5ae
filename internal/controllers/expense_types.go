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

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	BudgetID             uuid.UUID              `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the budget the expense belongs to
	Name                 string                 `json:"name" example:"Groceries" default:""`                     // Name of the expense
	Category             string                 `json:"category" example:"Food" default:""`                      // Category for filtering and reporting
	BudgetedAmount       decimal.Decimal        `json:"budgetedAmount" example:"400" minimum:"0"`                // The planned amount
	ActualAmount         decimal.Decimal        `json:"actualAmount" example:"412.89" minimum:"0"`               // The amount actually spent
	Priority             models.ExpensePriority `json:"priority" example:"Medium" default:"Medium"`              // Priority of the expense
	Status               models.ExpenseStatus   `json:"status" example:"Unpaid" default:"Unpaid"`                // Payment status
	Recurring            bool                   `json:"recurring" example:"false" default:"false"`               // Does the expense repeat every month?
	ExpectedPurchaseDate time.Time              `json:"expectedPurchaseDate" example:"2026-03-05T00:00:00Z"`     // When the purchase is planned
	ActualPurchaseDate   *time.Time             `json:"actualPurchaseDate" example:"2026-03-07T00:00:00Z"`       // When the purchase happened
	Notes                string                 `json:"notes" default:""`                                        // Notes about the expense
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		BudgetID:             editable.BudgetID,
		Name:                 editable.Name,
		Category:             editable.Category,
		BudgetedAmount:       editable.BudgetedAmount,
		ActualAmount:         editable.ActualAmount,
		Priority:             editable.Priority,
		Status:               editable.Status,
		Recurring:            editable.Recurring,
		ExpectedPurchaseDate: editable.ExpectedPurchaseDate,
		ActualPurchaseDate:   editable.ActualPurchaseDate,
		Notes:                editable.Notes,
	}
}

func newExpenseEditable(model models.Expense) ExpenseEditable {
	return ExpenseEditable{
		BudgetID:             model.BudgetID,
		Name:                 model.Name,
		Category:             model.Category,
		BudgetedAmount:       model.BudgetedAmount,
		ActualAmount:         model.ActualAmount,
		Priority:             model.Priority,
		Status:               model.Status,
		Recurring:            model.Recurring,
		ExpectedPurchaseDate: model.ExpectedPurchaseDate,
		ActualPurchaseDate:   model.ActualPurchaseDate,
		Notes:                model.Notes,
	}
}

// expenseEditableFields names the model fields written on update. The
// budget reference is fixed at creation and not part of the list.
var expenseEditableFields = []string{"Name", "Category", "BudgetedAmount", "ActualAmount", "Priority", "Status", "Recurring", "ExpectedPurchaseDate", "ActualPurchaseDate", "Notes"}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"`
}

// Expense is the API representation of an expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		DefaultModel:    model.DefaultModel,
		ExpenseEditable: newExpenseEditable(model),
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/api/expenses/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type ExpenseResponse struct {
	Success bool     `json:"success"`
	Data    *Expense `json:"data"`
}

type ExpenseListResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Expense `json:"data"`
}

type ExpenseQueryFilter struct {
	BudgetID bb_uuid.UUID `form:"budgetId"` // Filter by budget
	Category string       `form:"category"` // Filter by category
	Status   string       `form:"status"`   // Filter by payment status
}
