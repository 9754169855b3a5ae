package controllers

import (
	"fmt"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Month    int       `json:"month" example:"3" minimum:"1" maximum:"12"`              // Month the budget is for, 1-12
	Year     int       `json:"year" example:"2026" minimum:"2020"`                      // Year the budget is for
	UserID   uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`   // ID of the user the budget belongs to
	Title    string    `json:"title" example:"March budget" default:""`                 // Title of the budget
	Notes    string    `json:"notes" example:"First month in the new flat" default:""` // Notes about the budget
	IsActive bool      `json:"isActive" example:"true" default:"false"`                 // Is the budget active?
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Month:    editable.Month,
		Year:     editable.Year,
		UserID:   editable.UserID,
		Title:    editable.Title,
		Notes:    editable.Notes,
		IsActive: editable.IsActive,
	}
}

func newBudgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		Month:    model.Month,
		Year:     model.Year,
		UserID:   model.UserID,
		Title:    model.Title,
		Notes:    model.Notes,
		IsActive: model.IsActive,
	}
}

// budgetEditableFields names the model fields written on update.
var budgetEditableFields = []string{"Month", "Year", "UserID", "Title", "Notes", "IsActive"}

// BudgetComputed holds the five derived fields. They are maintained by
// the aggregate maintainer and cannot be set through the API.
type BudgetComputed struct {
	TotalIncome           decimal.Decimal `json:"totalIncome" example:"2317.34"`
	TotalBudgetedExpenses decimal.Decimal `json:"totalBudgetedExpenses" example:"1930.00"`
	TotalActualExpenses   decimal.Decimal `json:"totalActualExpenses" example:"1712.12"`
	BalanceProjected      decimal.Decimal `json:"balanceProjected" example:"387.34"`
	BalanceActual         decimal.Decimal `json:"balanceActual" example:"605.22"`
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"`
	Incomes  string `json:"incomes" example:"https://example.com/api/incomes?budgetId=d430d7c3-d14c-4712-9336-ee56965a6673"`
	Expenses string `json:"expenses" example:"https://example.com/api/expenses?budgetId=d430d7c3-d14c-4712-9336-ee56965a6673"`
	Savings  string `json:"savings" example:"https://example.com/api/savings?budgetId=d430d7c3-d14c-4712-9336-ee56965a6673"`
}

// Budget is the API representation of a budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	BudgetComputed
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := httputil.RequestHost(c)

	return Budget{
		DefaultModel:   model.DefaultModel,
		BudgetEditable: newBudgetEditable(model),
		BudgetComputed: BudgetComputed{
			TotalIncome:           model.TotalIncome,
			TotalBudgetedExpenses: model.TotalBudgetedExpenses,
			TotalActualExpenses:   model.TotalActualExpenses,
			BalanceProjected:      model.BalanceProjected,
			BalanceActual:         model.BalanceActual,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/api/budgets/%s", url, model.ID),
			Incomes:  fmt.Sprintf("%s/api/incomes?budgetId=%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/api/expenses?budgetId=%s", url, model.ID),
			Savings:  fmt.Sprintf("%s/api/savings?budgetId=%s", url, model.ID),
		},
	}
}

// BudgetDetail is the budget with its related records expanded. The
// children are fetched with explicit queries when the budget is read,
// they are not stored on the budget.
type BudgetDetail struct {
	Budget
	Incomes  []Income  `json:"incomes"`
	Expenses []Expense `json:"expenses"`
	Savings  []Savings `json:"savings"`
}

func newBudgetDetail(c *gin.Context, db *gorm.DB, model models.Budget) (BudgetDetail, error) {
	detail := BudgetDetail{
		Budget:   newBudget(c, model),
		Incomes:  make([]Income, 0),
		Expenses: make([]Expense, 0),
		Savings:  make([]Savings, 0),
	}

	incomes, err := model.Incomes(db)
	if err != nil {
		return BudgetDetail{}, err
	}
	for _, income := range incomes {
		detail.Incomes = append(detail.Incomes, newIncome(c, income))
	}

	expenses, err := model.Expenses(db)
	if err != nil {
		return BudgetDetail{}, err
	}
	for _, expense := range expenses {
		detail.Expenses = append(detail.Expenses, newExpense(c, expense))
	}

	savings, err := model.SavingsGoals(db)
	if err != nil {
		return BudgetDetail{}, err
	}
	for _, s := range savings {
		detail.Savings = append(detail.Savings, newSavings(c, s))
	}

	return detail, nil
}

type BudgetResponse struct {
	Success bool    `json:"success"`
	Data    *Budget `json:"data"`
}

type BudgetDetailResponse struct {
	Success bool          `json:"success"`
	Data    *BudgetDetail `json:"data"`
}

type BudgetListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []Budget `json:"data"`
}

type BudgetQueryFilter struct {
	UserID bb_uuid.UUID `form:"userId"` // Filter by user
}
