package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus is the payment state of an expense.
type ExpenseStatus string

const (
	ExpenseStatusUnpaid  ExpenseStatus = "Unpaid"
	ExpenseStatusPartial ExpenseStatus = "Partial"
	ExpenseStatusPaid    ExpenseStatus = "Paid"
)

// ExpensePriority ranks how important an expense is.
type ExpensePriority string

const (
	ExpensePriorityLow    ExpensePriority = "Low"
	ExpensePriorityMedium ExpensePriority = "Medium"
	ExpensePriorityHigh   ExpensePriority = "High"
)

// Expense is a planned purchase within a budget month.
//
// The budgeted amount always counts towards the budget's
// totalBudgetedExpenses. The actual amount only counts towards
// totalActualExpenses and the actual balance while the expense is paid
// or partially paid.
type Expense struct {
	DefaultModel
	Budget               Budget          `json:"-"`
	BudgetID             uuid.UUID       `json:"budgetId"`
	Name                 string          `json:"name"`
	Category             string          `json:"category"`
	BudgetedAmount       decimal.Decimal `json:"budgetedAmount" gorm:"type:DECIMAL(20,8)"`
	ActualAmount         decimal.Decimal `json:"actualAmount" gorm:"type:DECIMAL(20,8)"`
	Priority             ExpensePriority `json:"priority"`
	Status               ExpenseStatus   `json:"status"`
	Recurring            bool            `json:"recurring"`
	ExpectedPurchaseDate time.Time       `json:"expectedPurchaseDate"`
	ActualPurchaseDate   *time.Time      `json:"actualPurchaseDate"`
	Notes                string          `json:"notes"`
}

var (
	ErrExpenseNameRequired     = errors.New("the expense name must be specified")
	ErrExpenseCategoryRequired = errors.New("the expense category must be specified")
	ErrExpenseAmountNegative   = errors.New("expense amounts must not be negative")
	ErrExpenseDateRequired     = errors.New("the expected purchase date must be specified")
	ErrExpenseStatusInvalid    = errors.New("the expense status must be one of Unpaid, Partial, Paid")
	ErrExpensePriorityInvalid  = errors.New("the expense priority must be one of Low, Medium, High")
)

// AffectsActuals reports whether the expense's actual amount
// contributes to the budget's actual totals.
func (e Expense) AffectsActuals() bool {
	return e.Status == ExpenseStatusPaid || e.Status == ExpenseStatusPartial
}

// Validate trims the string fields, applies defaults for the enums and
// checks the user supplied values.
func (e *Expense) Validate() error {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)
	e.Notes = strings.TrimSpace(e.Notes)

	if e.Status == "" {
		e.Status = ExpenseStatusUnpaid
	}

	if e.Priority == "" {
		e.Priority = ExpensePriorityMedium
	}

	if e.Name == "" {
		return ErrExpenseNameRequired
	}

	if e.Category == "" {
		return ErrExpenseCategoryRequired
	}

	if e.BudgetedAmount.IsNegative() || e.ActualAmount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	if e.ExpectedPurchaseDate.IsZero() {
		return ErrExpenseDateRequired
	}

	switch e.Status {
	case ExpenseStatusUnpaid, ExpenseStatusPartial, ExpenseStatusPaid:
	default:
		return ErrExpenseStatusInvalid
	}

	switch e.Priority {
	case ExpensePriorityLow, ExpensePriorityMedium, ExpensePriorityHigh:
	default:
		return ErrExpensePriorityInvalid
	}

	return nil
}
