package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the monthly container for incomes, expenses and savings
// goals of one user. There is exactly one budget per user, month and
// year.
//
// The five derived fields are maintained incrementally by the apply
// methods in aggregate.go whenever an income or expense changes. They
// are never recomputed from all children on read.
type Budget struct {
	DefaultModel
	Month    int       `json:"month" gorm:"uniqueIndex:budget_month_year_user"`
	Year     int       `json:"year" gorm:"uniqueIndex:budget_month_year_user"`
	UserID   uuid.UUID `json:"userId" gorm:"uniqueIndex:budget_month_year_user"`
	User     User      `json:"-"`
	Title    string    `json:"title"`
	Notes    string    `json:"notes"`
	IsActive bool      `json:"isActive"`

	TotalIncome           decimal.Decimal `json:"totalIncome" gorm:"type:DECIMAL(20,8)"`
	TotalBudgetedExpenses decimal.Decimal `json:"totalBudgetedExpenses" gorm:"type:DECIMAL(20,8)"`
	TotalActualExpenses   decimal.Decimal `json:"totalActualExpenses" gorm:"type:DECIMAL(20,8)"`
	BalanceProjected      decimal.Decimal `json:"balanceProjected" gorm:"type:DECIMAL(20,8)"`
	BalanceActual         decimal.Decimal `json:"balanceActual" gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrBudgetMonthNotUnique = errors.New("budget already exists for this month and year")
	ErrBudgetMonthInvalid   = errors.New("the month must be between 1 and 12")
	ErrBudgetYearInvalid    = errors.New("the year must be 2020 or later")
	ErrBudgetTitleRequired  = errors.New("the budget must have a title")
)

// AggregateFields names the derived columns that the aggregate
// maintainer writes back. Exactly these columns are persisted after a
// child mutation, in a single update.
var AggregateFields = []string{"TotalIncome", "TotalBudgetedExpenses", "TotalActualExpenses", "BalanceProjected", "BalanceActual"}

// Validate trims the string fields and checks the user supplied values.
func (b *Budget) Validate() error {
	b.Title = strings.TrimSpace(b.Title)
	b.Notes = strings.TrimSpace(b.Notes)

	if b.Month < 1 || b.Month > 12 {
		return ErrBudgetMonthInvalid
	}

	if b.Year < 2020 {
		return ErrBudgetYearInvalid
	}

	if b.Title == "" {
		return ErrBudgetTitleRequired
	}

	return nil
}

// Incomes returns all incomes for this budget.
func (b Budget) Incomes(db *gorm.DB) ([]Income, error) {
	var incomes []Income
	err := db.Where(Income{BudgetID: b.ID}).Find(&incomes).Error
	return incomes, err
}

// Expenses returns all expenses for this budget.
func (b Budget) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Where(Expense{BudgetID: b.ID}).Find(&expenses).Error
	return expenses, err
}

// SavingsGoals returns all savings goals for this budget.
func (b Budget) SavingsGoals(db *gorm.DB) ([]Savings, error) {
	var savings []Savings
	err := db.Where(Savings{BudgetID: b.ID}).Find(&savings).Error
	return savings, err
}
