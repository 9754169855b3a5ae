package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingMethod is how money is put aside for a savings goal.
type SavingMethod string

const (
	SavingMethodManual        SavingMethod = "Manual"
	SavingMethodAutoDeduction SavingMethod = "Auto-deduction"
	SavingMethodBankTransfer  SavingMethod = "Bank Transfer"
	SavingMethodOther         SavingMethod = "Other"
)

// Savings is a savings goal within a budget month. It does not feed
// into the budget's aggregated totals.
type Savings struct {
	DefaultModel
	Budget             Budget          `json:"-"`
	BudgetID           uuid.UUID       `json:"budgetId"`
	Goal               string          `json:"goal"`
	TargetAmount       decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)"`
	ActualAmount       decimal.Decimal `json:"actualAmount" gorm:"type:DECIMAL(20,8)"`
	SavingMethod       SavingMethod    `json:"savingMethod"`
	ProgressPercentage decimal.Decimal `json:"progressPercentage" gorm:"type:DECIMAL(20,8)"`
	Notes              string          `json:"notes"`
}

var (
	ErrSavingsGoalRequired   = errors.New("the savings goal must be specified")
	ErrSavingsAmountNegative = errors.New("savings amounts must not be negative")
	ErrSavingsMethodInvalid  = errors.New("the saving method must be one of Manual, Auto-deduction, Bank Transfer, Other")
)

var hundred = decimal.NewFromInt(100)

// Validate trims the string fields, applies the default saving method
// and checks the user supplied values.
func (s *Savings) Validate() error {
	s.Goal = strings.TrimSpace(s.Goal)
	s.Notes = strings.TrimSpace(s.Notes)

	if s.SavingMethod == "" {
		s.SavingMethod = SavingMethodManual
	}

	if s.Goal == "" {
		return ErrSavingsGoalRequired
	}

	if s.TargetAmount.IsNegative() || s.ActualAmount.IsNegative() {
		return ErrSavingsAmountNegative
	}

	switch s.SavingMethod {
	case SavingMethodManual, SavingMethodAutoDeduction, SavingMethodBankTransfer, SavingMethodOther:
	default:
		return ErrSavingsMethodInvalid
	}

	return nil
}

// RecalculateProgress derives the progress percentage from the target
// and actual amounts, clamped to [0, 100]. A target amount of zero or
// less leaves the previous value untouched so that we never divide by
// zero.
//
// Called by the write path immediately before every persist of a
// savings goal, regardless of which field changed.
func (s *Savings) RecalculateProgress() {
	if !s.TargetAmount.IsPositive() {
		return
	}

	progress := s.ActualAmount.Div(s.TargetAmount).Mul(hundred)
	if progress.GreaterThan(hundred) {
		progress = hundred
	}
	if progress.IsNegative() {
		progress = decimal.Zero
	}

	s.ProgressPercentage = progress
}
