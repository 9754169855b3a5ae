package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is money that is expected or has arrived within a budget
// month. Its amount is aggregated into the owning budget's totals.
type Income struct {
	DefaultModel
	Budget        Budget          `json:"-"`
	BudgetID      uuid.UUID       `json:"budgetId"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	ExpectedDate  time.Time       `json:"expectedDate"`
	ReceivedDate  *time.Time      `json:"receivedDate"`
	WeekOfArrival int             `json:"weekOfArrival"`
	Received      bool            `json:"received"`
	Notes         string          `json:"notes"`
}

var (
	ErrIncomeTypeRequired         = errors.New("the income type must be specified")
	ErrIncomeSourceRequired       = errors.New("the income source must be specified")
	ErrIncomeAmountNegative       = errors.New("the income amount must not be negative")
	ErrIncomeExpectedDateRequired = errors.New("the expected date must be specified")
	ErrIncomeWeekInvalid          = errors.New("the week of arrival must be between 1 and 5")
)

// Validate trims the string fields and checks the user supplied values.
func (i *Income) Validate() error {
	i.Type = strings.TrimSpace(i.Type)
	i.Source = strings.TrimSpace(i.Source)
	i.Notes = strings.TrimSpace(i.Notes)

	if i.Type == "" {
		return ErrIncomeTypeRequired
	}

	if i.Source == "" {
		return ErrIncomeSourceRequired
	}

	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	if i.ExpectedDate.IsZero() {
		return ErrIncomeExpectedDateRequired
	}

	if i.WeekOfArrival < 1 || i.WeekOfArrival > 5 {
		return ErrIncomeWeekInvalid
	}

	return nil
}
