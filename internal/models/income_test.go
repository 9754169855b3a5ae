package models_test

import (
	"testing"
	"time"

	"github.com/budgetbook/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomeValidate() {
	date := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		income models.Income
		err    error
	}{
		{"valid", models.Income{Type: "Salary", Source: "Work", Amount: decimal.NewFromFloat(1000), ExpectedDate: date, WeekOfArrival: 4}, nil},
		{"type missing", models.Income{Source: "Work", ExpectedDate: date, WeekOfArrival: 1}, models.ErrIncomeTypeRequired},
		{"source missing", models.Income{Type: "Salary", ExpectedDate: date, WeekOfArrival: 1}, models.ErrIncomeSourceRequired},
		{"negative amount", models.Income{Type: "Salary", Source: "Work", Amount: decimal.NewFromFloat(-1), ExpectedDate: date, WeekOfArrival: 1}, models.ErrIncomeAmountNegative},
		{"date missing", models.Income{Type: "Salary", Source: "Work", WeekOfArrival: 1}, models.ErrIncomeExpectedDateRequired},
		{"week too small", models.Income{Type: "Salary", Source: "Work", ExpectedDate: date, WeekOfArrival: 0}, models.ErrIncomeWeekInvalid},
		{"week too large", models.Income{Type: "Salary", Source: "Work", ExpectedDate: date, WeekOfArrival: 6}, models.ErrIncomeWeekInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err, tt.income.Validate())
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeValidateTrimsWhitespace() {
	t := suite.T()

	income := models.Income{
		Type:          "  Salary ",
		Source:        " Work\t",
		Amount:        decimal.NewFromFloat(1000),
		ExpectedDate:  time.Now(),
		WeekOfArrival: 1,
		Notes:         "  paid out early ",
	}
	require.Nil(t, income.Validate())

	assert.Equal(t, "Salary", income.Type)
	assert.Equal(t, "Work", income.Source)
	assert.Equal(t, "paid out early", income.Notes)
}
