package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/budgetbook/backend/internal/controllers"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createSavingsViaAPI(editable controllers.SavingsEditable) controllers.Savings {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/api/savings", editable)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response controllers.SavingsResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateSavings() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})

	savings := suite.createSavingsViaAPI(controllers.SavingsEditable{
		BudgetID:     budget.ID,
		Goal:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(1000),
		ActualAmount: decimal.NewFromFloat(250),
	})

	assert.Equal(t, "Emergency fund", savings.Goal)
	assert.Equal(t, models.SavingMethodManual, savings.SavingMethod)
	assert.True(t, savings.ProgressPercentage.Equal(decimal.NewFromFloat(25)), "ProgressPercentage is %s", savings.ProgressPercentage)
}

// Savings goals never move the budget's totals.
func (suite *TestSuiteStandard) TestCreateSavingsLeavesBudgetUntouched() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})

	_ = suite.createSavingsViaAPI(controllers.SavingsEditable{
		BudgetID:     budget.ID,
		Goal:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(1000),
		ActualAmount: decimal.NewFromFloat(250),
	})

	reloaded := suite.requireBudget(budget.ID)
	assert.True(t, reloaded.TotalIncome.IsZero())
	assert.True(t, reloaded.TotalBudgetedExpenses.IsZero())
	assert.True(t, reloaded.BalanceProjected.IsZero())
	assert.True(t, reloaded.BalanceActual.IsZero())
}

func (suite *TestSuiteStandard) TestCreateSavingsInvalid() {
	budget := suite.createTestBudget(models.Budget{})

	tests := []struct {
		name   string
		body   controllers.SavingsEditable
		status int
	}{
		{"goal missing", controllers.SavingsEditable{BudgetID: budget.ID, TargetAmount: decimal.NewFromFloat(1000)}, http.StatusBadRequest},
		{"negative target", controllers.SavingsEditable{BudgetID: budget.ID, Goal: "Emergency fund", TargetAmount: decimal.NewFromFloat(-1)}, http.StatusBadRequest},
		{"unknown method", controllers.SavingsEditable{BudgetID: budget.ID, Goal: "Emergency fund", SavingMethod: "Sock drawer"}, http.StatusBadRequest},
		{"budget does not exist", controllers.SavingsEditable{BudgetID: uuid.New(), Goal: "Emergency fund", TargetAmount: decimal.NewFromFloat(1000)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			recorder := test.Request(t, http.MethodPost, "/api/savings", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// The progress is recalculated on every update, regardless of which
// field changed.
func (suite *TestSuiteStandard) TestUpdateSavingsRecalculatesProgress() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	savings := suite.createSavingsViaAPI(controllers.SavingsEditable{
		BudgetID:     budget.ID,
		Goal:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(1000),
		ActualAmount: decimal.NewFromFloat(250),
	})

	recorder := test.Request(t, http.MethodPut, fmt.Sprintf("/api/savings/%s", savings.ID), map[string]any{
		"actualAmount": "1500",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var reloaded models.Savings
	require.Nil(t, models.DB.First(&reloaded, savings.ID).Error)

	// Overshooting the target clamps the progress to 100
	assert.True(t, reloaded.ProgressPercentage.Equal(decimal.NewFromFloat(100)), "ProgressPercentage is %s", reloaded.ProgressPercentage)
}

// A target of zero keeps the previous progress value.
func (suite *TestSuiteStandard) TestUpdateSavingsZeroTarget() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	savings := suite.createSavingsViaAPI(controllers.SavingsEditable{
		BudgetID:     budget.ID,
		Goal:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(1000),
		ActualAmount: decimal.NewFromFloat(250),
	})

	recorder := test.Request(t, http.MethodPut, fmt.Sprintf("/api/savings/%s", savings.ID), map[string]any{
		"targetAmount": "0",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var reloaded models.Savings
	require.Nil(t, models.DB.First(&reloaded, savings.ID).Error)
	assert.True(t, reloaded.ProgressPercentage.Equal(decimal.NewFromFloat(25)), "ProgressPercentage is %s", reloaded.ProgressPercentage)
}

func (suite *TestSuiteStandard) TestUpdateSavingsBudgetImmutable() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	other := suite.createTestBudget(models.Budget{UserID: budget.UserID, Month: 2})

	savings := suite.createSavingsViaAPI(controllers.SavingsEditable{
		BudgetID:     budget.ID,
		Goal:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(1000),
	})

	recorder := test.Request(t, http.MethodPut, fmt.Sprintf("/api/savings/%s", savings.ID), map[string]any{
		"budgetId": other.ID,
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteSavings() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	savings := suite.createSavingsViaAPI(controllers.SavingsEditable{
		BudgetID:     budget.ID,
		Goal:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(1000),
	})

	recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("/api/savings/%s", savings.ID), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	getRecorder := test.Request(t, http.MethodGet, fmt.Sprintf("/api/savings/%s", savings.ID), "")
	test.AssertHTTPStatus(t, &getRecorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetSavingsListInvalidFilter() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/api/savings?budgetId=not-a-uuid", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response errorResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.False(t, response.Success)
}

func (suite *TestSuiteStandard) TestGetSavingsListFilter() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	other := suite.createTestBudget(models.Budget{UserID: budget.UserID, Month: 2})

	_ = suite.createSavingsViaAPI(controllers.SavingsEditable{BudgetID: budget.ID, Goal: "Emergency fund", TargetAmount: decimal.NewFromFloat(1000)})
	_ = suite.createSavingsViaAPI(controllers.SavingsEditable{BudgetID: other.ID, Goal: "Vacation", TargetAmount: decimal.NewFromFloat(2000)})

	recorder := test.Request(t, http.MethodGet, fmt.Sprintf("/api/savings?budgetId=%s", budget.ID), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response controllers.SavingsListResponse
	test.DecodeResponse(t, &recorder, &response)

	require.Equal(t, 1, response.Count)
	assert.Equal(t, "Emergency fund", response.Data[0].Goal)
}
