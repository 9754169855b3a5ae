package controllers

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetExpense)
		r.PUT("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// CreateExpense creates a new expense and adds its contribution to the
// owning budget's totals. The expense and the budget are written in
// the same transaction, the budget exactly once.
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	expense := editable.model()
	if err := expense.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, expense.BudgetID).Error; err != nil {
			return err
		}

		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		next := budget.ApplyExpenseCreate(expense)
		return tx.Model(&budget).Select(models.AggregateFields).Updates(next).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Success: true, Data: &data})
}

// GetExpenses returns all expenses, optionally filtered by budget,
// category and status.
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		abortWithError(c, err)
		return
	}

	q := models.DB.Order("expected_purchase_date ASC")
	if filter.BudgetID != bb_uuid.Nil {
		q = q.Where("budget_id = ?", filter.BudgetID.UUID)
	}

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Success: true, Count: len(data), Data: data})
}

// GetExpense returns a specific expense.
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Success: true, Data: &data})
}

// UpdateExpense updates an expense and applies the delta between the
// old and the new state to the owning budget. The budgeted and actual
// sides are adjusted independently.
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	// The old state is needed for the delta
	old := expense

	// Fields that are not part of the request body keep their values
	editable := newExpenseEditable(expense)
	err = httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if editable.BudgetID != old.BudgetID {
		abortWithError(c, errBudgetImmutable)
		return
	}

	updated := editable.model()
	if err := updated.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, old.BudgetID).Error; err != nil {
			return err
		}

		if err := tx.Model(&expense).Select(expenseEditableFields).Updates(updated).Error; err != nil {
			return err
		}

		next := budget.ApplyExpenseUpdate(old, updated)
		return tx.Model(&budget).Select(models.AggregateFields).Updates(next).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Success: true, Data: &data})
}

// DeleteExpense deletes an expense and removes its contribution from
// the owning budget's totals.
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, expense.BudgetID).Error; err != nil {
			return err
		}

		next := budget.ApplyExpenseDelete(expense)
		if err := tx.Model(&budget).Select(models.AggregateFields).Updates(next).Error; err != nil {
			return err
		}

		return tx.Delete(&expense).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletedResponse{Success: true})
}
