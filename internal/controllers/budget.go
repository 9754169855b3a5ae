package controllers

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetBudget)
		r.PUT("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// CreateBudget creates a new budget. The referenced user must exist,
// and there can be only one budget per user, month and year.
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	budget := editable.model()
	if err := budget.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.First(&models.User{}, budget.UserID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Success: true, Data: &data})
}

// GetBudgets returns all budgets, optionally filtered by user.
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		abortWithError(c, err)
		return
	}

	q := models.DB.Order("year ASC, month ASC")
	if filter.UserID != bb_uuid.Nil {
		q = q.Where("user_id = ?", filter.UserID.UUID)
	}

	var budgets []models.Budget
	err := q.Find(&budgets).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Success: true, Count: len(data), Data: data})
}

// GetBudget returns a specific budget with its incomes, expenses and
// savings goals expanded.
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data, err := newBudgetDetail(c, models.DB, budget)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetDetailResponse{Success: true, Data: &data})
}

// UpdateBudget updates the user configurable fields of a budget. The
// derived totals cannot be set through the API.
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Fields that are not part of the request body keep their values
	editable := newBudgetEditable(budget)
	err = httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	updated := editable.model()
	if err := updated.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	if updated.UserID != budget.UserID {
		err = models.DB.First(&models.User{}, updated.UserID).Error
		if err != nil {
			abortWithError(c, err)
			return
		}
	}

	err = models.DB.Model(&budget).Select(budgetEditableFields).Updates(updated).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Success: true, Data: &data})
}

// DeleteBudget deletes a budget together with all incomes, expenses
// and savings goals that belong to it, so that no orphaned records
// remain.
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.Income{}).Error; err != nil {
			return err
		}

		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}

		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.Savings{}).Error; err != nil {
			return err
		}

		return tx.Delete(&budget).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletedResponse{Success: true})
}
