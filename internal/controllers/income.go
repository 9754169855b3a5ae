package controllers

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetIncome)
		r.PUT("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// CreateIncome creates a new income and adds its contribution to the
// owning budget's totals. The income and the budget are written in the
// same transaction, the budget exactly once.
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	income := editable.model()
	if err := income.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, income.BudgetID).Error; err != nil {
			return err
		}

		if err := tx.Create(&income).Error; err != nil {
			return err
		}

		next := budget.ApplyIncomeCreate(income)
		return tx.Model(&budget).Select(models.AggregateFields).Updates(next).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusCreated, IncomeResponse{Success: true, Data: &data})
}

// GetIncomes returns all incomes, optionally filtered by budget.
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		abortWithError(c, err)
		return
	}

	q := models.DB.Order("expected_date ASC")
	if filter.BudgetID != bb_uuid.Nil {
		q = q.Where("budget_id = ?", filter.BudgetID.UUID)
	}

	var incomes []models.Income
	err := q.Find(&incomes).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Success: true, Count: len(data), Data: data})
}

// GetIncome returns a specific income.
func GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Success: true, Data: &data})
}

// UpdateIncome updates an income and applies the delta between the old
// and the new state to the owning budget.
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	// The old state is needed for the delta
	old := income

	// Fields that are not part of the request body keep their values
	editable := newIncomeEditable(income)
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

		if err := tx.Model(&income).Select(incomeEditableFields).Updates(updated).Error; err != nil {
			return err
		}

		next := budget.ApplyIncomeUpdate(old, updated)
		return tx.Model(&budget).Select(models.AggregateFields).Updates(next).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Success: true, Data: &data})
}

// DeleteIncome deletes an income and removes its contribution from the
// owning budget's totals.
func DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, income.BudgetID).Error; err != nil {
			return err
		}

		next := budget.ApplyIncomeDelete(income)
		if err := tx.Model(&budget).Select(models.AggregateFields).Updates(next).Error; err != nil {
			return err
		}

		return tx.Delete(&income).Error
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletedResponse{Success: true})
}
