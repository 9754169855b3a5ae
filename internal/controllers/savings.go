package controllers

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterSavingsRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetSavingsList)
		r.POST("", CreateSavings)
	}

	// Savings goal with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetSavings)
		r.PUT("/:id", UpdateSavings)
		r.DELETE("/:id", DeleteSavings)
	}
}

// CreateSavings creates a new savings goal. Savings do not feed into
// the budget's totals, but the progress percentage is derived before
// the goal is persisted.
func CreateSavings(c *gin.Context) {
	var editable SavingsEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	savings := editable.model()
	if err := savings.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.First(&models.Budget{}, savings.BudgetID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	savings.RecalculateProgress()

	err = models.DB.Create(&savings).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newSavings(c, savings)
	c.JSON(http.StatusCreated, SavingsResponse{Success: true, Data: &data})
}

// GetSavingsList returns all savings goals, optionally filtered by
// budget.
func GetSavingsList(c *gin.Context) {
	var filter SavingsQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		abortWithError(c, err)
		return
	}

	q := models.DB.Order("created_at ASC")
	if filter.BudgetID != bb_uuid.Nil {
		q = q.Where("budget_id = ?", filter.BudgetID.UUID)
	}

	var savings []models.Savings
	err := q.Find(&savings).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := make([]Savings, 0, len(savings))
	for _, s := range savings {
		data = append(data, newSavings(c, s))
	}

	c.JSON(http.StatusOK, SavingsListResponse{Success: true, Count: len(data), Data: data})
}

// GetSavings returns a specific savings goal.
func GetSavings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var savings models.Savings
	err = models.DB.First(&savings, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newSavings(c, savings)
	c.JSON(http.StatusOK, SavingsResponse{Success: true, Data: &data})
}

// UpdateSavings updates a savings goal. The progress percentage is
// recalculated before the goal is persisted, regardless of which field
// changed.
func UpdateSavings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var savings models.Savings
	err = models.DB.First(&savings, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Fields that are not part of the request body keep their values
	editable := newSavingsEditable(savings)
	err = httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if editable.BudgetID != savings.BudgetID {
		abortWithError(c, errBudgetImmutable)
		return
	}

	updated := editable.model()
	if err := updated.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	// Carry the previous progress: a target of zero leaves it untouched
	updated.ProgressPercentage = savings.ProgressPercentage
	updated.RecalculateProgress()

	err = models.DB.Model(&savings).Select(savingsEditableFields).Updates(updated).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newSavings(c, savings)
	c.JSON(http.StatusOK, SavingsResponse{Success: true, Data: &data})
}

// DeleteSavings deletes a savings goal.
func DeleteSavings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var savings models.Savings
	err = models.DB.First(&savings, uri.ID).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	err = models.DB.Delete(&savings).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletedResponse{Success: true})
}
