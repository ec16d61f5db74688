package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup, cfg config.Config) {
	r.Use(Authenticate(cfg))

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ListExpenses)
		r.POST("", CreateExpense)
	}

	// Search
	{
		r.OPTIONS("/search", httputil.OptionsPost)
		r.POST("/search", SearchExpenses)
	}

	// Metrics over the user's expenses
	{
		r.OPTIONS("/monthly-metric", httputil.OptionsGet)
		r.GET("/monthly-metric", MonthlyMetric)

		r.OPTIONS("/total-amount", httputil.OptionsGet)
		r.GET("/total-amount", TotalAmount)

		r.OPTIONS("/current-distribution", httputil.OptionsPost)
		r.POST("/current-distribution", CurrentDistribution)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetExpense)
		r.PUT("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// CreateExpense records a new expense for the authenticated user.
func CreateExpense(c *gin.Context) {
	var request ExpenseRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !request.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errAmountNotPositive.Error(),
		})
		return
	}

	user, ok := requestUser(c)
	if !ok {
		return
	}

	expense := request.model(user.ID)

	err = models.DB.Create(&expense).Error
	if err != nil {
		if errors.Is(err, models.ErrGeneral) {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, resultFailure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, resultSuccess("expense created successfully"))
}

// ListExpenses returns all expenses of all users. It is restricted to
// administrators.
func ListExpenses(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, httpError{
			Error: errAdminOnly.Error(),
		})
		return
	}

	var expenses []models.Expense
	err := models.DB.Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense returns a single expense. Only the owner and admins may
// read it.
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user, ok := requestUser(c)
	if !ok {
		return
	}

	if !user.MayAccess(expense.CreatedByID) {
		c.JSON(http.StatusForbidden, httpError{
			Error: models.ErrNotAuthorized.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense replaces the user configurable fields of an expense.
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var request ExpenseRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !request.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errAmountNotPositive.Error(),
		})
		return
	}

	user, ok := requestUser(c)
	if !ok {
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, "id = ?", uri.ID).Error
	if err != nil {
		if errors.Is(err, models.ErrGeneral) {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, resultFailure(err.Error()))
		return
	}

	if !user.MayAccess(expense.CreatedByID) {
		c.JSON(http.StatusOK, resultFailure(notYours("update", "expense")))
		return
	}

	// Changing the category re-checks its ownership against the expense owner
	if request.CategoryID != expense.CategoryID {
		err = models.CheckCategoryOwner(models.DB, request.CategoryID, expense.CreatedByID)
		if err != nil {
			if errors.Is(err, models.ErrGeneral) {
				c.JSON(http.StatusInternalServerError, httpError{
					Error: err.Error(),
				})
				return
			}

			c.JSON(http.StatusOK, resultFailure(err.Error()))
			return
		}
	}

	expense.Title = request.Title
	expense.Description = request.Description
	expense.Amount = request.Amount
	expense.CategoryID = request.CategoryID

	err = models.DB.Save(&expense).Error
	if err != nil {
		if errors.Is(err, models.ErrGeneral) {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, resultFailure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, resultSuccess("expense updated successfully"))
}

// DeleteExpense hard deletes an expense.
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user, ok := requestUser(c)
	if !ok {
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, "id = ?", uri.ID).Error
	if err != nil {
		if errors.Is(err, models.ErrGeneral) {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, resultFailure(err.Error()))
		return
	}

	if !user.MayAccess(expense.CreatedByID) {
		c.JSON(http.StatusOK, resultFailure(notYours("delete", "expense")))
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		if errors.Is(err, models.ErrGeneral) {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, resultFailure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, resultSuccess("expense deleted successfully"))
}

// SearchExpenses returns the page of expenses matching the search
// request, restricted to the authenticated user.
func SearchExpenses(c *gin.Context) {
	var request ExpenseSearchRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user, ok := requestUser(c)
	if !ok {
		return
	}

	page, err := models.SearchExpenses(models.DB, user, request.filter(), request.Limit, request.Offset)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// MonthlyMetric returns the expense metric for the current calendar
// month, compared against the previous one.
func MonthlyMetric(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	metric, err := models.CurrentMonthlyMetric(models.DB, user, time.Now())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, metric)
}

// TotalAmount returns the total amount spent in the current calendar
// month.
func TotalAmount(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	now := time.Now().In(time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	total, err := models.ExpensesSum(models.DB, user, monthStart, time.Time{})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, TotalAmountResponse{
		TotalAmount: total,
	})
}

// CurrentDistribution compares the configured target percentages with the
// actual spending shares in the requested time range.
func CurrentDistribution(c *gin.Context) {
	var request DistributionComparisonRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user, ok := requestUser(c)
	if !ok {
		return
	}

	endDate := request.EndDate
	if endDate.IsZero() {
		endDate = time.Now()
	}

	items, err := models.CurrentDistribution(models.DB, user, request.StartDate, endDate)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, DistributionComparisonResponse{
		Items: items,
	})
}
