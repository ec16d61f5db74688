package v1

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/events"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup, cfg config.Config) {
	r.Use(Authenticate(cfg))

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ListCategories)
		r.POST("", CreateCategory)
	}

	// Search
	{
		r.OPTIONS("/search", httputil.OptionsPost)
		r.POST("/search", SearchCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetCategory)
		r.PUT("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// CreateCategory creates a new category for the authenticated user and
// publishes the category created notification.
func CreateCategory(c *gin.Context) {
	var request CategoryRequest
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

	category := request.model(user.ID)

	err = models.DB.Create(&category).Error
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

	events.PublishCategoryCreated(c.Request.Context(), events.CategoryCreated{
		CategoryID: category.ID,
		Title:      category.Title,
		CreatedBy:  category.CreatedByID,
		CreatedAt:  category.CreatedAt,
	})

	c.JSON(http.StatusOK, resultSuccess("category created successfully"))
}

// ListCategories returns all categories of all users. It is restricted
// to administrators.
func ListCategories(c *gin.Context) {
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

	var categories []models.Category
	err := models.DB.Order("created_at DESC").Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory returns a single category. Only the owner and admins may
// read it.
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, "id = ?", uri.ID).Error
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

	if !user.MayAccess(category.CreatedByID) {
		c.JSON(http.StatusForbidden, httpError{
			Error: models.ErrNotAuthorized.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory replaces the user configurable fields of a category.
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var request CategoryRequest
	err = httputil.BindData(c, &request)
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

	var category models.Category
	err = models.DB.First(&category, "id = ?", uri.ID).Error
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

	if !user.MayAccess(category.CreatedByID) {
		c.JSON(http.StatusOK, resultFailure(notYours("update", "category")))
		return
	}

	category.Title = request.Title
	category.Description = request.Description

	err = models.DB.Save(&category).Error
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

	c.JSON(http.StatusOK, resultSuccess("category updated successfully"))
}

// DeleteCategory hard deletes a category.
func DeleteCategory(c *gin.Context) {
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

	var category models.Category
	err = models.DB.First(&category, "id = ?", uri.ID).Error
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

	if !user.MayAccess(category.CreatedByID) {
		c.JSON(http.StatusOK, resultFailure(notYours("delete", "category")))
		return
	}

	err = models.DB.Delete(&category).Error
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

	c.JSON(http.StatusOK, resultSuccess("category deleted successfully"))
}

// SearchCategories returns the page of categories matching the search
// request, restricted to the authenticated user.
func SearchCategories(c *gin.Context) {
	var request CategorySearchRequest
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

	page, err := models.SearchCategories(models.DB, user, request.filter(), request.Limit, request.Offset)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}
