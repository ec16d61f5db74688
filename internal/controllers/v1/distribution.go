package v1

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDistributionRoutes registers the routes for expected category
// distributions with the RouterGroup that is passed.
func RegisterDistributionRoutes(r *gin.RouterGroup, cfg config.Config) {
	r.Use(Authenticate(cfg))

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ListDistributions)
		r.POST("", CreateDistribution)
	}

	// Search
	{
		r.OPTIONS("/search", httputil.OptionsPost)
		r.POST("/search", SearchDistributions)
	}

	// The requester's targets with category titles resolved
	{
		r.OPTIONS("/distribution", httputil.OptionsGet)
		r.GET("/distribution", CurrentUserDistributions)
	}

	// Distribution with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetDistribution)
		r.PUT("/:id", UpdateDistribution)
		r.DELETE("/:id", DeleteDistribution)
	}
}

// CreateDistribution configures a new target percentage for a category of
// the authenticated user.
func CreateDistribution(c *gin.Context) {
	var request DistributionRequest
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

	distribution := request.model(user.ID)

	err = models.DB.Create(&distribution).Error
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

	c.JSON(http.StatusOK, resultSuccess("expected category distribution created successfully"))
}

// ListDistributions returns all expected category distributions of all
// users. It is restricted to administrators.
func ListDistributions(c *gin.Context) {
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

	var distributions []models.ExpectedCategoryDistribution
	err := models.DB.Order("created_at DESC").Find(&distributions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, distributions)
}

// CurrentUserDistributions returns the authenticated user's distributions
// with category titles resolved.
func CurrentUserDistributions(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var distributions []models.ExpectedCategoryDistribution
	err := models.DB.Preload("Category").Order("id ASC").
		Where("created_by_id = ?", user.ID).
		Find(&distributions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	entries := make([]DistributionListEntry, 0, len(distributions))
	for _, distribution := range distributions {
		entries = append(entries, DistributionListEntry{
			ID:            distribution.ID,
			CategoryID:    distribution.CategoryID,
			CategoryTitle: distribution.Category.Title,
			Distribution:  distribution.Distribution,
		})
	}

	c.JSON(http.StatusOK, entries)
}

// GetDistribution returns a single expected category distribution. Only
// the owner and admins may read it.
func GetDistribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var distribution models.ExpectedCategoryDistribution
	err = models.DB.First(&distribution, "id = ?", uri.ID).Error
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

	if !user.MayAccess(distribution.CreatedByID) {
		c.JSON(http.StatusForbidden, httpError{
			Error: models.ErrNotAuthorized.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, distribution)
}

// UpdateDistribution changes the target percentage of an existing
// distribution. The category cannot be changed.
func UpdateDistribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var request DistributionUpdateRequest
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

	var distribution models.ExpectedCategoryDistribution
	err = models.DB.First(&distribution, "id = ?", uri.ID).Error
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

	if !user.MayAccess(distribution.CreatedByID) {
		c.JSON(http.StatusOK, resultFailure(notYours("update", "expected category distribution")))
		return
	}

	distribution.Distribution = request.Distribution

	err = models.DB.Save(&distribution).Error
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

	c.JSON(http.StatusOK, resultSuccess("expected category distribution updated successfully"))
}

// DeleteDistribution hard deletes an expected category distribution.
func DeleteDistribution(c *gin.Context) {
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

	var distribution models.ExpectedCategoryDistribution
	err = models.DB.First(&distribution, "id = ?", uri.ID).Error
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

	if !user.MayAccess(distribution.CreatedByID) {
		c.JSON(http.StatusOK, resultFailure(notYours("delete", "expected category distribution")))
		return
	}

	err = models.DB.Delete(&distribution).Error
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

	c.JSON(http.StatusOK, resultSuccess("expected category distribution deleted successfully"))
}

// SearchDistributions returns the page of expected category distributions
// matching the search request, restricted to the authenticated user.
func SearchDistributions(c *gin.Context) {
	var request DistributionSearchRequest
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

	page, err := models.SearchDistributions(models.DB, user, request.filter(), request.Limit, request.Offset)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}
