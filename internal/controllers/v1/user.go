package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with the RouterGroup
// that is passed. Registration and login are the only unauthenticated
// endpoints of the API.
func RegisterUserRoutes(r *gin.RouterGroup, cfg config.Config) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", RegisterUser)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login(cfg))

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", Authenticate(cfg), Me)
}

// RegisterUser creates a new standard-role user.
func RegisterUser(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	user := models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
		Role:     models.UserRoleStandard,
	}

	err = models.DB.Create(&user).Error
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

	c.JSON(http.StatusOK, resultSuccess("user registered successfully"))
}

// Login verifies the credentials and issues a bearer token.
func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request LoginRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		var user models.User
		err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(request.Email))).Error
		if err != nil {
			if errors.Is(err, models.ErrGeneral) {
				c.JSON(http.StatusInternalServerError, httpError{
					Error: err.Error(),
				})
				return
			}

			// Not found reads the same as a wrong password on purpose
			httputil.NewError(c, http.StatusUnauthorized, errLoginFailed)
			return
		}

		if !auth.VerifyPassword(user.Password, request.Password) {
			httputil.NewError(c, http.StatusUnauthorized, errLoginFailed)
			return
		}

		token, expiresAt, err := auth.IssueToken(user.ID, cfg.JWTSecret, cfg.JWTLifetime)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: models.ErrGeneral.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}

// Me returns the authenticated user.
func Me(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, user)
}
