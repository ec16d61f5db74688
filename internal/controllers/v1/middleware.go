package v1

import (
	"net/http"
	"strings"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Authenticate verifies the bearer token and resolves the authenticated
// user for the request. Requests without a valid token are rejected with
// 401 before any handler runs.
func Authenticate(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			httputil.NewError(c, http.StatusUnauthorized, errBearerTokenRequired)
			c.Abort()
			return
		}

		userID, err := auth.ParseToken(token, cfg.JWTSecret)
		if err != nil {
			httputil.NewError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		// The token might outlive the user
		var user models.User
		err = models.DB.First(&user, userID).Error
		if err != nil {
			httputil.NewError(c, http.StatusUnauthorized, auth.ErrInvalidToken)
			c.Abort()
			return
		}

		auth.SetCurrentUser(c, user)
		c.Next()
	}
}

// requestUser returns the user resolved by the Authenticate middleware.
// The false return only happens when a route is wired without the
// middleware, in which case the request is answered with a server error.
func requestUser(c *gin.Context) (models.User, bool) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return models.User{}, false
	}

	return user, true
}
