package auth

import (
	"errors"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// contextUser is the gin context key the middleware stores the
// authenticated user under.
const contextUser = "expense-tracker-user"

var ErrNoUser = errors.New("no authenticated user in request context")

// SetCurrentUser stores the authenticated user in the request context.
func SetCurrentUser(c *gin.Context, user models.User) {
	c.Set(contextUser, user)
}

// CurrentUser resolves the authenticated user for the current request.
// It only returns an error when the middleware did not run, which is a
// routing mistake.
func CurrentUser(c *gin.Context) (models.User, error) {
	value, ok := c.Get(contextUser)
	if !ok {
		return models.User{}, ErrNoUser
	}

	user, ok := value.(models.User)
	if !ok {
		return models.User{}, ErrNoUser
	}

	return user, nil
}
