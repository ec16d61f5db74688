package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no category matching your query"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrNotAuthorized) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

var (
	errBearerTokenRequired = errors.New("a valid bearer token is required")
	errLoginFailed         = errors.New("the email or password is incorrect")
	errAdminOnly           = errors.New("this endpoint is restricted to administrators")
	errAmountNotPositive   = errors.New("the amount must be greater than zero")
)

// notYours builds the mutation failure message for ownership violations.
func notYours(action, resource string) string {
	return fmt.Sprintf("you are not authorized to %s a %s that is not yours", action, resource)
}
