package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrNotAuthorized    = errors.New("you are not authorized to access a resource that is not yours")

	ErrEmailTaken         = errors.New("this email address is already registered")
	ErrDistributionExists = errors.New("there is already an expected category distribution for this category")
	ErrCategoryNotOwned   = errors.New("the referenced category does not belong to you")

	ErrCategoryLimitReached = fmt.Errorf("you have reached the maximum of %d categories", MaxCategoriesPerUser)
)
