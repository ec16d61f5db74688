package v1

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/google/uuid"
)

// CategoryRequest represents all user configurable parameters of a
// category.
type CategoryRequest struct {
	Title       string `json:"title" binding:"required,max=100" example:"Housing"`                        // Title of the category
	Description string `json:"description" binding:"omitempty,max=500" example:"Rent, mortgage, repairs"` // Description of the category
}

func (r CategoryRequest) model(owner uuid.UUID) models.Category {
	return models.Category{
		Title:       r.Title,
		Description: r.Description,
		CreatedByID: owner,
	}
}

// CategorySearchRequest are the optional predicates for a category
// search. Absent fields impose no constraint.
type CategorySearchRequest struct {
	PaginationRequest
	ID           *uuid.UUID `json:"id"`                                       // By resource ID
	Title        string     `json:"title" binding:"omitempty,max=100"`        // Substring of the title, case insensitive
	Description  string     `json:"description" binding:"omitempty,max=500"`  // Substring of the description, case insensitive
	OverviewText string     `json:"overviewText" binding:"omitempty,max=100"` // Substring of title or description, case insensitive
	StartDate    time.Time  `json:"startDate" example:"2022-04-01T00:00:00Z"` // Creation time range start, inclusive
	EndDate      time.Time  `json:"endDate" example:"2022-04-30T23:59:59Z"`   // Creation time range end, inclusive
}

func (r CategorySearchRequest) filter() models.CategorySearchFilter {
	return models.CategorySearchFilter{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		OverviewText: r.OverviewText,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}
}
