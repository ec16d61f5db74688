package v1

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/google/uuid"
)

// DistributionRequest represents all user configurable parameters of an
// expected category distribution.
type DistributionRequest struct {
	CategoryID   uuid.UUID `json:"categoryId" binding:"required" example:"c7b1e3e2-41d1-4d30-8d7d-6bd7b2d8be32"` // Category the target applies to
	Distribution int       `json:"distribution" binding:"gte=0,lte=100" example:"25"`                            // Target percentage, 0-100
}

func (r DistributionRequest) model(owner uuid.UUID) models.ExpectedCategoryDistribution {
	return models.ExpectedCategoryDistribution{
		CategoryID:   r.CategoryID,
		Distribution: r.Distribution,
		CreatedByID:  owner,
	}
}

// DistributionUpdateRequest holds the fields that can change on an
// existing distribution. The category is immutable, delete and recreate
// to move a target to another category.
type DistributionUpdateRequest struct {
	Distribution int `json:"distribution" binding:"gte=0,lte=100" example:"25"` // Target percentage, 0-100
}

// DistributionSearchRequest are the optional predicates for a
// distribution search. Absent fields impose no constraint.
type DistributionSearchRequest struct {
	PaginationRequest
	ID         *uuid.UUID `json:"id"`                                       // By resource ID
	CategoryID *uuid.UUID `json:"categoryId"`                               // By category
	StartDate  time.Time  `json:"startDate" example:"2022-04-01T00:00:00Z"` // Creation time range start, inclusive
	EndDate    time.Time  `json:"endDate" example:"2022-04-30T23:59:59Z"`   // Creation time range end, inclusive
}

func (r DistributionSearchRequest) filter() models.DistributionSearchFilter {
	return models.DistributionSearchFilter{
		ID:         r.ID,
		CategoryID: r.CategoryID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

// DistributionListEntry is a row in the listing of the authenticated
// user's distributions, with the category title resolved.
type DistributionListEntry struct {
	ID            uuid.UUID `json:"id" example:"b9d0b32d-0e44-4d30-b0ca-8fdcbd4a0398"`
	CategoryID    uuid.UUID `json:"categoryId" example:"c7b1e3e2-41d1-4d30-8d7d-6bd7b2d8be32"`
	CategoryTitle string    `json:"categoryTitle" example:"Housing"`
	Distribution  int       `json:"distribution" example:"25"`
}
