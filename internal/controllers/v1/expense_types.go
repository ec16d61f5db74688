package v1

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRequest represents all user configurable parameters of an
// expense.
type ExpenseRequest struct {
	Title       string          `json:"title" binding:"required,max=100" example:"Groceries at the corner store"`      // Title of the expense
	Description string          `json:"description" binding:"omitempty,max=500" example:"Weekly shopping"`             // Description of the expense
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"32.17"`                                     // Amount spent, must be positive
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required" example:"c7b1e3e2-41d1-4d30-8d7d-6bd7b2d8be32"` // Category the expense belongs to
}

func (r ExpenseRequest) model(owner uuid.UUID) models.Expense {
	return models.Expense{
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		CategoryID:  r.CategoryID,
		CreatedByID: owner,
	}
}

// ExpenseSearchRequest are the optional predicates for an expense
// search. Absent fields impose no constraint.
type ExpenseSearchRequest struct {
	PaginationRequest
	ID           *uuid.UUID `json:"id"`                                       // By resource ID
	CategoryID   *uuid.UUID `json:"categoryId"`                               // By category
	Title        string     `json:"title" binding:"omitempty,max=100"`        // Substring of the title, case insensitive
	Description  string     `json:"description" binding:"omitempty,max=500"`  // Substring of the description, case insensitive
	OverviewText string     `json:"overviewText" binding:"omitempty,max=100"` // Substring of title or description, case insensitive
	StartDate    time.Time  `json:"startDate" example:"2022-04-01T00:00:00Z"` // Creation time range start, inclusive
	EndDate      time.Time  `json:"endDate" example:"2022-04-30T23:59:59Z"`   // Creation time range end, inclusive
}

func (r ExpenseSearchRequest) filter() models.ExpenseSearchFilter {
	return models.ExpenseSearchFilter{
		ID:           r.ID,
		CategoryID:   r.CategoryID,
		Title:        r.Title,
		Description:  r.Description,
		OverviewText: r.OverviewText,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}
}

// DistributionComparisonRequest is the time range for a comparison of
// expected and actual category distributions.
type DistributionComparisonRequest struct {
	StartDate time.Time `json:"startDate" binding:"required" example:"2022-04-01T00:00:00Z"` // Range start, inclusive
	EndDate   time.Time `json:"endDate" example:"2022-04-30T23:59:59Z"`                      // Range end, inclusive. Defaults to now
}

// DistributionComparisonResponse wraps the per-category comparison rows.
type DistributionComparisonResponse struct {
	Items []models.CategoryDistribution `json:"items"`
}

// TotalAmountResponse is the total amount spent in the current calendar
// month.
type TotalAmountResponse struct {
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1317.21"`
}
