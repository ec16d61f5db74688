package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page is the pagination envelope returned by all search operations.
// TotalCount is the number of matches ignoring Limit and Offset.
type Page[T any] struct {
	Limit      int   `json:"limit" example:"25"`
	Offset     int   `json:"offset" example:"50"`
	TotalCount int64 `json:"totalCount" example:"127"`
	Items      []T   `json:"items"`
}

// searchOrder is the deterministic ordering for all search results:
// newest created first, then most recently updated, the ID is a stable
// tie break.
const searchOrder = "created_at DESC, updated_at DESC, id ASC"

// paginate executes the filtered query and assembles the pagination
// envelope.
func paginate[T any](q *gorm.DB, limit, offset int) (Page[T], error) {
	page := Page[T]{
		Limit:  limit,
		Offset: offset,
		Items:  make([]T, 0),
	}

	err := q.Order(searchOrder).Limit(limit).Offset(offset).Find(&page.Items).Error
	if err != nil {
		return page, err
	}

	err = q.Limit(-1).Offset(-1).Count(&page.TotalCount).Error
	if err != nil {
		return page, err
	}

	return page, nil
}

// ownerScope restricts a query to records owned by the user. Admins see
// all records.
func ownerScope(q *gorm.DB, user User) *gorm.DB {
	if user.IsAdmin() {
		return q
	}

	return q.Where("created_by_id = ?", user.ID)
}

// substring builds a case insensitive substring condition argument.
func substring(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// CategorySearchFilter holds the optional predicates for a category
// search. Zero values impose no constraint, supplied fields are combined
// with a logical AND.
type CategorySearchFilter struct {
	ID           *uuid.UUID
	Title        string
	Description  string
	OverviewText string
	StartDate    time.Time
	EndDate      time.Time
}

func (f CategorySearchFilter) query(db *gorm.DB, user User) *gorm.DB {
	q := ownerScope(db.Model(&Category{}), user)

	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}

	if f.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", substring(f.Title))
	}

	if f.Description != "" {
		q = q.Where("LOWER(description) LIKE ?", substring(f.Description))
	}

	if f.OverviewText != "" {
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", substring(f.OverviewText), substring(f.OverviewText))
	}

	return dateRange(q, f.StartDate, f.EndDate)
}

// SearchCategories returns the page of categories matching the filter,
// scoped to the user.
func SearchCategories(db *gorm.DB, user User, filter CategorySearchFilter, limit, offset int) (Page[Category], error) {
	return paginate[Category](filter.query(db, user), limit, offset)
}

// ExpenseSearchFilter holds the optional predicates for an expense search.
type ExpenseSearchFilter struct {
	ID           *uuid.UUID
	CategoryID   *uuid.UUID
	Title        string
	Description  string
	OverviewText string
	StartDate    time.Time
	EndDate      time.Time
}

func (f ExpenseSearchFilter) query(db *gorm.DB, user User) *gorm.DB {
	q := ownerScope(db.Model(&Expense{}), user)

	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	if f.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", substring(f.Title))
	}

	if f.Description != "" {
		q = q.Where("LOWER(description) LIKE ?", substring(f.Description))
	}

	if f.OverviewText != "" {
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", substring(f.OverviewText), substring(f.OverviewText))
	}

	return dateRange(q, f.StartDate, f.EndDate)
}

// SearchExpenses returns the page of expenses matching the filter, scoped
// to the user.
func SearchExpenses(db *gorm.DB, user User, filter ExpenseSearchFilter, limit, offset int) (Page[Expense], error) {
	return paginate[Expense](filter.query(db, user), limit, offset)
}

// DistributionSearchFilter holds the optional predicates for an expected
// category distribution search.
type DistributionSearchFilter struct {
	ID         *uuid.UUID
	CategoryID *uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

func (f DistributionSearchFilter) query(db *gorm.DB, user User) *gorm.DB {
	q := ownerScope(db.Model(&ExpectedCategoryDistribution{}), user)

	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	return dateRange(q, f.StartDate, f.EndDate)
}

// SearchDistributions returns the page of expected category distributions
// matching the filter, scoped to the user.
func SearchDistributions(db *gorm.DB, user User, filter DistributionSearchFilter, limit, offset int) (Page[ExpectedCategoryDistribution], error) {
	return paginate[ExpectedCategoryDistribution](filter.query(db, user), limit, offset)
}

// dateRange adds an inclusive range condition on the creation time.
func dateRange(q *gorm.DB, from, to time.Time) *gorm.DB {
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}

	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}

	return q
}
