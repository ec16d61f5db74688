package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpectedCategoryDistribution is the target percentage of total spending
// a user wants to allocate to a category. One distribution per category
// and user.
type ExpectedCategoryDistribution struct {
	DefaultModel
	CategoryID   uuid.UUID `json:"categoryId" gorm:"uniqueIndex:distribution_category_owner" example:"c7b1e3e2-41d1-4d30-8d7d-6bd7b2d8be32"`
	Category     Category  `json:"-"`
	Distribution int       `json:"distribution" example:"25"` // Target percentage, 0-100
	CreatedByID  uuid.UUID `json:"createdBy" gorm:"uniqueIndex:distribution_category_owner" example:"d428f74c-7e33-482a-9ab3-04e2b7c46bcd"`
	CreatedBy    User      `json:"-"`
}

// BeforeCreate verifies that the referenced category exists and belongs
// to the user configuring the distribution.
func (d *ExpectedCategoryDistribution) BeforeCreate(tx *gorm.DB) (err error) {
	err = d.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return CheckCategoryOwner(tx, d.CategoryID, d.CreatedByID)
}

// CategoryDistribution compares the configured target percentage of a
// category with the share of actual spending.
type CategoryDistribution struct {
	CategoryID           uuid.UUID       `json:"categoryId" example:"c7b1e3e2-41d1-4d30-8d7d-6bd7b2d8be32"`
	CategoryTitle        string          `json:"categoryTitle" example:"Housing"`
	ExpectedDistribution int             `json:"expectedDistribution" example:"25"`
	CurrentDistribution  decimal.Decimal `json:"currentDistribution" example:"27.31"`
}

// CurrentDistribution computes, per category with a configured target, the
// percentage share of the total expense amount in the given time range.
//
// When the total in range is zero, every category reports 0% so that there
// is no division by zero.
func CurrentDistribution(db *gorm.DB, user User, from, to time.Time) ([]CategoryDistribution, error) {
	var distributions []ExpectedCategoryDistribution

	q := db.Preload("Category").Order("id ASC")
	if !user.IsAdmin() {
		q = q.Where("created_by_id = ?", user.ID)
	}

	err := q.Find(&distributions).Error
	if err != nil {
		return nil, fmt.Errorf("getting expected category distributions failed: %w", err)
	}

	total, err := ExpensesSum(db, user, from, to)
	if err != nil {
		return nil, err
	}

	type categorySum struct {
		CategoryID uuid.UUID
		Total      decimal.Decimal
	}

	var sums []categorySum
	err = expenseRangeQuery(db, user, from, to).
		Select("category_id, SUM(amount) AS total").
		Group("category_id").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("summing expenses per category failed: %w", err)
	}

	perCategory := make(map[uuid.UUID]decimal.Decimal, len(sums))
	for _, s := range sums {
		perCategory[s.CategoryID] = s.Total
	}

	hundred := decimal.NewFromInt(100)

	result := make([]CategoryDistribution, 0, len(distributions))
	for _, distribution := range distributions {
		current := decimal.Zero
		if amount, ok := perCategory[distribution.CategoryID]; ok && !total.IsZero() {
			current = amount.Div(total).Mul(hundred).Round(2)
		}

		result = append(result, CategoryDistribution{
			CategoryID:           distribution.CategoryID,
			CategoryTitle:        distribution.Category.Title,
			ExpectedDistribution: distribution.Distribution,
			CurrentDistribution:  current,
		})
	}

	return result, nil
}
