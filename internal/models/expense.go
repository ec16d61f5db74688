package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single recorded expense. It always references a category
// owned by the same user.
type Expense struct {
	DefaultModel
	Title       string          `json:"title" example:"Groceries at the corner store"`
	Description string          `json:"description" example:"Weekly shopping"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"32.17"`
	CategoryID  uuid.UUID       `json:"categoryId" example:"c7b1e3e2-41d1-4d30-8d7d-6bd7b2d8be32"`
	Category    Category        `json:"-"`
	CreatedByID uuid.UUID       `json:"createdBy" example:"d428f74c-7e33-482a-9ab3-04e2b7c46bcd"`
	CreatedBy   User            `json:"-"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)

	return nil
}

// BeforeCreate verifies that the referenced category exists and belongs
// to the user recording the expense.
func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	err = e.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return CheckCategoryOwner(tx, e.CategoryID, e.CreatedByID)
}

// CheckCategoryOwner returns an error when the category does not exist or
// is owned by another user. Used by resources referencing a category.
func CheckCategoryOwner(tx *gorm.DB, categoryID, ownerID uuid.UUID) error {
	var category Category
	err := tx.First(&category, categoryID).Error
	if err != nil {
		return err
	}

	if category.CreatedByID != ownerID {
		return ErrCategoryNotOwned
	}

	return nil
}

// ExpensesSum returns the total amount of expenses in the given time range,
// scoped to the user. Admins get the sum over all users. Zero range bounds
// impose no constraint.
func ExpensesSum(db *gorm.DB, user User, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := expenseRangeQuery(db, user, from, to).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses failed: %w", err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// ExpensesCount returns the number of expenses in the given time range,
// scoped to the user.
func ExpensesCount(db *gorm.DB, user User, from, to time.Time) (int64, error) {
	var count int64

	err := expenseRangeQuery(db, user, from, to).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting expenses failed: %w", err)
	}

	return count, nil
}

func expenseRangeQuery(db *gorm.DB, user User, from, to time.Time) *gorm.DB {
	q := db.Table("expenses")

	if !user.IsAdmin() {
		q = q.Where("created_by_id = ?", user.ID)
	}

	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}

	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}

	return q
}

// MonthlyExpenseMetric summarizes spending for a calendar month.
type MonthlyExpenseMetric struct {
	Month               string          `json:"month" example:"2022-07"`
	TotalAmount         decimal.Decimal `json:"totalAmount" example:"1317.21"`
	ExpenseCount        int64           `json:"expenseCount" example:"23"`
	PreviousMonthAmount decimal.Decimal `json:"previousMonthAmount" example:"1242.78"`
	ChangePercentage    decimal.Decimal `json:"changePercentage" example:"5.99"`
}

// CurrentMonthlyMetric computes the expense metric for the calendar month
// that contains now, including the change against the previous month.
func CurrentMonthlyMetric(db *gorm.DB, user User, now time.Time) (MonthlyExpenseMetric, error) {
	now = now.In(time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previousStart := monthStart.AddDate(0, -1, 0)

	total, err := ExpensesSum(db, user, monthStart, time.Time{})
	if err != nil {
		return MonthlyExpenseMetric{}, err
	}

	count, err := ExpensesCount(db, user, monthStart, time.Time{})
	if err != nil {
		return MonthlyExpenseMetric{}, err
	}

	previous, err := ExpensesSum(db, user, previousStart, monthStart.Add(-time.Nanosecond))
	if err != nil {
		return MonthlyExpenseMetric{}, err
	}

	// A month without spending has no meaningful baseline, report 0%
	change := decimal.Zero
	if !previous.IsZero() {
		change = total.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return MonthlyExpenseMetric{
		Month:               monthStart.Format("2006-01"),
		TotalAmount:         total,
		ExpenseCount:        count,
		PreviousMonthAmount: previous,
		ChangePercentage:    change,
	}, nil
}
