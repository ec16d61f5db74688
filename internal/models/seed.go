package models

import (
	"fmt"

	"gorm.io/gorm"
)

// defaultCategories are the canonical starter categories with their
// recommended target distributions. The percentages add up to 100.
var defaultCategories = []struct {
	title        string
	description  string
	distribution int
}{
	{"Housing", "Rent, mortgage, repairs, and property taxes", 25},
	{"Transportation", "Car payments, fuel, public transit, and maintenance", 15},
	{"Food", "Groceries and dining out", 15},
	{"Utilities", "Electricity, water, gas, and internet", 10},
	{"Insurance", "Health, car, home, and life insurance", 10},
	{"Medical & Healthcare", "Doctor visits, prescriptions, and wellness", 5},
	{"Saving, Investing, & Debt Payments", "Savings deposits, investments, and loan payments", 5},
	{"Personal Spending", "Clothing, subscriptions, and everything personal", 5},
	{"Recreation & Entertainment", "Hobbies, travel, and going out", 5},
	{"Miscellaneous", "Everything that does not fit elsewhere", 5},
}

// CreateSeedData creates the default categories and their expected
// distributions for a user. It is a no-op when the user already owns
// categories.
func CreateSeedData(db *gorm.DB, user User) error {
	var count int64
	err := db.Model(&Category{}).Where("created_by_id = ?", user.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, seed := range defaultCategories {
		category := Category{
			Title:       seed.title,
			Description: seed.description,
			CreatedByID: user.ID,
		}

		err = db.Create(&category).Error
		if err != nil {
			return fmt.Errorf("seeding category %q failed: %w", seed.title, err)
		}

		distribution := ExpectedCategoryDistribution{
			CategoryID:   category.ID,
			Distribution: seed.distribution,
			CreatedByID:  user.ID,
		}

		err = db.Create(&distribution).Error
		if err != nil {
			return fmt.Errorf("seeding distribution for %q failed: %w", seed.title, err)
		}
	}

	return nil
}
