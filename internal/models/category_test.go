package models_test

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimmed() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{
		Title:       "  Housing ",
		Description: " Rent and repairs  ",
		CreatedByID: user.ID,
	})

	suite.Assert().Equal("Housing", category.Title)
	suite.Assert().Equal("Rent and repairs", category.Description)
	suite.Assert().NotZero(category.ID)
}

func (suite *TestSuiteStandard) TestCategoryLimit() {
	user := suite.createTestUser(models.User{})

	for i := 0; i < models.MaxCategoriesPerUser; i++ {
		_ = suite.createTestCategory(models.Category{
			Title:       fmt.Sprintf("Category %d", i),
			CreatedByID: user.ID,
		})
	}

	err := models.DB.Create(&models.Category{Title: "One too many", CreatedByID: user.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryLimitReached)

	// The limit is per user, other users are unaffected
	other := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{Title: "First", CreatedByID: other.ID})
}

func (suite *TestSuiteStandard) TestCategoryLimitAfterDelete() {
	user := suite.createTestUser(models.User{})

	var last models.Category
	for i := 0; i < models.MaxCategoriesPerUser; i++ {
		last = suite.createTestCategory(models.Category{
			Title:       fmt.Sprintf("Category %d", i),
			CreatedByID: user.ID,
		})
	}

	// Deleting frees up a slot since the delete is hard
	suite.Require().NoError(models.DB.Delete(&last).Error)
	_ = suite.createTestCategory(models.Category{Title: "Fits again", CreatedByID: user.ID})
}
