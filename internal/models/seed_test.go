package models_test

import (
	"github.com/expense-tracker/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateSeedData() {
	user := suite.createTestUser(models.User{})

	err := models.CreateSeedData(models.DB, user)
	suite.Require().NoError(err)

	var categories int64
	suite.Require().NoError(models.DB.Model(&models.Category{}).Where("created_by_id = ?", user.ID).Count(&categories).Error)
	suite.Assert().Equal(int64(models.MaxCategoriesPerUser), categories)

	var distributions []models.ExpectedCategoryDistribution
	suite.Require().NoError(models.DB.Where("created_by_id = ?", user.ID).Find(&distributions).Error)
	suite.Require().Len(distributions, models.MaxCategoriesPerUser)

	// The recommended targets add up to the full budget
	sum := 0
	for _, distribution := range distributions {
		sum += distribution.Distribution
	}
	suite.Assert().Equal(100, sum)
}

func (suite *TestSuiteStandard) TestCreateSeedDataIdempotent() {
	user := suite.createTestUser(models.User{})

	suite.Require().NoError(models.CreateSeedData(models.DB, user))

	// A second run must not try to exceed the category limit
	suite.Require().NoError(models.CreateSeedData(models.DB, user))

	var categories int64
	suite.Require().NoError(models.DB.Model(&models.Category{}).Where("created_by_id = ?", user.ID).Count(&categories).Error)
	suite.Assert().Equal(int64(models.MaxCategoriesPerUser), categories)
}

func (suite *TestSuiteStandard) TestCreateSeedDataExistingCategories() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{Title: "Already here", CreatedByID: user.ID})

	suite.Require().NoError(models.CreateSeedData(models.DB, user))

	var categories int64
	suite.Require().NoError(models.DB.Model(&models.Category{}).Where("created_by_id = ?", user.ID).Count(&categories).Error)
	suite.Assert().Equal(int64(1), categories)
}
