package models_test

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSearchCategoriesScopedToOwner() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{Title: "Mine", CreatedByID: user.ID})
	_ = suite.createTestCategory(models.Category{Title: "Theirs", CreatedByID: other.ID})

	page, err := models.SearchCategories(models.DB, user, models.CategorySearchFilter{}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal("Mine", page.Items[0].Title)
}

func (suite *TestSuiteStandard) TestSearchCategoriesAdminSeesAll() {
	user := suite.createTestUser(models.User{})
	admin := suite.createTestUser(models.User{Role: models.UserRoleAdmin})

	_ = suite.createTestCategory(models.Category{Title: "Mine", CreatedByID: user.ID})
	_ = suite.createTestCategory(models.Category{Title: "Admins", CreatedByID: admin.ID})

	page, err := models.SearchCategories(models.DB, admin, models.CategorySearchFilter{}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(2), page.TotalCount)
}

func (suite *TestSuiteStandard) TestSearchCategoriesOverviewText() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{Title: "Housing", Description: "Rent and repairs", CreatedByID: user.ID})
	_ = suite.createTestCategory(models.Category{Title: "Food", Description: "Groceries and housing of snacks", CreatedByID: user.ID})
	_ = suite.createTestCategory(models.Category{Title: "Transport", Description: "Fuel", CreatedByID: user.ID})

	// The overview text matches title or description, case insensitive
	page, err := models.SearchCategories(models.DB, user, models.CategorySearchFilter{OverviewText: "HOUSING"}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(2), page.TotalCount)
}

func (suite *TestSuiteStandard) TestSearchCategoriesCombinesFilters() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{Title: "Housing", Description: "Rent", CreatedByID: user.ID})
	_ = suite.createTestCategory(models.Category{Title: "Housing Extras", Description: "Furniture", CreatedByID: user.ID})

	page, err := models.SearchCategories(models.DB, user, models.CategorySearchFilter{
		Title:       "housing",
		Description: "rent",
	}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal("Housing", page.Items[0].Title)
}

func (suite *TestSuiteStandard) TestSearchPagination() {
	user := suite.createTestUser(models.User{})

	base := time.Date(2022, 4, 1, 12, 0, 0, 0, time.UTC)
	titles := []string{"First", "Second", "Third", "Fourth", "Fifth"}
	for i, title := range titles {
		category := models.Category{Title: title, CreatedByID: user.ID}
		category.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_ = suite.createTestCategory(category)
	}

	page, err := models.SearchCategories(models.DB, user, models.CategorySearchFilter{}, 2, 0)
	suite.Require().NoError(err)

	// TotalCount ignores limit and offset
	suite.Assert().Equal(int64(5), page.TotalCount)
	suite.Assert().Equal(2, page.Limit)
	suite.Assert().Equal(0, page.Offset)
	suite.Require().Len(page.Items, 2)

	// Newest first
	suite.Assert().Equal("Fifth", page.Items[0].Title)
	suite.Assert().Equal("Fourth", page.Items[1].Title)

	page, err = models.SearchCategories(models.DB, user, models.CategorySearchFilter{}, 2, 4)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(5), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal("First", page.Items[0].Title)
}

func (suite *TestSuiteStandard) TestSearchPaginationOffsetBeyondEnd() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{Title: "Only one", CreatedByID: user.ID})

	page, err := models.SearchCategories(models.DB, user, models.CategorySearchFilter{}, 10, 100)
	suite.Require().NoError(err)

	// An offset beyond the result set is not an error
	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Assert().NotNil(page.Items)
	suite.Assert().Len(page.Items, 0)
}

func (suite *TestSuiteStandard) TestSearchCategoriesDateRange() {
	user := suite.createTestUser(models.User{})

	category := models.Category{Title: "April", CreatedByID: user.ID}
	category.CreatedAt = time.Date(2022, 4, 15, 12, 0, 0, 0, time.UTC)
	_ = suite.createTestCategory(category)

	category = models.Category{Title: "May", CreatedByID: user.ID}
	category.CreatedAt = time.Date(2022, 5, 15, 12, 0, 0, 0, time.UTC)
	_ = suite.createTestCategory(category)

	page, err := models.SearchCategories(models.DB, user, models.CategorySearchFilter{
		StartDate: time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2022, 4, 30, 23, 59, 59, 0, time.UTC),
	}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal("April", page.Items[0].Title)
}

func (suite *TestSuiteStandard) TestSearchExpensesByCategory() {
	user := suite.createTestUser(models.User{})
	housing := suite.createTestCategory(models.Category{Title: "Housing", CreatedByID: user.ID})
	food := suite.createTestCategory(models.Category{Title: "Food", CreatedByID: user.ID})

	_ = suite.createTestExpense(models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(800), CategoryID: housing.ID, CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Title: "Groceries", Amount: decimal.NewFromFloat(50), CategoryID: food.ID, CreatedByID: user.ID})

	page, err := models.SearchExpenses(models.DB, user, models.ExpenseSearchFilter{CategoryID: &housing.ID}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal("Rent", page.Items[0].Title)
}

func (suite *TestSuiteStandard) TestSearchExpensesByID() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})

	expense := suite.createTestExpense(models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(800), CategoryID: category.ID, CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Title: "Other", Amount: decimal.NewFromFloat(10), CategoryID: category.ID, CreatedByID: user.ID})

	page, err := models.SearchExpenses(models.DB, user, models.ExpenseSearchFilter{ID: &expense.ID}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal(expense.ID, page.Items[0].ID)
}

func (suite *TestSuiteStandard) TestSearchDistributions() {
	user := suite.createTestUser(models.User{})
	housing := suite.createTestCategory(models.Category{Title: "Housing", CreatedByID: user.ID})
	food := suite.createTestCategory(models.Category{Title: "Food", CreatedByID: user.ID})

	_ = suite.createTestDistribution(models.ExpectedCategoryDistribution{CategoryID: housing.ID, Distribution: 60, CreatedByID: user.ID})
	_ = suite.createTestDistribution(models.ExpectedCategoryDistribution{CategoryID: food.ID, Distribution: 40, CreatedByID: user.ID})

	page, err := models.SearchDistributions(models.DB, user, models.DistributionSearchFilter{CategoryID: &food.ID}, 25, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal(40, page.Items[0].Distribution)
}
