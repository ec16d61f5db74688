package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense", map[string]any{
		"title":      "Groceries",
		"amount":     "32.17",
		"categoryId": category.ID,
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result v1.OperationResult
	test.DecodeResponse(suite.T(), &recorder, &result)
	suite.Assert().True(result.Success)

	var expense models.Expense
	suite.Require().NoError(models.DB.First(&expense, "title = ?", "Groceries").Error)
	suite.Assert().True(expense.Amount.Equal(decimal.NewFromFloat(32.17)))
	suite.Assert().Equal(user.ID, expense.CreatedByID)
}

func (suite *TestSuiteStandard) TestCreateExpenseAmountMustBePositive() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense", map[string]any{
		"title":      "Negative",
		"amount":     "-5",
		"categoryId": category.ID,
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateExpenseCategoryChecks() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	foreign := suite.createTestCategory(models.Category{CreatedByID: other.ID})

	// Missing category
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense", map[string]any{
		"title":      "Orphan",
		"amount":     "10",
		"categoryId": uuid.New(),
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result v1.OperationResult
	test.DecodeResponse(suite.T(), &recorder, &result)
	suite.Assert().False(result.Success)
	suite.Assert().Equal("there is no category matching your query", result.Message)

	// Category of another user
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense", map[string]any{
		"title":      "Not mine",
		"amount":     "10",
		"categoryId": foreign.ID,
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &result)
	suite.Assert().False(result.Success)
	suite.Assert().Equal(models.ErrCategoryNotOwned.Error(), result.Message)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	expense := suite.createTestExpense(models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(800), CategoryID: category.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense/"+expense.ID.String(), "", suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var loaded models.Expense
	test.DecodeResponse(suite.T(), &recorder, &loaded)
	suite.Assert().Equal(expense.ID, loaded.ID)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense/"+expense.ID.String(), "", suite.bearer(other))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	user := suite.createTestUser(models.User{})
	housing := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	food := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	expense := suite.createTestExpense(models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(800), CategoryID: housing.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/expense/"+expense.ID.String(), map[string]any{
		"title":      "Takeout",
		"amount":     "23.50",
		"categoryId": food.ID,
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result v1.OperationResult
	test.DecodeResponse(suite.T(), &recorder, &result)
	suite.Assert().True(result.Success)

	var loaded models.Expense
	suite.Require().NoError(models.DB.First(&loaded, expense.ID).Error)
	suite.Assert().Equal("Takeout", loaded.Title)
	suite.Assert().Equal(food.ID, loaded.CategoryID)
	suite.Assert().True(loaded.Amount.Equal(decimal.NewFromFloat(23.50)))
}

func (suite *TestSuiteStandard) TestUpdateExpenseToForeignCategory() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	foreign := suite.createTestCategory(models.Category{CreatedByID: other.ID})
	expense := suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(10), CategoryID: category.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/expense/"+expense.ID.String(), map[string]any{
		"title":      "Moved",
		"amount":     "10",
		"categoryId": foreign.ID,
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result v1.OperationResult
	test.DecodeResponse(suite.T(), &recorder, &result)
	suite.Assert().False(result.Success)
	suite.Assert().Equal(models.ErrCategoryNotOwned.Error(), result.Message)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	expense := suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(10), CategoryID: category.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/expense/"+expense.ID.String(), "", suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result v1.OperationResult
	test.DecodeResponse(suite.T(), &recorder, &result)
	suite.Assert().True(result.Success)

	err := models.DB.First(&models.Expense{}, expense.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSearchExpenses() {
	user := suite.createTestUser(models.User{})
	housing := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	food := suite.createTestCategory(models.Category{CreatedByID: user.ID})

	_ = suite.createTestExpense(models.Expense{Title: "Rent", Amount: decimal.NewFromFloat(800), CategoryID: housing.ID, CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Title: "Groceries", Amount: decimal.NewFromFloat(50), CategoryID: food.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense/search", map[string]any{
		"limit":      25,
		"categoryId": food.ID,
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var page models.Page[models.Expense]
	test.DecodeResponse(suite.T(), &recorder, &page)
	suite.Assert().Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.Assert().Equal("Groceries", page.Items[0].Title)
}

func (suite *TestSuiteStandard) TestMonthlyMetric() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})

	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(100), CategoryID: category.ID, CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(20), CategoryID: category.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense/monthly-metric", "", suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var metric models.MonthlyExpenseMetric
	test.DecodeResponse(suite.T(), &recorder, &metric)
	suite.Assert().Equal(time.Now().UTC().Format("2006-01"), metric.Month)
	suite.Assert().Equal(int64(2), metric.ExpenseCount)
	suite.Assert().True(metric.TotalAmount.Equal(decimal.NewFromFloat(120)), "Total is %s, expected 120", metric.TotalAmount)
}

func (suite *TestSuiteStandard) TestTotalAmount() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})

	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(12.50), CategoryID: category.ID, CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(7.50), CategoryID: category.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense/total-amount", "", suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TotalAmountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.TotalAmount.Equal(decimal.NewFromFloat(20)), "Total is %s, expected 20", response.TotalAmount)
}

func (suite *TestSuiteStandard) TestCurrentDistribution() {
	user := suite.createTestUser(models.User{})
	housing := suite.createTestCategory(models.Category{Title: "Housing", CreatedByID: user.ID})
	food := suite.createTestCategory(models.Category{Title: "Food", CreatedByID: user.ID})

	_ = suite.createTestDistribution(models.ExpectedCategoryDistribution{CategoryID: housing.ID, Distribution: 60, CreatedByID: user.ID})
	_ = suite.createTestDistribution(models.ExpectedCategoryDistribution{CategoryID: food.ID, Distribution: 40, CreatedByID: user.ID})

	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(75), CategoryID: housing.ID, CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(25), CategoryID: food.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense/current-distribution", map[string]any{
		"startDate": time.Now().UTC().AddDate(0, 0, -1),
	}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DistributionComparisonResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Items, 2)
}

func (suite *TestSuiteStandard) TestCurrentDistributionStartDateRequired() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expense/current-distribution", map[string]any{}, suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestListExpensesAdminOnly() {
	user := suite.createTestUser(models.User{})
	admin := suite.createTestUser(models.User{Role: models.UserRoleAdmin})
	category := suite.createTestCategory(models.Category{CreatedByID: user.ID})
	_ = suite.createTestExpense(models.Expense{Amount: decimal.NewFromFloat(10), CategoryID: category.ID, CreatedByID: user.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense", "", suite.bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense", "", suite.bearer(admin))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expenses)
	suite.Assert().Len(expenses, 1)
}
