package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/reports"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestComparisonReport() {
	session := suite.registerTestUser()

	_ = suite.createTestBudget(session, v1.BudgetEditable{Amount: decimal.NewFromInt(500), Month: 6, Year: 2024, Category: "Food"})
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(350),
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/comparison?month=2024-06", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ComparisonReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)

	comparison := response.Data[0]
	suite.Assert().Equal("Food", comparison.CategoryName)
	suite.Assert().True(comparison.Budgeted.Equal(decimal.NewFromInt(500)))
	suite.Assert().True(comparison.Actual.Equal(decimal.NewFromInt(350)))
	suite.Assert().True(comparison.Remaining.Equal(decimal.NewFromInt(150)))
	suite.Assert().True(comparison.Percentage.Equal(decimal.NewFromInt(70)))
	suite.Assert().Equal(reports.StatusWarning, comparison.Status)
}

func (suite *TestSuiteStandard) TestComparisonReportMonthRequired() {
	session := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/comparison", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestComparisonReportScopedToUser() {
	session := suite.registerTestUser()
	other := suite.registerTestUser()

	_ = suite.createTestBudget(session, v1.BudgetEditable{Amount: decimal.NewFromInt(500), Month: 6, Year: 2024, Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/comparison?month=2024-06", "", authHeaders(other))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ComparisonReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestMonthlyReport() {
	session := suite.registerTestUser()

	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Type:     models.Income,
		Amount:   decimal.NewFromInt(2000),
		Date:     time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
	})
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(300),
		Date:     time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	})
	// Same month of a different year lands in the same bucket
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(100),
		Date:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/monthly", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Contains(response.Data, 0)

	january := response.Data[0]
	suite.Assert().True(january.Income.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(january.Expense.Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestCategoryReport() {
	session := suite.registerTestUser()
	now := time.Now().UTC()

	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(120),
		Date:     now.AddDate(0, 0, -1),
		Category: "Food",
	})
	// Income categories are excluded even when typed EXPENSE
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(50),
		Date:     now.AddDate(0, 0, -1),
		Category: "Salary",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/category", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Contains(response.Data, "Food")
	suite.Assert().True(response.Data["Food"].Equal(decimal.NewFromInt(120)))
	suite.Assert().NotContains(response.Data, "Salary")
}

func (suite *TestSuiteStandard) TestCategoryReportPeriods() {
	session := suite.registerTestUser()
	now := time.Now().UTC()

	// Two months back, outside the current month but within both windows
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(80),
		Date:     now.AddDate(0, -2, 0),
		Category: "Transport",
	})

	for _, tt := range []struct {
		period   string
		contains bool
	}{
		{"current", false},
		{"3months", true},
		{"6months", true},
	} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/category?period=%s", tt.period), "", authHeaders(session))
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.CategoryReportResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		if tt.contains {
			suite.Assert().Contains(response.Data, "Transport", "period %q", tt.period)
		} else {
			suite.Assert().NotContains(response.Data, "Transport", "period %q", tt.period)
		}
	}
}

func (suite *TestSuiteStandard) TestCategoryReportInvalidPeriod() {
	session := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/category?period=12months", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBalanceReport() {
	session := suite.registerTestUser()

	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Type:     models.Income,
		Amount:   decimal.NewFromInt(2000),
		Category: "Salary",
	})
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(450),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/balance", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BalanceReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromInt(450)))
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(1550)))
}

func (suite *TestSuiteStandard) TestTrendReport() {
	session := suite.registerTestUser()

	_ = suite.createTestBudget(session, v1.BudgetEditable{Amount: decimal.NewFromInt(500), Month: 6, Year: 2024, Category: "Food"})
	_ = suite.createTestBudget(session, v1.BudgetEditable{Amount: decimal.NewFromInt(100), Month: 6, Year: 2024, Category: "Transport"})
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(350),
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	})
	// A month that only has spending still gets a point
	_ = suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(40),
		Date:     time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Category: "Transport",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/trend", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TrendReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	june := response.Data[0]
	suite.Assert().True(june.Budgeted.Equal(decimal.NewFromInt(600)))
	suite.Assert().True(june.Actual.Equal(decimal.NewFromInt(350)))

	july := response.Data[1]
	suite.Assert().True(july.Budgeted.IsZero())
	suite.Assert().True(july.Actual.Equal(decimal.NewFromInt(40)))
}
