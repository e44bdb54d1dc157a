package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	session := suite.registerTestUser()

	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Type:     models.Expense,
		Amount:   decimal.NewFromFloat(14.03),
		Date:     time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Note:     "Lunch",
		Category: "Food",
	})

	suite.Assert().Equal("Food", transaction.Category)
	suite.Assert().Equal("Lunch", transaction.Note)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromFloat(14.03)))
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalidAmount() {
	session := suite.registerTestUser()

	editables := []v1.TransactionEditable{
		{Amount: decimal.NewFromInt(10), Category: "Food"},
		{Amount: decimal.NewFromInt(-10), Category: "Food"},
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", editables, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	session := suite.registerTestUser()
	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().Equal("Food", response.Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionGetOtherUser() {
	session := suite.registerTestUser()
	other := suite.registerTestUser()

	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(other))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestTransactionList() {
	session := suite.registerTestUser()

	for _, editable := range []v1.TransactionEditable{
		{Amount: decimal.NewFromInt(10), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Note: "Lunch at the deli", Category: "Food"},
		{Amount: decimal.NewFromInt(30), Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Note: "Fuel", Category: "Transport"},
		{Amount: decimal.NewFromInt(50), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Note: "Groceries", Category: "Food"},
	} {
		_ = suite.createTestTransaction(session, editable)
	}

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"category=Food", 2},
		{"category=All", 3},
		{"category=foo", 2},
		{"search=lunch", 1},
		{"search=transport", 1},
		{"minAmount=30", 2},
		{"maxAmount=30", 2},
		{"minAmount=20&maxAmount=40", 1},
		{"fromDate=2024-06-02", 2},
		{"untilDate=2024-06-02", 2},
		{"fromDate=2024-06-02&untilDate=2024-06-02", 1},
		{"limit=2", 2},
		{"offset=2", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), "", authHeaders(session))
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestTransactionListSorted() {
	session := suite.registerTestUser()

	_ = suite.createTestTransaction(session, v1.TransactionEditable{Amount: decimal.NewFromInt(10), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Category: "Food"})
	_ = suite.createTestTransaction(session, v1.TransactionEditable{Amount: decimal.NewFromInt(20), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Newest first
	suite.Assert().True(response.Data[0].Date.After(response.Data[1].Date))
}

func (suite *TestSuiteStandard) TestTransactionListPagination() {
	session := suite.registerTestUser()

	for i := 0; i < 3; i++ {
		_ = suite.createTestTransaction(session, v1.TransactionEditable{Amount: decimal.NewFromInt(10), Category: "Food"})
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?offset=1&limit=1", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(1, response.Pagination.Count)
	suite.Assert().Equal(uint(1), response.Pagination.Offset)
	suite.Assert().Equal(1, response.Pagination.Limit)
	suite.Assert().Equal(int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionListScopedToUser() {
	session := suite.registerTestUser()
	other := suite.registerTestUser()

	_ = suite.createTestTransaction(session, v1.TransactionEditable{Amount: decimal.NewFromInt(10), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", "", authHeaders(other))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	session := suite.registerTestUser()
	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Note:     "Lunch",
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"note":     "Dinner",
		"category": "Restaurants",
	}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Dinner", response.Data.Note)
	suite.Assert().Equal("Restaurants", response.Data.Category)

	// Untouched fields keep their values
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestTransactionUpdateInvalidAmount() {
	session := suite.registerTestUser()
	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"amount": -10,
	}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	session := suite.registerTestUser()
	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
