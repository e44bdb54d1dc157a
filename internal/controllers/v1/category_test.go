package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	session := suite.registerTestUser()

	category := suite.createTestCategory(session, v1.CategoryEditable{Name: "Groceries"})
	suite.Assert().Equal("Groceries", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicate() {
	session := suite.registerTestUser()
	_ = suite.createTestCategory(session, v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Groceries"}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryList() {
	session := suite.registerTestUser()
	_ = suite.createTestCategory(session, v1.CategoryEditable{Name: "Transport"})
	_ = suite.createTestCategory(session, v1.CategoryEditable{Name: "Bills"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Bills", response.Data[0].Name)
	suite.Assert().Equal("Transport", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	session := suite.registerTestUser()
	category := suite.createTestCategory(session, v1.CategoryEditable{Name: "Bills"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(category.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestCategoryGetInvalidID() {
	session := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/not-a-uuid", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryGetNotFound() {
	session := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/a2aa0b25-a2a3-4d1d-bbb9-ca56ca3f0fd6", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	session := suite.registerTestUser()
	category := suite.createTestCategory(session, v1.CategoryEditable{Name: "Bils"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), v1.CategoryEditable{Name: "Bills"}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Bills", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryUpdateEmptyName() {
	session := suite.registerTestUser()
	category := suite.createTestCategory(session, v1.CategoryEditable{Name: "Bills"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), v1.CategoryEditable{Name: "  "}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	session := suite.registerTestUser()
	category := suite.createTestCategory(session, v1.CategoryEditable{Name: "Bills"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryDeleteInUse() {
	session := suite.registerTestUser()

	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", "", authHeaders(session))
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(transaction.Category, list.Data[0].Name)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/categories/%s", list.Data[0].ID), "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
