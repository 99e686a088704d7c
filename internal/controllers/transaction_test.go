package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/zhangben/backend/internal/controllers"
	"github.com/zhangben/backend/internal/models"
	"github.com/zhangben/backend/test"
)

func (suite *ControllerTestSuite) seededIDs() (categoryID, accountID uint) {
	var category models.Category
	suite.Require().NoError(models.DB.First(&category, "name = ?", "餐饮").Error)

	var account models.Account
	suite.Require().NoError(models.DB.First(&account, "name = ?", "现金").Error)

	return category.ID, account.ID
}

func (suite *ControllerTestSuite) TestCreateTransaction() {
	categoryID, accountID := suite.seededIDs()

	body := map[string]any{
		"amount":     "23.50",
		"type":       "expense",
		"time":       "2023-03-15T12:30:00Z",
		"note":       "午餐",
		"categoryId": categoryID,
		"accountId":  accountID,
	}

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("23.5", response.Data.Amount.String())
	suite.Assert().NotZero(response.Data.ID)
}

func (suite *ControllerTestSuite) TestCreateTransactionRejectsNonPositiveAmount() {
	categoryID, accountID := suite.seededIDs()

	body := map[string]any{
		"amount":     "-5",
		"categoryId": categoryID,
		"accountId":  accountID,
	}

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *ControllerTestSuite) TestCreateTransactionUnknownCategory() {
	_, accountID := suite.seededIDs()

	body := map[string]any{
		"amount":     "5",
		"categoryId": 9999,
		"accountId":  accountID,
	}

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *ControllerTestSuite) TestGetTransactionsOrder() {
	categoryID, accountID := suite.seededIDs()

	for _, tx := range []map[string]any{
		{"amount": "1", "time": "2023-03-14T08:00:00Z", "categoryId": categoryID, "accountId": accountID},
		{"amount": "2", "time": "2023-03-16T08:00:00Z", "categoryId": categoryID, "accountId": accountID},
		{"amount": "3", "time": "2023-03-15T08:00:00Z", "categoryId": categoryID, "accountId": accountID},
	} {
		recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions", tx)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	list := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &list, http.StatusOK)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &list, &response)
	suite.Require().Len(response.Data, 3)

	// Newest first, with category and account preloaded.
	suite.Assert().Equal("2", response.Data[0].Amount.String())
	suite.Assert().Equal("3", response.Data[1].Amount.String())
	suite.Assert().Equal("1", response.Data[2].Amount.String())
	suite.Assert().Equal("餐饮", response.Data[0].Category.Name)
	suite.Assert().Equal("现金", response.Data[0].Account.Name)
}

func (suite *ControllerTestSuite) TestDeleteTransaction() {
	categoryID, accountID := suite.seededIDs()

	body := map[string]any{"amount": "5", "categoryId": categoryID, "accountId": accountID}
	created := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &created, http.StatusCreated)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &created, &response)

	path := fmt.Sprintf("/v1/transactions/%d", response.Data.ID)
	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	gone := test.Request(suite.router, suite.T(), http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &gone, http.StatusNotFound)
}
