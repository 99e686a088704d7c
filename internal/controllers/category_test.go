package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/zhangben/backend/internal/controllers"
	"github.com/zhangben/backend/test"
)

func (suite *ControllerTestSuite) TestGetCategories() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The seeded starter categories.
	suite.Assert().Len(response.Data, 4)
}

func (suite *ControllerTestSuite) TestCreateCategory() {
	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/categories", `{"name": "理财", "type": "income"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("理财", response.Data.Name)
	suite.Assert().Equal("income", string(response.Data.Type))
}

func (suite *ControllerTestSuite) TestDeleteCategory() {
	created := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/categories", `{"name": "临时分类"}`)
	test.AssertHTTPStatus(suite.T(), &created, http.StatusCreated)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &created, &response)

	path := fmt.Sprintf("/v1/categories/%d", response.Data.ID)
	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *ControllerTestSuite) TestDeleteReferencedCategory() {
	body, headers := test.MultipartFile(suite.T(), "alipay.csv", []byte(alipayExport))
	imported := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &imported, http.StatusOK)

	categories := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/categories", nil)
	var list controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &categories, &list)

	var id uint
	for _, category := range list.Data {
		if category.Name == "餐饮美食" {
			id = category.ID
		}
	}
	suite.Require().NotZero(id)

	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%d", id), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
