package controllers_test

import (
	"net/http"

	"github.com/zhangben/backend/test"
)

func (suite *ControllerTestSuite) TestRootLinks() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Links map[string]string `json:"links"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Contains(response.Links, "v1")
	suite.Assert().Contains(response.Links, "healthz")
	suite.Assert().Contains(response.Links, "metrics")
}

func (suite *ControllerTestSuite) TestVersion() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/version", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *ControllerTestSuite) TestHealthz() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *ControllerTestSuite) TestOptionsHeaders() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/", "GET"},
		{"/version", "GET"},
		{"/healthz", "GET"},
		{"/v1", "GET"},
		{"/v1/transactions", "GET, POST"},
		{"/v1/transactions/import", "POST"},
		{"/v1/accounts", "GET, POST"},
		{"/v1/categories", "GET, POST"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.router, suite.T(), http.MethodOptions, tt.path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"), tt.path)
	}
}

func (suite *ControllerTestSuite) TestMethodNotAllowed() {
	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, "/version", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
