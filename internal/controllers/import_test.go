package controllers_test

import (
	"net/http"

	"github.com/zhangben/backend/internal/controllers"
	"github.com/zhangben/backend/test"
)

const alipayExport = `支付宝交易记录明细查询
起始时间:[2023-01-01 00:00:00]
交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态
2023-03-15 12:30:00,餐饮美食,某餐厅,x,午餐,支出,23.50,招商银行储蓄卡(1234),交易成功
2023-03-16 09:00:00,职业薪酬,某公司,x,三月工资,收入,5000.00,支付宝余额,交易成功
`

func (suite *ControllerTestSuite) TestImportFile() {
	body, headers := test.MultipartFile(suite.T(), "alipay.csv", []byte(alipayExport))

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(2, response.Count)
	suite.Assert().Equal(2, response.TotalFound)
	suite.Assert().Equal("CSV", response.Source)

	// The transactions are visible through the API afterwards.
	list := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &list, http.StatusOK)

	var transactions controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &list, &transactions)
	suite.Assert().Len(transactions.Data, 2)
}

func (suite *ControllerTestSuite) TestImportFileTwice() {
	body, headers := test.MultipartFile(suite.T(), "alipay.csv", []byte(alipayExport))
	first := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &first, http.StatusOK)

	body, headers = test.MultipartFile(suite.T(), "alipay.csv", []byte(alipayExport))
	second := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &second, http.StatusOK)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &second, &response)

	suite.Assert().Equal(0, response.Count)
	suite.Assert().Equal(2, response.TotalFound)
}

func (suite *ControllerTestSuite) TestImportWithoutFile() {
	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *ControllerTestSuite) TestImportEmptyFile() {
	body, headers := test.MultipartFile(suite.T(), "empty.csv", nil)

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *ControllerTestSuite) TestImportBrokenWorkbook() {
	body, headers := test.MultipartFile(suite.T(), "junk.xlsx", []byte{0x00, 0x01, 0x02, 0x03})

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
