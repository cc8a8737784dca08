package v1_test

import (
	"net/http"

	v1 "github.com/orbita-crm/backend/internal/controllers/v1"
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/test"
	"github.com/shopspring/decimal"
)

const statementKZ001 = `1CClientBankExchange
СекцияРасчСчет
РасчСчет=KZ001
НачальныйОстаток=0
КонечныйОстаток=49000
КонецРасчСчет

СекцияДокумент=Платежное поручение
ДатаДокумента=05.01.2024
СуммаПриход=50000
Плательщик=ТОО Ромашка
НазначениеПлатежа=Оплата по договору 7
КонецДокумента

СекцияДокумент=Платежное поручение
ДатаДокумента=06.01.2024
СуммаРасход=1000
Получатель=АО КазахТелеком
ПолучательБанк=АО Kaspi Bank
ПолучательСчет=KZ555
КонецДокумента
`

func (suite *TestSuiteStandard) TestImportStatement() {
	account := suite.createTestAccount(models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"})

	recorder := test.UploadRequest(suite.T(), "/v1/import/statement", "statement.txt", statementKZ001, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.ImportOutcomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(account.ID, response.Data.AccountID)
	suite.Assert().Equal(2, response.Data.Added)
	suite.Assert().Equal(0, response.Data.Duplicates)
	suite.Assert().False(response.Data.SkippedBalanceUpdate)
	suite.Assert().False(response.Data.Discrepancy)
	suite.Assert().True(response.Data.Account.Balance.Equal(decimal.NewFromInt(49000)), "balance is %s, want 49000", response.Data.Account.Balance)

	// A second upload only finds duplicates
	recorder = test.UploadRequest(suite.T(), "/v1/import/statement", "statement.txt", statementKZ001, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(0, response.Data.Added)
	suite.Assert().Equal(2, response.Data.Duplicates)
}

func (suite *TestSuiteStandard) TestImportStatementUnknownAccount() {
	recorder := test.UploadRequest(suite.T(), "/v1/import/statement", "statement.txt", statementKZ001, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	var response v1.ImportOutcomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.UnknownAccount)
	suite.Assert().Equal("KZ001", response.UnknownAccount.AccountNumber)

	// Nothing was imported
	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	suite.Assert().EqualValues(0, count)

	// The user confirms the account creation
	recorder = test.UploadRequest(suite.T(), "/v1/import/statement/confirm-account", "statement.txt", statementKZ001, map[string]string{
		"accountName": "Новый счет",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.Added)
	suite.Assert().Equal("Новый счет", response.Data.Account.Name)
	suite.Assert().Equal("KZ001", response.Data.Account.ExternalNumber)
}

func (suite *TestSuiteStandard) TestImportStatementParseFailure() {
	recorder := test.UploadRequest(suite.T(), "/v1/import/statement", "statement.txt", "not a statement at all", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.ImportOutcomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestImportStatementNoFile() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/statement", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestImportApplyStatedBalance() {
	account := suite.createTestAccount(models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/statement/apply-stated-balance", map[string]any{
		"accountId":            account.ID,
		"statedClosingBalance": "49000",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(49000)))

	// Without a stated balance the request is rejected
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/import/statement/apply-stated-balance", map[string]any{
		"accountId": account.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestImportOptions() {
	for _, path := range []string{
		"/v1/import/statement",
		"/v1/import/statement/confirm-account",
		"/v1/import/statement/apply-stated-balance",
	} {
		recorder := test.Request(suite.T(), http.MethodOptions, path, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
		suite.Assert().Equal("POST", recorder.Header().Get("allow"), path)
	}
}
