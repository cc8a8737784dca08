package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/orbita-crm/backend/internal/controllers/v1"
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/test"
	"github.com/orbita-crm/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestAccountsCreateAndList() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Касса", Type: models.AccountTypeCash},
		{Name: "Народный Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var created v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	suite.Require().Len(created.Data, 2)
	suite.Require().Nil(created.Data[0].Error)
	suite.Require().Nil(created.Data[1].Error)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 2)
	suite.Assert().EqualValues(2, list.Pagination.Total)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/accounts?type=BANK", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("Народный Банк", list.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalid() {
	suite.createTestAccount(models.Account{Name: "Касса"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Касса", Type: models.AccountTypeCash},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var created v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	suite.Require().Len(created.Data, 1)
	suite.Require().NotNil(created.Data[0].Error)
	suite.Assert().Equal(models.ErrAccountNameNotUnique.Error(), *created.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAccountGet() {
	account := suite.createTestAccount(models.Account{Name: "Касса"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Касса", response.Data.Name)

	// Invalid UUID
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/accounts/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	// Unknown UUID
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", uuid.NewString()), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := suite.createTestAccount(models.Account{Name: "Касса"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), map[string]any{
		"note": "Наличные в офисе",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var reloaded models.Account
	suite.Require().Nil(models.DB.First(&reloaded, "id = ?", account.ID).Error)
	suite.Assert().Equal("Наличные в офисе", reloaded.Note)
	suite.Assert().Equal("Касса", reloaded.Name)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := suite.createTestAccount(models.Account{Name: "Касса"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	account := suite.createTestAccount(models.Account{Name: "Касса"})

	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/accounts/%s", uuid.NewString()), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
