package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/orbita-crm/backend/internal/controllers/v1"
	"github.com/orbita-crm/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCategoryRulesAPI() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/category-rules", []v1.CategoryRuleEditable{
		{Priority: 10, Match: "*", Category: "Прочее"},
		{Priority: 1, Match: "ТОО*", Category: "Клиенты"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var created v1.CategoryRuleCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	suite.Require().Len(created.Data, 2)
	suite.Require().NotNil(created.Data[0].Data)

	// The list is ordered by priority
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/category-rules", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("Клиенты", list.Data[0].Category)
	suite.Assert().Equal("Прочее", list.Data[1].Category)

	// Update the priority, the order changes
	recorder = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/category-rules/%s", list.Data[0].ID), map[string]any{
		"priority": 20,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/category-rules", nil)
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("Прочее", list.Data[0].Category)

	// Delete a rule
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/category-rules/%s", list.Data[0].ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/category-rules", nil)
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 1)
}
