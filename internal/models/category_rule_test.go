package models_test

import (
	"github.com/orbita-crm/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryRulesOrdering() {
	suite.createTestCategoryRule(models.CategoryRule{Priority: 10, Match: "*", Category: "Прочее"})
	suite.createTestCategoryRule(models.CategoryRule{Priority: 1, Match: "ТОО*", Category: "Клиенты"})
	suite.createTestCategoryRule(models.CategoryRule{Priority: 5, Match: "*Казахтелеком*", Category: "Связь"})

	rules, err := models.CategoryRules(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(rules, 3)

	suite.Assert().Equal("Клиенты", rules[0].Category)
	suite.Assert().Equal("Связь", rules[1].Category)
	suite.Assert().Equal("Прочее", rules[2].Category)
}

func (suite *TestSuiteStandard) TestCategoryRuleTrimsWhitespace() {
	rule := suite.createTestCategoryRule(models.CategoryRule{Priority: 1, Match: " ТОО* ", Category: " Клиенты "})

	suite.Assert().Equal("ТОО*", rule.Match)
	suite.Assert().Equal("Клиенты", rule.Category)
}

func (suite *TestSuiteStandard) TestCategoryFor() {
	rules := []models.CategoryRule{
		{Priority: 1, Match: "ТОО*", Category: "Клиенты"},
		{Priority: 2, Match: "*Казахтелеком*", Category: "Связь"},
	}

	tests := []struct {
		counterparty string
		category     string
		found        bool
	}{
		{"ТОО Ромашка", "Клиенты", true},
		{"АО Казахтелеком", "Связь", true},
		{"ИП Иванов", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		category, found := models.CategoryFor(rules, tt.counterparty)
		suite.Assert().Equal(tt.found, found, tt.counterparty)
		suite.Assert().Equal(tt.category, category, tt.counterparty)
	}
}

func (suite *TestSuiteStandard) TestCategoryForFirstMatchWins() {
	rules := []models.CategoryRule{
		{Priority: 1, Match: "ТОО Ромашка", Category: "Ключевой клиент"},
		{Priority: 2, Match: "ТОО*", Category: "Клиенты"},
	}

	category, found := models.CategoryFor(rules, "ТОО Ромашка")
	suite.Require().True(found)
	suite.Assert().Equal("Ключевой клиент", category)
}
