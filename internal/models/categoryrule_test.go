package models_test

import (
	"github.com/bankwatch/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryRuleMatches() {
	rule := models.CategoryRule{Match: "CARD * BAKERY*"}

	suite.Assert().True(rule.Matches("CARD 10/03 BAKERY"))
	suite.Assert().True(rule.Matches("CARD 10/03 BAKERY DOWNTOWN"))
	suite.Assert().False(rule.Matches("CARD 10/03 MARKET"))
}

func (suite *TestSuiteStandard) TestCategorizeFirstMatchWins() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries", ProviderID: 1})
	everything := suite.createTestCategory(models.Category{Name: "Misc", ProviderID: 2})

	suite.createTestCategoryRule(models.CategoryRule{Priority: 1, Match: "EDEKA*", CategoryID: groceries.ID})
	suite.createTestCategoryRule(models.CategoryRule{Priority: 2, Match: "*", CategoryID: everything.ID})

	rules, err := models.CategoryRules(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(rules, 2)

	category := models.Categorize(rules, "EDEKA MARKET 42")
	suite.Require().NotNil(category)
	suite.Assert().Equal(groceries.ID, *category)

	category = models.Categorize(rules, "SOMETHING ELSE")
	suite.Require().NotNil(category)
	suite.Assert().Equal(everything.ID, *category)
}

func (suite *TestSuiteStandard) TestCategorizeNoMatch() {
	category := suite.createTestCategory(models.Category{Name: "Groceries", ProviderID: 1})
	suite.createTestCategoryRule(models.CategoryRule{Priority: 1, Match: "EDEKA*", CategoryID: category.ID})

	rules, err := models.CategoryRules(models.DB)
	suite.Require().NoError(err)

	suite.Assert().Nil(models.Categorize(rules, "REWE MARKET"))
}

func (suite *TestSuiteStandard) TestUpsertCategory() {
	suite.Require().NoError(models.UpsertCategory(models.DB, 7, "Old name"))
	suite.Require().NoError(models.UpsertCategory(models.DB, 7, "New name"))

	categories, err := models.Categories(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(categories, 1)
	suite.Assert().Equal("New name", categories[0].Name)
}
