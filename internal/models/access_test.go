package models_test

import (
	"encoding/json"

	"github.com/bankwatch/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAccessTrimsWhitespace() {
	access := suite.createTestAccess(models.Access{Bank: " testbank ", Login: " alice "})

	suite.Assert().Equal("testbank", access.Bank)
	suite.Assert().Equal("alice", access.Login)
}

// The password must never leak through the JSON representation.
func (suite *TestSuiteStandard) TestAccessPasswordNotSerialized() {
	access := suite.createTestAccess(models.Access{Login: "alice", Password: "hunter2"})

	body, err := json.Marshal(access)
	suite.Require().NoError(err)
	suite.Assert().NotContains(string(body), "hunter2")
}

func (suite *TestSuiteStandard) TestAccountNumberUniquePerAccess() {
	access := suite.createTestAccess(models.Access{})
	suite.createTestAccount(models.Account{AccessID: access.ID, Number: "FR-001"})

	err := models.DB.Create(&models.Account{AccessID: access.ID, Number: "FR-001"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNumberNotUnique)

	// The same number under another access is fine
	other := suite.createTestAccess(models.Access{})
	err = models.DB.Create(&models.Account{AccessID: other.ID, Number: "FR-001"}).Error
	suite.Assert().NoError(err)
}
