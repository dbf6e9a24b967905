package controllers_test

import (
	"net/http"

	"github.com/bankwatch/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateAccess() {
	recorder := suite.request(http.MethodPost, "/v1/accesses", map[string]string{
		"bank":     "testbank",
		"login":    "alice",
		"password": "secret",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code, "Response body: %s", recorder.Body)

	var access models.Access
	suite.decode(recorder, &access)
	suite.Assert().Equal("testbank", access.Bank)

	// The password must never appear in a response
	suite.Assert().NotContains(recorder.Body.String(), "secret")
}

func (suite *TestSuiteStandard) TestCreateAccessInvalidBody() {
	recorder := suite.request(http.MethodPost, "/v1/accesses", `{"bank": "testbank"}`)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestGetAccesses() {
	suite.createTestAccess()
	suite.createTestAccess()

	recorder := suite.request(http.MethodGet, "/v1/accesses", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var accesses []models.Access
	suite.decode(recorder, &accesses)
	suite.Assert().Len(accesses, 2)
}

func (suite *TestSuiteStandard) TestGetAccessNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/accesses/a94b1d5e-3c6d-4c5e-8e7b-000000000000", nil)
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestGetAccessInvalidID() {
	recorder := suite.request(http.MethodGet, "/v1/accesses/not-a-uuid", nil)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}

// Deleting an access removes all its accounts, their operations and
// alerts.
func (suite *TestSuiteStandard) TestDeleteAccess() {
	access := suite.createTestAccess()
	suite.createTestAccount(access)
	suite.createTestAccount(access)

	recorder := suite.request(http.MethodDelete, "/v1/accesses/"+access.ID.String(), nil)
	suite.Require().Equal(http.StatusNoContent, recorder.Code, "Response body: %s", recorder.Body)

	var accounts int64
	models.DB.Model(&models.Account{}).Count(&accounts)
	suite.Assert().Zero(accounts)

	var accesses int64
	models.DB.Model(&models.Access{}).Count(&accesses)
	suite.Assert().Zero(accesses)
}

func (suite *TestSuiteStandard) TestDeleteAccessWithoutAccounts() {
	access := suite.createTestAccess()

	recorder := suite.request(http.MethodDelete, "/v1/accesses/"+access.ID.String(), nil)
	suite.Require().Equal(http.StatusNoContent, recorder.Code)

	var accesses int64
	models.DB.Model(&models.Access{}).Count(&accesses)
	suite.Assert().Zero(accesses)
}
