package controllers_test

import (
	"net/http"

	"github.com/bankwatch/backend/internal/models"
	"github.com/bankwatch/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateAlert() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	recorder := suite.request(http.MethodPost, "/v1/alerts", map[string]any{
		"accountId": account.ID,
		"type":      "balance",
		"limit":     "100",
		"order":     "lt",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code, "Response body: %s", recorder.Body)

	var alert models.Alert
	suite.decode(recorder, &alert)
	suite.Assert().Equal(models.AlertBalance, alert.Type)
	suite.Assert().Equal(models.OrderLess, alert.Order)
}

func (suite *TestSuiteStandard) TestCreateReportAlert() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	recorder := suite.request(http.MethodPost, "/v1/alerts", map[string]any{
		"accountId": account.ID,
		"type":      "report",
		"frequency": "weekly",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code, "Response body: %s", recorder.Body)

	var alert models.Alert
	suite.decode(recorder, &alert)
	suite.Assert().Equal(types.FrequencyWeekly, alert.Frequency)
}

func (suite *TestSuiteStandard) TestCreateReportAlertInvalidFrequency() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	recorder := suite.request(http.MethodPost, "/v1/alerts", map[string]any{
		"accountId": account.ID,
		"type":      "report",
		"frequency": "yearly",
	})
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestCreateAlertInvalidType() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	recorder := suite.request(http.MethodPost, "/v1/alerts", map[string]any{
		"accountId": account.ID,
		"type":      "surprise",
	})
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}

// An alert cannot reference an account that does not exist.
func (suite *TestSuiteStandard) TestCreateAlertUnknownAccount() {
	recorder := suite.request(http.MethodPost, "/v1/alerts", map[string]any{
		"accountId": "a94b1d5e-3c6d-4c5e-8e7b-000000000000",
		"type":      "balance",
		"limit":     "100",
		"order":     "lt",
	})
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestDeleteAlert() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	alert := models.Alert{AccountID: account.ID, Type: models.AlertTransaction}
	suite.Require().NoError(models.DB.Create(&alert).Error)

	recorder := suite.request(http.MethodDelete, "/v1/alerts/"+alert.ID.String(), nil)
	suite.Require().Equal(http.StatusNoContent, recorder.Code)

	var alerts int64
	models.DB.Model(&models.Alert{}).Count(&alerts)
	suite.Assert().Zero(alerts)
}

func (suite *TestSuiteStandard) TestGetAlertNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/alerts/a94b1d5e-3c6d-4c5e-8e7b-000000000000", nil)
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}
