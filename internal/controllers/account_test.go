package controllers_test

import (
	"net/http"
	"time"

	"github.com/bankwatch/backend/internal/controllers"
	"github.com/bankwatch/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetAccounts() {
	access := suite.createTestAccess()
	suite.createTestAccount(access)

	recorder := suite.request(http.MethodGet, "/v1/accounts", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var accounts []models.Account
	suite.decode(recorder, &accounts)
	suite.Assert().Len(accounts, 1)
}

func (suite *TestSuiteStandard) TestGetAccountNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/accounts/a94b1d5e-3c6d-4c5e-8e7b-000000000000", nil)
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestGetAccountOperations() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	operation := models.Operation{
		AccountNumber: account.Number,
		Title:         "Bakery",
		Date:          time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(-13.37),
		Raw:           "CARD 10/03 BAKERY",
	}
	suite.Require().NoError(models.DB.Create(&operation).Error)

	recorder := suite.request(http.MethodGet, "/v1/accounts/"+account.ID.String()+"/operations", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var operations []models.Operation
	suite.decode(recorder, &operations)
	suite.Require().Len(operations, 1)
	suite.Assert().Equal("Bakery", operations[0].Title)
}

func (suite *TestSuiteStandard) TestGetAccountBalance() {
	access := suite.createTestAccess()
	account := models.Account{
		AccessID:       access.ID,
		Number:         "FR-001",
		InitialBalance: decimal.NewFromFloat(100),
	}
	suite.Require().NoError(models.DB.Create(&account).Error)

	operation := models.Operation{
		AccountNumber: account.Number,
		Date:          time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(-25.50),
		Raw:           "CARD",
	}
	suite.Require().NoError(models.DB.Create(&operation).Error)

	recorder := suite.request(http.MethodGet, "/v1/accounts/"+account.ID.String()+"/balance", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response controllers.BalanceResponse
	suite.decode(recorder, &response)
	suite.Assert().True(response.Balance.Equal(decimal.NewFromFloat(74.50)), "balance is %s", response.Balance)
}

// Deleting the last account of an access deletes the access with it.
func (suite *TestSuiteStandard) TestDeleteAccountCascades() {
	access := suite.createTestAccess()
	account := suite.createTestAccount(access)

	recorder := suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String(), nil)
	suite.Require().Equal(http.StatusNoContent, recorder.Code, "Response body: %s", recorder.Body)

	var accesses int64
	models.DB.Model(&models.Access{}).Count(&accesses)
	suite.Assert().Zero(accesses)
}
