package models_test

import (
	"github.com/bankwatch/backend/internal/models"
	"github.com/bankwatch/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAlertTestTransaction() {
	tests := []struct {
		name    string
		order   models.AlertOrder
		limit   float64
		amount  float64
		expects bool
	}{
		{"debit above gt limit", models.OrderGreater, 100, -150, true},
		{"credit above gt limit", models.OrderGreater, 100, 150, true},
		{"exactly at gt limit", models.OrderGreater, 100, -100, true},
		{"below gt limit", models.OrderGreater, 100, -99.99, false},
		{"below lt limit", models.OrderLess, 10, -5, true},
		{"exactly at lt limit", models.OrderLess, 10, 10, true},
		{"above lt limit", models.OrderLess, 10, -10.01, false},
	}

	for _, tt := range tests {
		alert := models.Alert{
			Type:  models.AlertTransaction,
			Limit: decimal.NewFromFloat(tt.limit),
			Order: tt.order,
		}
		operation := models.Operation{Amount: decimal.NewFromFloat(tt.amount)}

		suite.Assert().Equal(tt.expects, alert.TestTransaction(operation), tt.name)
	}
}

func (suite *TestSuiteStandard) TestAlertTestTransactionWrongType() {
	alert := models.Alert{
		Type:  models.AlertBalance,
		Limit: decimal.NewFromFloat(100),
		Order: models.OrderGreater,
	}

	suite.Assert().False(alert.TestTransaction(models.Operation{Amount: decimal.NewFromFloat(-150)}))
}

func (suite *TestSuiteStandard) TestAlertTestBalance() {
	tests := []struct {
		name    string
		order   models.AlertOrder
		limit   float64
		balance float64
		expects bool
	}{
		{"below lt limit", models.OrderLess, 100, 50, true},
		{"exactly at lt limit", models.OrderLess, 100, 100, true},
		{"above lt limit", models.OrderLess, 100, 100.01, false},
		{"above gt limit", models.OrderGreater, 1000, 2000, true},
		{"exactly at gt limit", models.OrderGreater, 1000, 1000, true},
		{"below gt limit", models.OrderGreater, 1000, 999.99, false},
	}

	for _, tt := range tests {
		alert := models.Alert{
			Type:  models.AlertBalance,
			Limit: decimal.NewFromFloat(tt.limit),
			Order: tt.order,
		}

		suite.Assert().Equal(tt.expects, alert.TestBalance(decimal.NewFromFloat(tt.balance)), tt.name)
	}
}

func (suite *TestSuiteStandard) TestAlertsFor() {
	access := suite.createTestAccess(models.Access{})
	account := suite.createTestAccount(models.Account{AccessID: access.ID})
	other := suite.createTestAccount(models.Account{AccessID: access.ID})

	suite.createTestAlert(models.Alert{
		AccountID: account.ID,
		Type:      models.AlertTransaction,
		Limit:     decimal.NewFromFloat(500),
		Order:     models.OrderGreater,
	})
	suite.createTestAlert(models.Alert{
		AccountID: account.ID,
		Type:      models.AlertBalance,
		Limit:     decimal.NewFromFloat(0),
		Order:     models.OrderLess,
	})
	suite.createTestAlert(models.Alert{
		AccountID: other.ID,
		Type:      models.AlertTransaction,
		Limit:     decimal.NewFromFloat(500),
		Order:     models.OrderGreater,
	})

	alerts, err := models.AlertsFor(models.DB, account.ID, models.AlertTransaction)
	suite.Require().NoError(err)
	suite.Assert().Len(alerts, 1)
}

func (suite *TestSuiteStandard) TestReportAlerts() {
	access := suite.createTestAccess(models.Access{})
	account := suite.createTestAccount(models.Account{AccessID: access.ID})

	suite.createTestAlert(models.Alert{
		AccountID: account.ID,
		Type:      models.AlertReport,
		Frequency: types.FrequencyWeekly,
	})
	suite.createTestAlert(models.Alert{
		AccountID: account.ID,
		Type:      models.AlertReport,
		Frequency: types.FrequencyDaily,
	})

	alerts, err := models.ReportAlerts(models.DB, types.FrequencyWeekly)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Assert().Equal(types.FrequencyWeekly, alerts[0].Frequency)
}
