package models

import (
	"github.com/bankwatch/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AlertType describes what an alert watches.
type AlertType string

const (
	AlertReport      AlertType = "report"
	AlertBalance     AlertType = "balance"
	AlertTransaction AlertType = "transaction"
)

// AlertOrder is the comparison direction of a threshold alert.
type AlertOrder string

const (
	OrderGreater AlertOrder = "gt"
	OrderLess    AlertOrder = "lt"
)

// Alert is a user-configured rule scoped to one account.
//
// Frequency is only meaningful for report alerts, Limit and Order only
// for balance and transaction alerts.
type Alert struct {
	DefaultModel
	AccountID uuid.UUID       `json:"accountId"`
	Account   Account         `json:"-"`
	Type      AlertType       `json:"type"`
	Frequency types.Frequency `json:"frequency,omitempty"`
	Limit     decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)"`
	Order     AlertOrder      `json:"order,omitempty"`
}

// TestTransaction reports whether the alert fires for an operation.
// Both bounds are inclusive. Only the magnitude of the amount matters,
// a large debit triggers a "gt" rule just like a large credit.
func (a Alert) TestTransaction(o Operation) bool {
	if a.Type != AlertTransaction {
		return false
	}

	amount := o.Amount.Abs()

	return (a.Order == OrderLess && amount.LessThanOrEqual(a.Limit)) ||
		(a.Order == OrderGreater && amount.GreaterThanOrEqual(a.Limit))
}

// TestBalance reports whether the alert fires for an account balance.
// Both bounds are inclusive.
func (a Alert) TestBalance(balance decimal.Decimal) bool {
	if a.Type != AlertBalance {
		return false
	}

	return (a.Order == OrderLess && balance.LessThanOrEqual(a.Limit)) ||
		(a.Order == OrderGreater && balance.GreaterThanOrEqual(a.Limit))
}

// AlertsFor returns all alerts of one type for an account.
func AlertsFor(db *gorm.DB, accountID uuid.UUID, alertType AlertType) ([]Alert, error) {
	var alerts []Alert

	err := db.Where(&Alert{AccountID: accountID, Type: alertType}).Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

// ReportAlerts returns all report alerts with the given frequency.
func ReportAlerts(db *gorm.DB, frequency types.Frequency) ([]Alert, error) {
	var alerts []Alert

	err := db.Where(&Alert{Type: AlertReport, Frequency: frequency}).Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	return alerts, nil
}
