package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents one bank account reachable through an access.
//
// Number is the account number as reported by the bank. It is the
// natural key operations are attached to, the internal ID is never
// used for matching fetched data.
type Account struct {
	DefaultModel
	AccessID       uuid.UUID       `json:"accessId" gorm:"uniqueIndex:account_access_number"`
	Access         Access          `json:"-"`
	Bank           string          `json:"bank"`
	Title          string          `json:"title"`
	Number         string          `json:"number" gorm:"uniqueIndex:account_access_number"`
	IBAN           string          `json:"iban,omitempty"`
	InitialBalance decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)"`
	LastChecked    *time.Time      `json:"lastChecked,omitempty"`
}

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Bank = strings.TrimSpace(a.Bank)
	a.Title = strings.TrimSpace(a.Title)
	a.Number = strings.TrimSpace(a.Number)
	a.IBAN = strings.ReplaceAll(strings.TrimSpace(a.IBAN), " ", "")

	return nil
}

// Operations returns all operations of the account, newest first.
func (a Account) Operations(db *gorm.DB) ([]Operation, error) {
	var operations []Operation

	err := db.
		Where(&Operation{AccountNumber: a.Number}).
		Order("date DESC").
		Find(&operations).Error
	if err != nil {
		return nil, err
	}

	return operations, nil
}

// Balance calculates the current balance of the account.
//
// The balance is not stored, it is always derived as the initial
// balance plus the sum of all operation amounts.
func (a Account) Balance(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("operations").
		Where("account_number = ? AND deleted_at IS NULL", a.Number).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return a.InitialBalance.Add(sum.Decimal), nil
}

// DestroyCascade deletes the account together with its operations and
// alerts. When the owning access has no other account left, the access
// is deleted too.
func (a Account) DestroyCascade(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Operation{AccountNumber: a.Number}).Delete(&Operation{}).Error
		if err != nil {
			return err
		}

		err = tx.Where(&Alert{AccountID: a.ID}).Delete(&Alert{}).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&Account{}, a.ID).Error
		if err != nil {
			return err
		}

		var remaining int64
		err = tx.Model(&Account{}).Where(&Account{AccessID: a.AccessID}).Count(&remaining).Error
		if err != nil {
			return err
		}

		if remaining == 0 {
			return tx.Delete(&Access{}, a.AccessID).Error
		}

		return nil
	})
}

// AccountsForAccess returns all accounts belonging to an access.
func AccountsForAccess(db *gorm.DB, accessID uuid.UUID) ([]Account, error) {
	var accounts []Account

	err := db.Where(&Account{AccessID: accessID}).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// AccountsByID returns the accounts for a set of IDs.
func AccountsByID(db *gorm.DB, ids []uuid.UUID) ([]Account, error) {
	var accounts []Account

	err := db.Where("id IN (?)", ids).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}
