package models

import (
	"strings"

	"gorm.io/gorm"
)

// Access is one set of bank credentials and the connection it represents.
type Access struct {
	DefaultModel
	Bank     string `json:"bank"`
	Login    string `json:"login"`
	Password string `json:"-"`
	Website  string `json:"website,omitempty"`
}

// BeforeSave trims whitespace from all strings.
func (a *Access) BeforeSave(_ *gorm.DB) error {
	a.Bank = strings.TrimSpace(a.Bank)
	a.Login = strings.TrimSpace(a.Login)
	a.Website = strings.TrimSpace(a.Website)

	return nil
}

// Accounts returns all accounts opened through this access.
func (a Access) Accounts(db *gorm.DB) ([]Account, error) {
	var accounts []Account

	err := db.Where(&Account{AccessID: a.ID}).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Accesses returns all accesses.
func Accesses(db *gorm.DB) ([]Access, error) {
	var accesses []Access

	err := db.Find(&accesses).Error
	if err != nil {
		return nil, err
	}

	return accesses, nil
}
