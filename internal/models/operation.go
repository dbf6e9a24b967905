package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Operation is one bank transaction record.
//
// Operations are attached to accounts through the external account
// number, not through the account's internal ID: the account number is
// the only identifier the bank backend reports transactions under.
type Operation struct {
	DefaultModel
	AccountNumber string          `json:"accountNumber" gorm:"index"`
	Title         string          `json:"title"`
	Date          time.Time       `json:"date"`
	ImportedAt    time.Time       `json:"importedAt"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Raw           string          `json:"raw"`
	CategoryID    *uuid.UUID      `json:"categoryId,omitempty"`
	TypeID        *uuid.UUID      `json:"typeId,omitempty"`
	Attachment    string          `json:"attachment,omitempty"`
	Binary        string          `json:"binary,omitempty"`
}

// BeforeSave normalizes the dates to UTC. The transaction date is part
// of the fingerprint, so it has to be stored canonically.
func (o *Operation) BeforeSave(_ *gorm.DB) (err error) {
	o.Date = o.Date.In(time.UTC)

	if !o.ImportedAt.IsZero() {
		o.ImportedAt = o.ImportedAt.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone.
func (o *Operation) AfterFind(tx *gorm.DB) (err error) {
	_ = o.DefaultModel.AfterFind(tx)
	o.Date = o.Date.In(time.UTC)
	o.ImportedAt = o.ImportedAt.In(time.UTC)
	return nil
}

// Fingerprint identifies the real-world transaction behind an
// operation: the same account, date, amount and raw label means the
// same transaction, no matter how often the bank re-reports it.
func (o Operation) Fingerprint() string {
	return fmt.Sprintf("%s|%s|%s|%s", o.AccountNumber, o.Date.In(time.UTC).Format(time.RFC3339), o.Amount.Round(2).StringFixed(2), o.Raw)
}

// EffectiveDate returns the import date when it is known and the
// transaction date otherwise. Reports filter on this date.
func (o Operation) EffectiveDate() time.Time {
	if !o.ImportedAt.IsZero() {
		return o.ImportedAt
	}

	return o.Date
}

// FindDuplicate looks up a stored operation with the same fingerprint.
//
// The amount is compared rounded to two decimals in code instead of in
// SQL so that the comparison does not depend on how the driver stores
// decimals. It returns nil when the operation has not been seen before.
func (o Operation) FindDuplicate(db *gorm.DB) (*Operation, error) {
	var candidates []Operation

	err := db.
		Where(&Operation{AccountNumber: o.AccountNumber, Raw: o.Raw}).
		Where("date = ?", o.Date.In(time.UTC)).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	amount := o.Amount.Round(2)
	for i := range candidates {
		if candidates[i].Amount.Round(2).Equal(amount) {
			return &candidates[i], nil
		}
	}

	return nil, nil
}

// MergeFrom copies the optional fields of a re-observed duplicate into
// the stored operation. Fields that are already set on the stored side
// always win so that user edits survive re-synchronizations. The import
// date is never touched.
func (o *Operation) MergeFrom(db *gorm.DB, incoming Operation) error {
	changed := false

	if o.CategoryID == nil && incoming.CategoryID != nil {
		o.CategoryID = incoming.CategoryID
		changed = true
	}

	if o.TypeID == nil && incoming.TypeID != nil {
		o.TypeID = incoming.TypeID
		changed = true
	}

	if o.Attachment == "" && incoming.Attachment != "" {
		o.Attachment = incoming.Attachment
		changed = true
	}

	if o.Binary == "" && incoming.Binary != "" {
		o.Binary = incoming.Binary
		changed = true
	}

	if !changed {
		return nil
	}

	return db.Model(o).Select("CategoryID", "TypeID", "Attachment", "Binary").Updates(o).Error
}

// OperationsForAccounts returns all operations of the given account
// numbers, newest first.
func OperationsForAccounts(db *gorm.DB, numbers []string) ([]Operation, error) {
	var operations []Operation

	err := db.
		Where("account_number IN (?)", numbers).
		Order("date DESC").
		Find(&operations).Error
	if err != nil {
		return nil, err
	}

	return operations, nil
}

// OperationByID returns a single operation.
func OperationByID(db *gorm.DB, id uuid.UUID) (Operation, error) {
	var operation Operation

	err := db.First(&operation, id).Error
	return operation, err
}
