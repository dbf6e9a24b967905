package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OperationType is a lookup table entry for the transaction type
// reported by the bank backend (card, transfer, withdrawal, ...).
type OperationType struct {
	DefaultModel
	Name       string `json:"name"`
	ProviderID uint   `json:"providerId" gorm:"uniqueIndex"`
}

// OperationTypes returns all operation types.
func OperationTypes(db *gorm.DB) ([]OperationType, error) {
	var operationTypes []OperationType

	err := db.Order("provider_id ASC").Find(&operationTypes).Error
	if err != nil {
		return nil, err
	}

	return operationTypes, nil
}

// UpsertOperationType creates an operation type or updates the name of
// the existing row with the same provider id.
func UpsertOperationType(db *gorm.DB, providerID uint, name string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&OperationType{Name: name, ProviderID: providerID}).Error
}

// TypeMap is an immutable bidirectional mapping between the provider's
// operation type ids and the stored rows. It is built once at startup
// and injected into the synchronizer, which only ever reads it.
type TypeMap struct {
	byProvider map[uint]OperationType
	byID       map[uuid.UUID]OperationType
}

// LoadTypeMap builds the type map from the operation_types table.
func LoadTypeMap(db *gorm.DB) (*TypeMap, error) {
	operationTypes, err := OperationTypes(db)
	if err != nil {
		return nil, err
	}

	m := &TypeMap{
		byProvider: make(map[uint]OperationType, len(operationTypes)),
		byID:       make(map[uuid.UUID]OperationType, len(operationTypes)),
	}

	for _, t := range operationTypes {
		m.byProvider[t.ProviderID] = t
		m.byID[t.ID] = t
	}

	return m, nil
}

// ID returns the row ID for a provider type id, or nil when the
// provider id is unknown.
func (m *TypeMap) ID(providerID uint) *uuid.UUID {
	t, ok := m.byProvider[providerID]
	if !ok {
		return nil
	}

	id := t.ID
	return &id
}

// Name returns the display name for a row ID.
func (m *TypeMap) Name(id uuid.UUID) (string, bool) {
	t, ok := m.byID[id]
	return t.Name, ok
}
