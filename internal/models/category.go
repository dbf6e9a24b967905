package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Category is a lookup table entry mapping the classification id of the
// bank backend to a display name. Operations reference it by row ID.
type Category struct {
	DefaultModel
	Name       string `json:"name"`
	ProviderID uint   `json:"providerId" gorm:"uniqueIndex"`
}

// Categories returns all categories.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.Order("provider_id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// UpsertCategory creates a category or updates the name of the existing
// row with the same provider id.
func UpsertCategory(db *gorm.DB, providerID uint, name string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&Category{Name: name, ProviderID: providerID}).Error
}
