package models

import (
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Setting is a persisted name/value configuration pair.
type Setting struct {
	DefaultModel
	Name  string `json:"name" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

// Name of the setting that enables an immediate synchronization pass at
// process startup.
const SettingSyncOnStartup = "sync-on-startup"

// FindOrCreateSetting returns the setting with the given name, creating
// it with the default value when it does not exist yet.
func FindOrCreateSetting(db *gorm.DB, name, defaultValue string) (Setting, error) {
	var setting Setting

	err := db.Where(&Setting{Name: name}).
		Attrs(Setting{Value: defaultValue}).
		FirstOrCreate(&setting).Error
	if err != nil {
		return Setting{}, err
	}

	return setting, nil
}

// BoolSetting reads a boolean setting. An unreadable or unparsable
// value is treated as false, which is the safe default for every flag
// this backend has.
func BoolSetting(db *gorm.DB, name string) bool {
	setting, err := FindOrCreateSetting(db, name, "false")
	if err != nil {
		log.Error().Err(err).Str("setting", name).Msg("reading setting failed, treating as false")
		return false
	}

	value, err := strconv.ParseBool(setting.Value)
	if err != nil {
		log.Warn().Str("setting", name).Str("value", setting.Value).Msg("setting is not a boolean, treating as false")
		return false
	}

	return value
}
