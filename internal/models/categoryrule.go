package models

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule automatically categorizes newly imported operations.
//
// Rules are evaluated in priority order against the raw label of an
// operation, the first matching rule wins. Match supports the *
// wildcard.
type CategoryRule struct {
	DefaultModel
	Priority   uint      `json:"priority"`
	Match      string    `json:"match" example:"EDEKA*"`
	CategoryID uuid.UUID `json:"categoryId"`
}

// Matches reports whether the rule applies to a raw transaction label.
func (r CategoryRule) Matches(raw string) bool {
	return glob.Glob(r.Match, raw)
}

// CategoryRules returns all rules, ordered by priority.
func CategoryRules(db *gorm.DB) ([]CategoryRule, error) {
	var rules []CategoryRule

	err := db.Order("priority ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// Categorize returns the category for a raw label, or nil when no rule
// matches. Since rules are ordered by priority, the first match wins.
func Categorize(rules []CategoryRule, raw string) *uuid.UUID {
	for _, rule := range rules {
		if rule.Matches(raw) {
			id := rule.CategoryID
			return &id
		}
	}

	return nil
}
