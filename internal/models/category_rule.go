package models

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to imported transactions whose
// counterparty name matches a glob pattern.
type CategoryRule struct {
	DefaultModel
	Priority uint
	Match    string
	Category string
}

// BeforeSave trims whitespace from all strings.
func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	return nil
}

// CategoryRules returns all category rules ordered by ascending priority.
func CategoryRules(db *gorm.DB) ([]CategoryRule, error) {
	var rules []CategoryRule

	err := db.Order("priority asc").Find(&rules).Error
	return rules, err
}

// CategoryFor returns the category of the first rule matching the
// counterparty name. Rules are expected in priority order. The second
// return value reports whether any rule matched.
func CategoryFor(rules []CategoryRule, counterparty string) (string, bool) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, counterparty) {
			return rule.Category, true
		}
	}

	return "", false
}
