package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Scope narrows a List query. Scopes compose; each one adds a predicate.
type Scope func(*gorm.DB) *gorm.DB

// WithField filters on column equality.
func WithField(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s = ?", column), value)
	}
}

// WithStatus filters on the lifecycle status column.
func WithStatus(status string) Scope {
	return WithField("status", status)
}

// WithCategory filters documents whose classification set contains tag.
// Tag lists are JSON-serialized into the categories column, so membership
// is a match on the quoted element.
func WithCategory(tag string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("categories LIKE ?", fmt.Sprintf("%%%q%%", tag))
	}
}

// DateOnOrAfter filters rows whose date column is at or after t.
func DateOnOrAfter(column string, t time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s >= ?", column), t)
	}
}

// DateBefore filters rows whose date column is strictly before t.
func DateBefore(column string, t time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s < ?", column), t)
	}
}
