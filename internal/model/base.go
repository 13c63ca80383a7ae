package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identity and audit columns shared by every stored entity.
// The ID is an opaque UUID assigned once at insert and immutable afterwards.
// CreatedAt is set once; UpdatedAt is refreshed by gorm on every save.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the identity. Promoted to every model embedding Base.
func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
