// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps is the creation/modification stamp pair composed into every
// content entity. CreatedAt is set once on insert, UpdatedAt on every save.
type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ensureID assigns a random UUID if the primary key is still unset.
// IDs are immutable after creation; hooks never overwrite a non-nil one.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
