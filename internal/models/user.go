package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account in the Agora application. Email is the unique
// natural key; the uniqueIndex backs duplicate detection at persistence time.
// Password only ever holds a bcrypt hash.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
