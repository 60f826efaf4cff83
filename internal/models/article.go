package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is long-form content with a draft/published lifecycle.
// Draft and published are not separate columns: published is derived from
// PublishedAt being set. Publishing is one-way, there is no unpublish.
type Article struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Text        string     `gorm:"type:text;not null" json:"text"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (a *Article) BeforeCreate(_ *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// Published reports whether the article has left draft state.
func (a *Article) Published() bool {
	return a.PublishedAt != nil
}
