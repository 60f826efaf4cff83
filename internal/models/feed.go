package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedTextMaxLen bounds the length of a feed post.
const FeedTextMaxLen = 280

// Feed is a short post. A feed may reply to another feed through ParentID,
// forming an ownership tree: parents are assigned at creation time only and
// deleting a feed removes its whole reply subtree.
type Feed struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Text     string     `gorm:"size:280;not null" json:"text"`
	AuthorID uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	Author   User       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Children []Feed     `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (f *Feed) BeforeCreate(_ *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}
