package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is a Q&A question. Answers are plain newest-first children,
// no voting or acceptance state.
type Question struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Answers     []Answer  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (q *Question) BeforeCreate(_ *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

// Answer is a reply to a Q&A question.
type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Author     User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (a *Answer) BeforeCreate(_ *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
