package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Poll is a question users vote on, one ballot per user per poll.
type Poll struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Text     string       `gorm:"size:255;not null" json:"text"`
	AuthorID uuid.UUID    `gorm:"type:uuid;not null;index" json:"author_id"`
	Author   User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Choices  []PollChoice `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (p *Poll) BeforeCreate(_ *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// PollChoice is one selectable option of a poll. Votes is a durable counter
// and must only ever be updated with an atomic SQL increment.
type PollChoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text   string    `gorm:"size:255;not null" json:"text"`
	PollID uuid.UUID `gorm:"type:uuid;not null;index" json:"poll_id"`
	Votes  int64     `gorm:"not null;default:0" json:"votes"`
	Timestamps
}

// BeforeCreate assigns the random UUID primary key.
func (c *PollChoice) BeforeCreate(_ *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// PollBallot records that a user has voted on a poll. The ballot is keyed
// per poll, not per choice: the unique (poll_id, user_id) index is what
// enforces one vote per poll per user even under concurrent requests.
type PollBallot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PollID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_poll_voter" json:"poll_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_poll_voter" json:"user_id"`
	ChoiceID  uuid.UUID `gorm:"type:uuid;not null" json:"choice_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PollBallot) TableName() string {
	return "poll_ballots"
}
