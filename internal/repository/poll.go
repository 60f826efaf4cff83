package repository

import (
	"context"
	"errors"

	"agora/internal/cache"
	"agora/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PollRepository defines persistence operations for polls and voting.
type PollRepository interface {
	// Create persists the poll and its choices atomically; a failure on any
	// choice leaves nothing behind.
	Create(ctx context.Context, poll *models.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Poll, error)
	List(ctx context.Context, limit, offset int) ([]models.Poll, error)
	// Vote records one ballot for user on the given choice. Returns
	// models.ErrAlreadyVoted if the user holds a ballot on this poll, and
	// models.ErrNoChoice if choiceID does not identify a choice of this
	// poll. Neither condition mutates anything.
	Vote(ctx context.Context, pollID, choiceID, userID uuid.UUID) error
	HasVoted(ctx context.Context, pollID, userID uuid.UUID) (bool, error)
}

type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository returns a new PollRepository implementation.
func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) Create(ctx context.Context, poll *models.Poll) error {
	// gorm persists the Choices association inside the same transaction
	// as the poll row, which gives us the all-or-nothing create.
	if err := r.db.WithContext(ctx).Create(poll).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID serves poll reads cache-aside; Vote invalidates the key so stale
// tallies live at most PollTTL.
func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Poll, error) {
	var poll models.Poll
	key := cache.PollKey(id)

	err := cache.Aside(ctx, key, &poll, cache.PollTTL, func() error {
		err := r.db.WithContext(ctx).
			Preload("Author").
			Preload("Choices", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC")
			}).
			First(&poll, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Poll", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func (r *pollRepository) List(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	var polls []models.Poll
	err := r.db.WithContext(ctx).
		Preload("Choices").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&polls).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return polls, nil
}

// Vote is the whole voting invariant in one transaction:
//  1. the choice must belong to the poll (looked up through the poll's own
//     choice set, never trusted from input),
//  2. the ballot insert hits the unique (poll_id, user_id) index, so a
//     second vote cannot land even under concurrent requests,
//  3. the tally bump is an atomic SQL increment, never read-modify-write.
func (r *pollRepository) Vote(ctx context.Context, pollID, choiceID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var poll models.Poll
		if err := tx.First(&poll, "id = ?", pollID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Poll", pollID)
			}
			return models.NewInternalError(err)
		}

		var choice models.PollChoice
		err := tx.Where("id = ? AND poll_id = ?", choiceID, pollID).First(&choice).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNoChoice
			}
			return models.NewInternalError(err)
		}

		ballot := &models.PollBallot{PollID: pollID, UserID: userID, ChoiceID: choice.ID}
		if err := tx.Create(ballot).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.ErrAlreadyVoted
			}
			return models.NewInternalError(err)
		}

		return tx.Model(&models.PollChoice{}).
			Where("id = ?", choice.ID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidatePoll(ctx, pollID)
	return nil
}

func (r *pollRepository) HasVoted(ctx context.Context, pollID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PollBallot{}).
		Where("poll_id = ? AND user_id = ?", pollID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
