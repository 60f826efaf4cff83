package repository

import (
	"context"
	"errors"

	"agora/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedRepository defines persistence operations for feed posts.
type FeedRepository interface {
	Create(ctx context.Context, feed *models.Feed) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Feed, error)
	// Delete removes a feed and its entire reply subtree.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]models.Feed, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository returns a new FeedRepository implementation.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Create(ctx context.Context, feed *models.Feed) error {
	if err := r.db.WithContext(ctx).Create(feed).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *feedRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Feed, error) {
	var feed models.Feed
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&feed, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Feed", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &feed, nil
}

// Delete removes the feed and all transitive replies in one transaction.
// The tree is walked breadth-first; cycles are impossible because parents
// are assigned at creation time and never reassigned.
func (r *feedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []uuid.UUID{id}
		frontier := ids
		for len(frontier) > 0 {
			var children []uuid.UUID
			if err := tx.Model(&models.Feed{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}
		return tx.Delete(&models.Feed{}, "id IN ?", ids).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List returns top-level feeds (not replies), newest first.
func (r *feedRepository) List(ctx context.Context, limit, offset int) ([]models.Feed, error) {
	var feeds []models.Feed
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&feeds).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return feeds, nil
}
