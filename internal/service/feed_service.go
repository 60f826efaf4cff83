package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"

	"github.com/google/uuid"
)

// FeedService provides short-post business logic.
type FeedService struct {
	feedRepo repository.FeedRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(feedRepo repository.FeedRepository) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

// CreateFeed posts a feed, optionally as a reply to parentID. Parents are
// fixed at creation time and never reassigned.
func (s *FeedService) CreateFeed(ctx context.Context, authorID uuid.UUID, text string, parentID *uuid.UUID) (*models.Feed, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > models.FeedTextMaxLen {
		return nil, models.NewValidationError("Text too long (max 280 characters)")
	}

	if parentID != nil {
		if _, err := s.feedRepo.GetByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	feed := &models.Feed{Text: text, AuthorID: authorID, ParentID: parentID}
	if err := s.feedRepo.Create(ctx, feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// GetFeed returns a feed with its replies.
func (s *FeedService) GetFeed(ctx context.Context, id uuid.UUID) (*models.Feed, error) {
	return s.feedRepo.GetByID(ctx, id)
}

// DeleteFeed removes a feed and its reply subtree. Only the author may delete.
func (s *FeedService) DeleteFeed(ctx context.Context, userID, id uuid.UUID) error {
	feed, err := s.feedRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if feed.AuthorID != userID {
		return models.NewForbiddenError("You can only delete your own feeds")
	}
	return s.feedRepo.Delete(ctx, id)
}

// ListFeeds returns top-level feeds, newest first.
func (s *FeedService) ListFeeds(ctx context.Context, limit, offset int) ([]models.Feed, error) {
	return s.feedRepo.List(ctx, clampLimit(limit), clampOffset(offset))
}
