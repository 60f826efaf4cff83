package service

import (
	"context"

	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"github.com/google/uuid"
)

// Network filter values accepted by ListNetwork.
const (
	NetworkAll       = "all"
	NetworkFollowers = "followers"
	NetworkFollowees = "followees"
)

// FollowService provides follow/unfollow business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow makes follower follow target. Self-follows are silently ignored:
// no edge is written, no error is returned, follower and followee sets stay
// untouched. Re-follows are idempotent.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return nil
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.followRepo.Create(ctx, followerID, targetID); err != nil {
		return err
	}
	observability.FollowEvents.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the follower→target edge. Like Follow, acting on
// yourself or on an absent edge is a silent no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return nil
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.followRepo.Delete(ctx, followerID, targetID); err != nil {
		return err
	}
	observability.FollowEvents.WithLabelValues("unfollow").Inc()
	return nil
}

// IsFollowing reports whether follower follows target.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, targetID)
}

// ListNetwork returns users according to the filter: everyone, the user's
// followers, or the users they follow.
func (s *FollowService) ListNetwork(ctx context.Context, userID uuid.UUID, filter string, limit, offset int) ([]models.User, error) {
	switch filter {
	case NetworkAll, "":
		return s.userRepo.List(ctx, clampLimit(limit), clampOffset(offset))
	case NetworkFollowers:
		return s.followRepo.Followers(ctx, userID)
	case NetworkFollowees:
		return s.followRepo.Followees(ctx, userID)
	default:
		return nil, models.NewValidationError("Unknown network filter")
	}
}
