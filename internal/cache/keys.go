package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	userKeyPrefix = "user:%s"
	pollKeyPrefix = "poll:%s"
)

const (
	// UserTTL bounds staleness of cached user profiles.
	UserTTL = 5 * time.Minute
	// PollTTL is short because tallies move while a poll is live.
	PollTTL = 30 * time.Second
)

func UserKey(userID uuid.UUID) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func PollKey(pollID uuid.UUID) string {
	return fmt.Sprintf(pollKeyPrefix, pollID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uuid.UUID) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePoll(ctx context.Context, pollID uuid.UUID) {
	Invalidate(ctx, PollKey(pollID))
}
