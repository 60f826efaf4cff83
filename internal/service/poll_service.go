package service

import (
	"context"
	"errors"
	"strings"

	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"github.com/google/uuid"
)

// PollService provides poll creation and voting business logic.
type PollService struct {
	pollRepo repository.PollRepository
}

// NewPollService returns a new PollService.
func NewPollService(pollRepo repository.PollRepository) *PollService {
	return &PollService{pollRepo: pollRepo}
}

// CreatePoll creates a poll with its choices in one atomic operation.
// A poll needs at least two non-empty choices to be meaningful.
func (s *PollService) CreatePoll(ctx context.Context, authorID uuid.UUID, text string, choices []string) (*models.Poll, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Question text is required")
	}

	var cleaned []string
	for _, c := range choices {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) < 2 {
		return nil, models.NewValidationError("A poll needs at least two choices")
	}

	poll := &models.Poll{Text: text, AuthorID: authorID}
	for _, c := range cleaned {
		poll.Choices = append(poll.Choices, models.PollChoice{Text: c})
	}

	if err := s.pollRepo.Create(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// GetPoll returns the poll with tallies plus whether viewerID already voted.
func (s *PollService) GetPoll(ctx context.Context, id, viewerID uuid.UUID) (*models.Poll, bool, error) {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	hasVoted := false
	if viewerID != uuid.Nil {
		hasVoted, err = s.pollRepo.HasVoted(ctx, id, viewerID)
		if err != nil {
			return nil, false, err
		}
	}
	return poll, hasVoted, nil
}

// ListPolls returns polls newest first.
func (s *PollService) ListPolls(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	return s.pollRepo.List(ctx, clampLimit(limit), clampOffset(offset))
}

// Vote casts userID's ballot for choiceID on poll pollID. The advisory
// conditions (already voted, invalid choice) pass through unchanged so the
// handler can surface them alongside the unmodified poll state.
func (s *PollService) Vote(ctx context.Context, userID, pollID, choiceID uuid.UUID) error {
	err := s.pollRepo.Vote(ctx, pollID, choiceID, userID)
	switch {
	case err == nil:
		observability.VotesCast.Inc()
		return nil
	case errors.Is(err, models.ErrAlreadyVoted):
		observability.VotesRejected.WithLabelValues("already_voted").Inc()
		return err
	case errors.Is(err, models.ErrNoChoice):
		observability.VotesRejected.WithLabelValues("no_choice").Inc()
		return err
	default:
		return err
	}
}
