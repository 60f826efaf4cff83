package service

import (
	"context"
	"testing"

	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollServiceCreateRequiresTwoChoices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		choices []string
	}{
		{"no choices", nil},
		{"one choice", []string{"yes"}},
		{"blank choices ignored", []string{"yes", "   ", ""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &stubPollRepo{
				createFn: func(_ context.Context, _ *models.Poll) error {
					t.Fatal("Create should not be called without two choices")
					return nil
				},
			}
			svc := NewPollService(repo)

			_, err := svc.CreatePoll(testCtx, uuid.New(), "favorite color?", tt.choices)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestPollServiceCreateTrimsChoices(t *testing.T) {
	var created *models.Poll
	repo := &stubPollRepo{
		createFn: func(_ context.Context, poll *models.Poll) error {
			created = poll
			return nil
		},
	}
	svc := NewPollService(repo)

	_, err := svc.CreatePoll(testCtx, uuid.New(), " favorite color? ", []string{" red ", "blue", " "})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "favorite color?", created.Text)
	require.Len(t, created.Choices, 2)
	assert.Equal(t, "red", created.Choices[0].Text)
	assert.Equal(t, "blue", created.Choices[1].Text)
}

func TestPollServiceVotePassesThroughAdvisoryErrors(t *testing.T) {
	repo := &stubPollRepo{
		voteFn: func(_ context.Context, _, _, _ uuid.UUID) error {
			return models.ErrAlreadyVoted
		},
	}
	svc := NewPollService(repo)

	err := svc.Vote(testCtx, uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, models.ErrAlreadyVoted)

	repo.voteFn = func(_ context.Context, _, _, _ uuid.UUID) error {
		return models.ErrNoChoice
	}
	err = svc.Vote(testCtx, uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNoChoice)
}

func TestPollServiceGetPollReportsVoterState(t *testing.T) {
	pollID := uuid.New()
	voterID := uuid.New()
	poll := &models.Poll{ID: pollID, Text: "q?", AuthorID: uuid.New()}

	repo := &stubPollRepo{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*models.Poll, error) {
			return poll, nil
		},
		hasVotedFn: func(_ context.Context, _, userID uuid.UUID) (bool, error) {
			return userID == voterID, nil
		},
	}
	svc := NewPollService(repo)

	_, hasVoted, err := svc.GetPoll(testCtx, pollID, voterID)
	require.NoError(t, err)
	assert.True(t, hasVoted)

	_, hasVoted, err = svc.GetPoll(testCtx, pollID, uuid.New())
	require.NoError(t, err)
	assert.False(t, hasVoted)

	// anonymous viewers skip the ballot lookup entirely
	_, hasVoted, err = svc.GetPoll(testCtx, pollID, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, hasVoted)
}
