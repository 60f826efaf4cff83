package repository

import (
	"testing"

	"agora/internal/cache"
	"agora/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollRepositoryVoteCountsOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewPollRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")
	voter := createTestUser(t, db, "Bea", "bea@x.test")

	poll := createTestPoll(t, db, author, "Tabs or spaces?", "A", "B")
	choiceA := choiceByText(t, poll, "A")
	choiceB := choiceByText(t, poll, "B")

	require.NoError(t, repo.Vote(testCtx, poll.ID, choiceA.ID, voter.ID))
	assert.EqualValues(t, 1, choiceVotes(t, db, choiceA.ID))
	assert.EqualValues(t, 0, choiceVotes(t, db, choiceB.ID))

	voted, err := repo.HasVoted(testCtx, poll.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, voted)
}

func TestPollRepositoryGetByIDCachesAndVoteInvalidates(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db := newTestDB(t)
	repo := NewPollRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")
	voter := createTestUser(t, db, "Bea", "bea@x.test")

	poll := createTestPoll(t, db, author, "Tabs or spaces?", "A", "B")

	got, err := repo.GetByID(testCtx, poll.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.PollKey(poll.ID)))

	choiceA := choiceByText(t, got, "A")
	require.NoError(t, repo.Vote(testCtx, poll.ID, choiceA.ID, voter.ID))
	assert.False(t, mr.Exists(cache.PollKey(poll.ID)))

	// the re-fetch after invalidation must carry the fresh tally
	refreshed, err := repo.GetByID(testCtx, poll.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, choiceByText(t, refreshed, "A").Votes)
	require.True(t, mr.Exists(cache.PollKey(poll.ID)))
}

func TestPollRepositorySecondVoteIsRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPollRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")
	voter := createTestUser(t, db, "Bea", "bea@x.test")

	poll := createTestPoll(t, db, author, "Tabs or spaces?", "A", "B")
	choiceA := choiceByText(t, poll, "A")
	choiceB := choiceByText(t, poll, "B")

	require.NoError(t, repo.Vote(testCtx, poll.ID, choiceA.ID, voter.ID))

	// voting again on a DIFFERENT choice of the same poll must not count:
	// the ballot is per poll, not per choice
	err := repo.Vote(testCtx, poll.ID, choiceB.ID, voter.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyVoted)
	assert.EqualValues(t, 1, choiceVotes(t, db, choiceA.ID))
	assert.EqualValues(t, 0, choiceVotes(t, db, choiceB.ID))

	// and voting the same choice again is equally a no-op
	err = repo.Vote(testCtx, poll.ID, choiceA.ID, voter.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyVoted)
	assert.EqualValues(t, 1, choiceVotes(t, db, choiceA.ID))
}

func TestPollRepositoryVoteRejectsForeignChoice(t *testing.T) {
	db := newTestDB(t)
	repo := NewPollRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")
	voter := createTestUser(t, db, "Bea", "bea@x.test")

	pollOne := createTestPoll(t, db, author, "Poll one", "A", "B")
	pollTwo := createTestPoll(t, db, author, "Poll two", "C", "D")
	foreign := choiceByText(t, pollTwo, "C")

	// a choice belonging to a different poll is treated like no selection
	err := repo.Vote(testCtx, pollOne.ID, foreign.ID, voter.ID)
	assert.ErrorIs(t, err, models.ErrNoChoice)
	assert.EqualValues(t, 0, choiceVotes(t, db, foreign.ID))

	// the user still holds no ballot and can vote properly afterwards
	require.NoError(t, repo.Vote(testCtx, pollOne.ID, choiceByText(t, pollOne, "A").ID, voter.ID))
}

func TestPollRepositoryVoteRejectsUnknownChoice(t *testing.T) {
	db := newTestDB(t)
	repo := NewPollRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")
	voter := createTestUser(t, db, "Bea", "bea@x.test")

	poll := createTestPoll(t, db, author, "Poll", "A", "B")

	err := repo.Vote(testCtx, poll.ID, uuid.New(), voter.ID)
	assert.ErrorIs(t, err, models.ErrNoChoice)
}

func TestPollRepositoryVoteMissingPoll(t *testing.T) {
	db := newTestDB(t)
	repo := NewPollRepository(db)
	voter := createTestUser(t, db, "Bea", "bea@x.test")

	err := repo.Vote(testCtx, uuid.New(), uuid.New(), voter.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPollRepositoryCreatePersistsChoicesAtomically(t *testing.T) {
	db := newTestDB(t)
	repo := NewPollRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	poll := &models.Poll{
		Text:     "Best editor?",
		AuthorID: author.ID,
		Choices: []models.PollChoice{
			{Text: "vim"}, {Text: "emacs"}, {Text: "ed"},
		},
	}
	require.NoError(t, repo.Create(testCtx, poll))

	got, err := repo.GetByID(testCtx, poll.ID)
	require.NoError(t, err)
	assert.Len(t, got.Choices, 3)
	for _, c := range got.Choices {
		assert.Equal(t, poll.ID, c.PollID)
		assert.EqualValues(t, 0, c.Votes)
	}
}
