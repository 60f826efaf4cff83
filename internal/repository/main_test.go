package repository

import (
	"context"
	"testing"

	"agora/internal/database"
	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPoll(t *testing.T, db *gorm.DB, author *models.User, text string, choices ...string) *models.Poll {
	t.Helper()
	poll := &models.Poll{Text: text, AuthorID: author.ID}
	for _, c := range choices {
		poll.Choices = append(poll.Choices, models.PollChoice{Text: c})
	}
	require.NoError(t, db.Create(poll).Error)
	return poll
}

func choiceByText(t *testing.T, poll *models.Poll, text string) *models.PollChoice {
	t.Helper()
	for i := range poll.Choices {
		if poll.Choices[i].Text == text {
			return &poll.Choices[i]
		}
	}
	t.Fatalf("choice %q not found", text)
	return nil
}

func choiceVotes(t *testing.T, db *gorm.DB, choiceID uuid.UUID) int64 {
	t.Helper()
	var choice models.PollChoice
	require.NoError(t, db.First(&choice, "id = ?", choiceID).Error)
	return choice.Votes
}

var testCtx = context.Background()
