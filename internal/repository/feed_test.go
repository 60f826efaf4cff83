package repository

import (
	"testing"

	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRepositoryDeleteCascadesReplies(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	root := &models.Feed{Text: "root", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, root))

	reply := &models.Feed{Text: "reply", AuthorID: author.ID, ParentID: &root.ID}
	require.NoError(t, repo.Create(testCtx, reply))

	nested := &models.Feed{Text: "nested reply", AuthorID: author.ID, ParentID: &reply.ID}
	require.NoError(t, repo.Create(testCtx, nested))

	other := &models.Feed{Text: "unrelated", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, other))

	require.NoError(t, repo.Delete(testCtx, root.ID))

	var count int64
	require.NoError(t, db.Model(&models.Feed{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only the unrelated feed survives")

	var survivor models.Feed
	require.NoError(t, db.First(&survivor).Error)
	assert.Equal(t, other.ID, survivor.ID)
}

func TestFeedRepositoryListExcludesReplies(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	root := &models.Feed{Text: "root", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, root))

	reply := &models.Feed{Text: "reply", AuthorID: author.ID, ParentID: &root.ID}
	require.NoError(t, repo.Create(testCtx, reply))

	feeds, err := repo.List(testCtx, 10, 0)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, root.ID, feeds[0].ID)
}

func TestFeedRepositoryGetByIDLoadsChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	root := &models.Feed{Text: "root", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, root))

	replyOne := &models.Feed{Text: "first reply", AuthorID: author.ID, ParentID: &root.ID}
	require.NoError(t, repo.Create(testCtx, replyOne))
	replyTwo := &models.Feed{Text: "second reply", AuthorID: author.ID, ParentID: &root.ID}
	require.NoError(t, repo.Create(testCtx, replyTwo))

	got, err := repo.GetByID(testCtx, root.ID)
	require.NoError(t, err)
	assert.Len(t, got.Children, 2)
}
