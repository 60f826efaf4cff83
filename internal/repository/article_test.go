package repository

import (
	"testing"
	"time"

	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRepositoryPublishRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	article := &models.Article{Title: "t1", Text: "body", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, article))

	got, err := repo.GetByID(testCtx, article.ID)
	require.NoError(t, err)
	assert.False(t, got.Published())
	assert.Nil(t, got.PublishedAt)

	published, err := repo.Publish(testCtx, article.ID)
	require.NoError(t, err)
	assert.True(t, published.Published())
	require.NotNil(t, published.PublishedAt)
}

func TestArticleRepositoryPublishIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	article := &models.Article{Title: "t1", Text: "body", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, article))

	first, err := repo.Publish(testCtx, article.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	second, err := repo.Publish(testCtx, article.ID)
	require.NoError(t, err)

	// republish succeeds and just refreshes the timestamp
	assert.True(t, second.Published())
	assert.True(t, second.PublishedAt.After(*first.PublishedAt) || second.PublishedAt.Equal(*first.PublishedAt))
}

func TestArticleRepositoryDraftVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)
	author := createTestUser(t, db, "Ann", "ann@x.test")

	article := &models.Article{Title: "t1", Text: "body", AuthorID: author.ID}
	require.NoError(t, repo.Create(testCtx, article))

	// invisible in the public list while a draft
	public, err := repo.ListPublished(testCtx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, public)

	drafts, err := repo.ListDrafts(testCtx, author.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, article.ID, drafts[0].ID)

	_, err = repo.Publish(testCtx, article.ID)
	require.NoError(t, err)

	// visible in the public list, gone from drafts
	public, err = repo.ListPublished(testCtx, 10, 0)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, article.ID, public[0].ID)

	drafts, err = repo.ListDrafts(testCtx, author.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestArticleRepositoryDraftsAreAuthorScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)
	ann := createTestUser(t, db, "Ann", "ann@x.test")
	bea := createTestUser(t, db, "Bea", "bea@x.test")

	require.NoError(t, repo.Create(testCtx, &models.Article{Title: "ann draft", Text: "x", AuthorID: ann.ID}))
	require.NoError(t, repo.Create(testCtx, &models.Article{Title: "bea draft", Text: "x", AuthorID: bea.ID}))

	drafts, err := repo.ListDrafts(testCtx, ann.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "ann draft", drafts[0].Title)
}

func TestArticleRepositoryPublishMissingArticle(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	_, err := repo.Publish(testCtx, uuid.New())
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
