package repository

import (
	"context"
	"errors"
	"time"

	"agora/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListPublished is the public listing: published articles only, newest first.
	ListPublished(ctx context.Context, limit, offset int) ([]models.Article, error)
	// ListDrafts returns the author's unpublished articles, newest first.
	ListDrafts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]models.Article, error)
	// Publish stamps published_at with the current time. Calling it on an
	// already-published article just refreshes the timestamp.
	Publish(ctx context.Context, id uuid.UUID) (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository returns a new ArticleRepository implementation.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Preload("Author").First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Article{}, "id = ?", id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return articles, nil
}

func (r *articleRepository) ListDrafts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND published_at IS NULL", authorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return articles, nil
}

func (r *articleRepository) Publish(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ?", id).
		Update("published_at", now)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Article", id)
	}
	return r.GetByID(ctx, id)
}
