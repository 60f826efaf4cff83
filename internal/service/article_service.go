package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"github.com/google/uuid"
)

// ArticleService provides article lifecycle business logic.
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService returns a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// CreateArticle creates a draft owned by authorID.
func (s *ArticleService) CreateArticle(ctx context.Context, authorID uuid.UUID, title, text string) (*models.Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > 255 {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	article := &models.Article{Title: title, Text: text, AuthorID: authorID}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// GetArticle returns the article. Drafts are visible only to their author;
// anyone else gets not-found rather than a hint the draft exists.
func (s *ArticleService) GetArticle(ctx context.Context, id, viewerID uuid.UUID) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.Published() && article.AuthorID != viewerID {
		return nil, models.NewNotFoundError("Article", id)
	}
	return article, nil
}

// UpdateArticle edits title/text. Only the author may edit.
func (s *ArticleService) UpdateArticle(ctx context.Context, userID, id uuid.UUID, title, text string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != userID {
		return nil, models.NewForbiddenError("You can only edit your own articles")
	}

	if title = strings.TrimSpace(title); title != "" {
		article.Title = title
	}
	if strings.TrimSpace(text) != "" {
		article.Text = text
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// PublishArticle performs the one-way draft→published transition. Only the
// author may publish; repeat calls succeed and refresh the timestamp.
func (s *ArticleService) PublishArticle(ctx context.Context, userID, id uuid.UUID) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != userID {
		return nil, models.NewForbiddenError("You can only publish your own articles")
	}

	published, err := s.articleRepo.Publish(ctx, id)
	if err != nil {
		return nil, err
	}
	observability.ArticlesPublished.Inc()
	return published, nil
}

// ListPublished returns the public article listing.
func (s *ArticleService) ListPublished(ctx context.Context, limit, offset int) ([]models.Article, error) {
	return s.articleRepo.ListPublished(ctx, clampLimit(limit), clampOffset(offset))
}

// ListDrafts returns the caller's unpublished articles.
func (s *ArticleService) ListDrafts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]models.Article, error) {
	return s.articleRepo.ListDrafts(ctx, authorID, clampLimit(limit), clampOffset(offset))
}
