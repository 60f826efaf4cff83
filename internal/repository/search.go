package repository

import (
	"context"
	"strings"

	"agora/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchRepository runs category-dispatched queries. Both the search
// endpoint and the profile content filter go through Find, so the dispatch
// table in models.CategorySpecs is evaluated in exactly one place and the
// published-only policy cannot drift between the two call sites.
type SearchRepository interface {
	// Find returns rows of the category's entity set, newest first.
	// A non-empty query restricts to case-insensitive substring matches on
	// the category's text column; a non-nil authorID restricts to rows
	// authored by that user. An unrecognized category yields an empty set.
	Find(ctx context.Context, category models.Category, query string, authorID *uuid.UUID, limit, offset int) ([]models.SearchResult, error)
}

type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository returns a new SearchRepository implementation.
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) Find(ctx context.Context, category models.Category, query string, authorID *uuid.UUID, limit, offset int) ([]models.SearchResult, error) {
	spec, ok := models.CategorySpecs[category]
	if !ok {
		return []models.SearchResult{}, nil
	}

	dest := spec.NewList()
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset)

	if query != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on postgres
		// and the sqlite test database
		tx = tx.Where("LOWER("+spec.TextColumn+") LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if authorID != nil {
		tx = tx.Where(spec.AuthorColumn+" = ?", *authorID)
	}
	if spec.PublishedOnly {
		tx = tx.Where("published_at IS NOT NULL")
	}

	if err := tx.Find(dest).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return spec.Collect(dest), nil
}
