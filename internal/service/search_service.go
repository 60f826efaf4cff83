package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"github.com/google/uuid"
)

// SearchService answers both category-dispatched call sites: free-text
// search and the per-user profile content filter.
type SearchService struct {
	searchRepo repository.SearchRepository
	userRepo   repository.UserRepository
}

// NewSearchService returns a new SearchService.
func NewSearchService(searchRepo repository.SearchRepository, userRepo repository.UserRepository) *SearchService {
	return &SearchService{searchRepo: searchRepo, userRepo: userRepo}
}

// Search returns entities of the category whose text field contains query,
// case-insensitively. An empty query is always an empty result set; search
// never degrades into an unfiltered dump.
func (s *SearchService) Search(ctx context.Context, query, rawCategory string, limit, offset int) ([]models.SearchResult, error) {
	category := models.ParseCategory(rawCategory)
	observability.SearchQueries.WithLabelValues(string(category)).Inc()

	query = strings.TrimSpace(query)
	if query == "" {
		return []models.SearchResult{}, nil
	}

	return s.searchRepo.Find(ctx, category, query, nil, clampLimit(limit), clampOffset(offset))
}

// ListByAuthor returns the target user's content in the category, applying
// the same dispatch table (and the same published-only policy on articles)
// as Search.
func (s *SearchService) ListByAuthor(ctx context.Context, authorID uuid.UUID, rawCategory string, limit, offset int) ([]models.SearchResult, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	category := models.ParseCategory(rawCategory)
	return s.searchRepo.Find(ctx, category, "", &authorID, clampLimit(limit), clampOffset(offset))
}
