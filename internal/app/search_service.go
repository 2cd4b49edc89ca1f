package app

import (
	"context"

	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// SearchServiceImpl implements the SearchService interface.
type SearchServiceImpl struct {
	searchRepo secondary.SearchRepository
}

// NewSearchService creates a new SearchService with injected dependencies.
func NewSearchService(searchRepo secondary.SearchRepository) *SearchServiceImpl {
	return &SearchServiceImpl{searchRepo: searchRepo}
}

// Search runs a free-text query.
func (s *SearchServiceImpl) Search(ctx context.Context, query string) ([]*models.SearchResult, error) {
	return s.searchRepo.Query(ctx, query)
}

// RebuildIndex repopulates the search index from the source tables.
func (s *SearchServiceImpl) RebuildIndex(ctx context.Context) error {
	return s.searchRepo.Rebuild(ctx)
}
