package primary

import (
	"context"

	"github.com/example/creatorvault/internal/models"
)

// SearchService defines the primary port for search operations.
type SearchService interface {
	// Search runs a free-text query over projects, ideas and scripts.
	// An empty query returns no results without touching the index.
	Search(ctx context.Context, query string) ([]*models.SearchResult, error)

	// RebuildIndex drops and repopulates the search index from the source
	// tables. Safe to run at any time.
	RebuildIndex(ctx context.Context) error
}
