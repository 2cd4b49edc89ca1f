package sqlite

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/example/creatorvault/internal/core/search"
	"github.com/example/creatorvault/internal/db"
	"github.com/example/creatorvault/internal/models"
)

// searchLimit caps result sets from both the MATCH path and the fallback.
const searchLimit = 50

// SearchRepo implements secondary.SearchRepository.
type SearchRepo struct {
	engine *db.Engine
}

// NewSearchRepo creates a search repository.
func NewSearchRepo(engine *db.Engine) *SearchRepo {
	return &SearchRepo{engine: engine}
}

// Query runs the full-text plan against the index, falling back to
// substring matching when FTS5 is unavailable or the MATCH itself errors
// (malformed token streams can slip past the planner). A blank query
// returns no rows.
func (r *SearchRepo) Query(ctx context.Context, raw string) ([]*models.SearchResult, error) {
	match, ok := search.BuildMatch(raw)
	if !ok {
		return nil, nil
	}

	if r.engine.FullTextAvailable() {
		rows, err := r.engine.QueryAll(ctx, `
			SELECT item_type, item_id, project_id, idea_id, title, content
			FROM search_index WHERE search_index MATCH ?
			ORDER BY rank LIMIT ?`, match, searchLimit)
		if err == nil {
			return scanResults(rows), nil
		}
		log.Printf("warning: full-text query failed, using substring fallback: %v", err)
	}

	return r.fallback(ctx, raw)
}

// fallback substring-matches title and content. It is the only query path
// when the index is a plain table.
func (r *SearchRepo) fallback(ctx context.Context, raw string) ([]*models.SearchResult, error) {
	like := "%" + strings.TrimSpace(raw) + "%"
	rows, err := r.engine.QueryAll(ctx, `
		SELECT item_type, item_id, project_id, idea_id, title, content
		FROM search_index WHERE title LIKE ? OR content LIKE ?
		LIMIT ?`, like, like, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return scanResults(rows), nil
}

// Rebuild repopulates the index from the source tables.
func (r *SearchRepo) Rebuild(ctx context.Context) error {
	return db.RebuildSearchIndex(r.engine)
}

func scanResults(rows []db.Row) []*models.SearchResult {
	out := make([]*models.SearchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, &models.SearchResult{
			ItemType:  asString(row, "item_type"),
			ItemID:    asInt64(row, "item_id"),
			ProjectID: asInt64(row, "project_id"),
			IdeaID:    asInt64(row, "idea_id"),
			Title:     asString(row, "title"),
			Content:   asString(row, "content"),
		})
	}
	return out
}
