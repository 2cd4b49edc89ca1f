package sqlite

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/core/script"
	"github.com/example/creatorvault/internal/db"
	"github.com/example/creatorvault/internal/models"
)

// ScriptRepo implements secondary.ScriptRepository.
type ScriptRepo struct {
	engine *db.Engine
}

// NewScriptRepo creates a script repository.
func NewScriptRepo(engine *db.Engine) *ScriptRepo {
	return &ScriptRepo{engine: engine}
}

// GetByIdea returns the idea's script, or nil when none has been saved.
func (r *ScriptRepo) GetByIdea(ctx context.Context, ideaID int64) (*models.Script, error) {
	row, err := r.engine.QueryOne(ctx,
		"SELECT id, idea_id, content, notes, word_count, updated_at FROM scripts WHERE idea_id = ?", ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get script: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return &models.Script{
		ID:        asInt64(row, "id"),
		IdeaID:    asInt64(row, "idea_id"),
		Content:   asString(row, "content"),
		Notes:     asString(row, "notes"),
		WordCount: asInt64(row, "word_count"),
		UpdatedAt: asString(row, "updated_at"),
	}, nil
}

// Save upserts the idea's script. The word count is always recomputed from
// content. The upsert is a check-then-update so the row keeps its id across
// saves; INSERT OR REPLACE would churn the rowid and fire delete triggers.
func (r *ScriptRepo) Save(ctx context.Context, ideaID int64, content, notes string) error {
	words := script.CountWords(content)

	existing, err := r.engine.QueryOne(ctx, "SELECT id FROM scripts WHERE idea_id = ?", ideaID)
	if err != nil {
		return fmt.Errorf("failed to look up script: %w", err)
	}

	if existing != nil {
		_, err = r.engine.Run(ctx,
			"UPDATE scripts SET content = ?, notes = ?, word_count = ?, updated_at = CURRENT_TIMESTAMP WHERE idea_id = ?",
			content, notes, words, ideaID)
	} else {
		_, err = r.engine.Run(ctx,
			"INSERT INTO scripts (idea_id, content, notes, word_count) VALUES (?, ?, ?, ?)",
			ideaID, content, notes, words)
	}
	if err != nil {
		return fmt.Errorf("failed to save script: %w", err)
	}
	return nil
}
