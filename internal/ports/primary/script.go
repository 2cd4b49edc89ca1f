package primary

import (
	"context"

	"github.com/example/creatorvault/internal/models"
)

// ScriptService defines the primary port for script operations.
type ScriptService interface {
	// GetScript returns the idea's script, or nil when none exists yet.
	GetScript(ctx context.Context, ideaID int64) (*models.Script, error)

	// SaveScript upserts the idea's script. The word count is recomputed
	// from content; the request's WordCount is accepted for interface
	// compatibility but never trusted.
	SaveScript(ctx context.Context, req SaveScriptRequest) (*models.Script, error)
}

// SaveScriptRequest contains parameters for saving a script.
type SaveScriptRequest struct {
	IdeaID    int64
	Content   string
	Notes     string
	WordCount int64
}
