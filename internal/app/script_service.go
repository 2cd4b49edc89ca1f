package app

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// ScriptServiceImpl implements the ScriptService interface.
type ScriptServiceImpl struct {
	scriptRepo secondary.ScriptRepository
}

// NewScriptService creates a new ScriptService with injected dependencies.
func NewScriptService(scriptRepo secondary.ScriptRepository) *ScriptServiceImpl {
	return &ScriptServiceImpl{scriptRepo: scriptRepo}
}

// GetScript returns the idea's script, or nil when none exists.
func (s *ScriptServiceImpl) GetScript(ctx context.Context, ideaID int64) (*models.Script, error) {
	return s.scriptRepo.GetByIdea(ctx, ideaID)
}

// SaveScript upserts the idea's script and returns the stored row, with the
// word count recomputed from content.
func (s *ScriptServiceImpl) SaveScript(ctx context.Context, req primary.SaveScriptRequest) (*models.Script, error) {
	if err := s.scriptRepo.Save(ctx, req.IdeaID, req.Content, req.Notes); err != nil {
		return nil, err
	}

	saved, err := s.scriptRepo.GetByIdea(ctx, req.IdeaID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("script for idea %d missing after save", req.IdeaID)
	}
	return saved, nil
}
