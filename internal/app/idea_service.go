package app

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// IdeaServiceImpl implements the IdeaService interface.
type IdeaServiceImpl struct {
	ideaRepo secondary.IdeaRepository
	dialogs  secondary.Dialogs
}

// NewIdeaService creates a new IdeaService with injected dependencies.
func NewIdeaService(ideaRepo secondary.IdeaRepository, dialogs secondary.Dialogs) *IdeaServiceImpl {
	return &IdeaServiceImpl{ideaRepo: ideaRepo, dialogs: dialogs}
}

// CreateIdea creates a new idea under a project.
func (s *IdeaServiceImpl) CreateIdea(ctx context.Context, req primary.CreateIdeaRequest) (int64, error) {
	if req.Title == "" {
		return 0, fmt.Errorf("idea title is required")
	}
	return s.ideaRepo.Create(ctx, req.ProjectID, req.Title, req.Description, req.Priority)
}

// ListIdeas returns a project's ideas.
func (s *IdeaServiceImpl) ListIdeas(ctx context.Context, projectID int64) ([]*models.Idea, error) {
	return s.ideaRepo.ListByProject(ctx, projectID)
}

// GetIdea retrieves one idea.
func (s *IdeaServiceImpl) GetIdea(ctx context.Context, id int64) (*models.Idea, error) {
	idea, err := s.ideaRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, fmt.Errorf("idea %d not found", id)
	}
	return idea, nil
}

// UpdateIdea applies a partial update.
func (s *IdeaServiceImpl) UpdateIdea(ctx context.Context, req primary.UpdateIdeaRequest) error {
	if req.Title != nil && *req.Title == "" {
		return fmt.Errorf("idea title cannot be empty")
	}
	return s.ideaRepo.Update(ctx, req.ID, secondary.IdeaFields{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		WorkflowStage: req.WorkflowStage,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		OutputPath:    req.OutputPath,
	})
}

// DeleteIdea deletes an idea.
func (s *IdeaServiceImpl) DeleteIdea(ctx context.Context, id int64) error {
	return s.ideaRepo.Delete(ctx, id)
}

// ListScheduled returns the merged schedule of ideas and projects.
func (s *IdeaServiceImpl) ListScheduled(ctx context.Context) ([]*models.ScheduledItem, error) {
	return s.ideaRepo.ListScheduled(ctx)
}

// PickOutputPath asks for the produced artifact and records it on the idea.
func (s *IdeaServiceImpl) PickOutputPath(ctx context.Context, ideaID int64) (*primary.PickOutputPathResult, error) {
	path, canceled, err := s.dialogs.PickFile("Select Produced File")
	if err != nil {
		return nil, fmt.Errorf("failed to pick output file: %w", err)
	}
	if canceled {
		return &primary.PickOutputPathResult{Canceled: true}, nil
	}

	if err := s.ideaRepo.Update(ctx, ideaID, secondary.IdeaFields{OutputPath: &path}); err != nil {
		return nil, err
	}
	return &primary.PickOutputPathResult{Path: path}, nil
}
