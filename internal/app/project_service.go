// Package app implements the primary-port services on top of the repository
// and store ports.
package app

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(projectRepo secondary.ProjectRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// CreateProject creates a new project.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (int64, error) {
	if req.Name == "" {
		return 0, fmt.Errorf("project name is required")
	}
	return s.projectRepo.Create(ctx, req.Name, req.Platform)
}

// ListProjects returns all projects with their aggregates.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]*models.ProjectSummary, error) {
	return s.projectRepo.List(ctx)
}

// UpdateProject applies a partial update.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	return s.projectRepo.Update(ctx, req.ID, secondary.ProjectFields{
		Name:          req.Name,
		Platform:      req.Platform,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
	})
}

// DeleteProject deletes a project.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	return s.projectRepo.Delete(ctx, id)
}
