// Package primary defines the driving ports: the operation catalog the CLI
// and the api envelope expose to the outside.
package primary

import (
	"context"

	"github.com/example/creatorvault/internal/models"
)

// ProjectService defines the primary port for project operations.
type ProjectService interface {
	// CreateProject creates a project and returns its id. An empty
	// platform defaults to "Custom".
	CreateProject(ctx context.Context, req CreateProjectRequest) (int64, error)

	// ListProjects returns all projects, newest first, enriched with idea
	// counts and last-activity timestamps.
	ListProjects(ctx context.Context) ([]*models.ProjectSummary, error)

	// UpdateProject applies a partial update.
	UpdateProject(ctx context.Context, req UpdateProjectRequest) error

	// DeleteProject deletes a project and, by cascade, its ideas, scripts
	// and asset rows.
	DeleteProject(ctx context.Context, id int64) error
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	Name     string
	Platform string
}

// UpdateProjectRequest contains a partial project update; nil fields are
// left untouched.
type UpdateProjectRequest struct {
	ID            int64
	Name          *string
	Platform      *string
	ScheduledDate *string
	ScheduledTime *string
}
