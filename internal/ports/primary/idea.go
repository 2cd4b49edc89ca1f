package primary

import (
	"context"

	"github.com/example/creatorvault/internal/models"
)

// IdeaService defines the primary port for idea operations.
type IdeaService interface {
	// CreateIdea creates an idea under a project. An empty priority
	// defaults to "medium".
	CreateIdea(ctx context.Context, req CreateIdeaRequest) (int64, error)

	// ListIdeas returns a project's ideas, newest first.
	ListIdeas(ctx context.Context, projectID int64) ([]*models.Idea, error)

	// GetIdea retrieves one idea.
	GetIdea(ctx context.Context, id int64) (*models.Idea, error)

	// UpdateIdea applies a partial update.
	UpdateIdea(ctx context.Context, req UpdateIdeaRequest) error

	// DeleteIdea deletes an idea and, by cascade, its script and assets.
	DeleteIdea(ctx context.Context, id int64) error

	// ListScheduled returns scheduled ideas and projects in one list,
	// ascending by date then time, each tagged with its origin type.
	ListScheduled(ctx context.Context) ([]*models.ScheduledItem, error)

	// PickOutputPath asks the user for the idea's produced artifact and
	// records it as the idea's output path.
	PickOutputPath(ctx context.Context, ideaID int64) (*PickOutputPathResult, error)
}

// CreateIdeaRequest contains parameters for creating an idea.
type CreateIdeaRequest struct {
	ProjectID   int64
	Title       string
	Description string
	Priority    string
}

// UpdateIdeaRequest contains a partial idea update; nil fields are left
// untouched.
type UpdateIdeaRequest struct {
	ID            int64
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	WorkflowStage *string
	ScheduledDate *string
	ScheduledTime *string
	OutputPath    *string
}

// PickOutputPathResult reports the chosen artifact path, or that the user
// canceled the picker.
type PickOutputPathResult struct {
	Canceled bool
	Path     string
}
