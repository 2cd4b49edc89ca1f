// Package secondary defines the driven ports: persistence, filesystem
// stores, and the desktop-shell collaborators (dialogs, restart).
package secondary

import (
	"context"

	"github.com/example/creatorvault/internal/models"
)

// ProjectFields carries a partial update; nil fields are left untouched.
// An empty string clears the column.
type ProjectFields struct {
	Name          *string
	Platform      *string
	ScheduledDate *string
	ScheduledTime *string
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	Create(ctx context.Context, name, platform string) (int64, error)
	List(ctx context.Context) ([]*models.ProjectSummary, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Update(ctx context.Context, id int64, fields ProjectFields) error
	Delete(ctx context.Context, id int64) error
}

// IdeaFields carries a partial update; nil fields are left untouched.
type IdeaFields struct {
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	WorkflowStage *string
	ScheduledDate *string
	ScheduledTime *string
	OutputPath    *string
}

// IdeaRepository persists ideas.
type IdeaRepository interface {
	Create(ctx context.Context, projectID int64, title, description, priority string) (int64, error)
	ListByProject(ctx context.Context, projectID int64) ([]*models.Idea, error)
	Get(ctx context.Context, id int64) (*models.Idea, error)
	Update(ctx context.Context, id int64, fields IdeaFields) error
	Delete(ctx context.Context, id int64) error
	ListScheduled(ctx context.Context) ([]*models.ScheduledItem, error)
}

// ScriptRepository persists scripts, one per idea. Save upserts on the
// idea-id uniqueness constraint and derives word_count from content.
type ScriptRepository interface {
	GetByIdea(ctx context.Context, ideaID int64) (*models.Script, error)
	Save(ctx context.Context, ideaID int64, content, notes string) error
}

// AssetRepository persists asset catalog rows.
type AssetRepository interface {
	Add(ctx context.Context, ideaID int64, assetType, label, pathOrURL string) (int64, error)
	ListByIdea(ctx context.Context, ideaID int64) ([]*models.Asset, error)
	Delete(ctx context.Context, id int64) error
}

// SettingRepository persists the flat key-value settings store.
type SettingRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

// SearchRepository runs full-text queries with a substring fallback, and
// rebuilds the index on demand.
type SearchRepository interface {
	Query(ctx context.Context, raw string) ([]*models.SearchResult, error)
	Rebuild(ctx context.Context) error
}
