package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/creatorvault/internal/db"
	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// ProjectRepo implements secondary.ProjectRepository.
type ProjectRepo struct {
	engine *db.Engine
}

// NewProjectRepo creates a project repository.
func NewProjectRepo(engine *db.Engine) *ProjectRepo {
	return &ProjectRepo{engine: engine}
}

// Create inserts a project. An empty platform is stored as "Custom".
func (r *ProjectRepo) Create(ctx context.Context, name, platform string) (int64, error) {
	if platform == "" {
		platform = "Custom"
	}
	res, err := r.engine.Run(ctx,
		"INSERT INTO projects (name, platform) VALUES (?, ?)", name, platform)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}
	return res.ID, nil
}

// List returns all projects newest first, with idea counts and the most
// recent activity across the project's scripts and ideas.
func (r *ProjectRepo) List(ctx context.Context) ([]*models.ProjectSummary, error) {
	rows, err := r.engine.QueryAll(ctx, `
		SELECT p.id, p.name, p.platform, p.scheduled_date, p.scheduled_time, p.created_at,
			(SELECT COUNT(*) FROM ideas i WHERE i.project_id = p.id) AS idea_count,
			(SELECT MAX(COALESCE(s.updated_at, i.created_at))
				FROM ideas i
				LEFT JOIN scripts s ON s.idea_id = i.id
				WHERE i.project_id = p.id) AS last_activity
		FROM projects p
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]*models.ProjectSummary, 0, len(rows))
	for _, row := range rows {
		s := &models.ProjectSummary{
			Project:   scanProject(row),
			IdeaCount: asInt64(row, "idea_count"),
		}
		s.LastActivity = asString(row, "last_activity")
		if s.LastActivity == "" {
			s.LastActivity = s.CreatedAt
		}
		out = append(out, s)
	}
	return out, nil
}

// Get retrieves one project, or nil if it does not exist.
func (r *ProjectRepo) Get(ctx context.Context, id int64) (*models.Project, error) {
	row, err := r.engine.QueryOne(ctx,
		"SELECT id, name, platform, scheduled_date, scheduled_time, created_at FROM projects WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	p := scanProject(row)
	return &p, nil
}

// Update applies the non-nil fields. An empty scheduled date or time clears
// the column to NULL so the project drops off the schedule.
func (r *ProjectRepo) Update(ctx context.Context, id int64, fields secondary.ProjectFields) error {
	var sets []string
	var args []any
	if fields.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *fields.Name)
	}
	if fields.Platform != nil {
		sets = append(sets, "platform = ?")
		args = append(args, *fields.Platform)
	}
	if fields.ScheduledDate != nil {
		sets = append(sets, "scheduled_date = ?")
		args = append(args, nullable(*fields.ScheduledDate))
	}
	if fields.ScheduledTime != nil {
		sets = append(sets, "scheduled_time = ?")
		args = append(args, nullable(*fields.ScheduledTime))
	}
	if len(sets) == 0 {
		return nil
	}

	stmt := "UPDATE projects SET " + joinSets(sets) + " WHERE id = ?"
	args = append(args, id)
	if _, err := r.engine.Run(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project; ideas, scripts and asset rows go with it.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.engine.Run(ctx, "DELETE FROM projects WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func scanProject(row db.Row) models.Project {
	return models.Project{
		ID:            asInt64(row, "id"),
		Name:          asString(row, "name"),
		Platform:      asString(row, "platform"),
		ScheduledDate: asString(row, "scheduled_date"),
		ScheduledTime: asString(row, "scheduled_time"),
		CreatedAt:     asString(row, "created_at"),
	}
}

// nullable maps "" to NULL so cleared columns read back as absent.
func nullable(s string) any {
	if s == "" {
		return sql.NullString{}
	}
	return s
}

func joinSets(sets []string) string {
	out := sets[0]
	for _, s := range sets[1:] {
		out += ", " + s
	}
	return out
}
