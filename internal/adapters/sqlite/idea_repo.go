package sqlite

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/db"
	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// IdeaRepo implements secondary.IdeaRepository.
type IdeaRepo struct {
	engine *db.Engine
}

// NewIdeaRepo creates an idea repository.
func NewIdeaRepo(engine *db.Engine) *IdeaRepo {
	return &IdeaRepo{engine: engine}
}

// Create inserts an idea. An empty priority is stored as "medium".
func (r *IdeaRepo) Create(ctx context.Context, projectID int64, title, description, priority string) (int64, error) {
	if priority == "" {
		priority = models.PriorityMedium
	}
	res, err := r.engine.Run(ctx,
		"INSERT INTO ideas (project_id, title, description, priority) VALUES (?, ?, ?, ?)",
		projectID, title, description, priority)
	if err != nil {
		return 0, fmt.Errorf("failed to create idea: %w", err)
	}
	return res.ID, nil
}

// ListByProject returns the project's ideas newest first.
func (r *IdeaRepo) ListByProject(ctx context.Context, projectID int64) ([]*models.Idea, error) {
	rows, err := r.engine.QueryAll(ctx,
		ideaColumns+" FROM ideas WHERE project_id = ? ORDER BY created_at DESC", projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	out := make([]*models.Idea, 0, len(rows))
	for _, row := range rows {
		out = append(out, scanIdea(row))
	}
	return out, nil
}

// Get retrieves one idea, or nil if it does not exist.
func (r *IdeaRepo) Get(ctx context.Context, id int64) (*models.Idea, error) {
	row, err := r.engine.QueryOne(ctx, ideaColumns+" FROM ideas WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return scanIdea(row), nil
}

// Update applies the non-nil fields and bumps updated_at.
func (r *IdeaRepo) Update(ctx context.Context, id int64, fields secondary.IdeaFields) error {
	var sets []string
	var args []any
	set := func(col string, v *string, clearable bool) {
		if v == nil {
			return
		}
		sets = append(sets, col+" = ?")
		if clearable {
			args = append(args, nullable(*v))
		} else {
			args = append(args, *v)
		}
	}
	set("title", fields.Title, false)
	set("description", fields.Description, false)
	set("status", fields.Status, false)
	set("priority", fields.Priority, false)
	set("workflow_stage", fields.WorkflowStage, false)
	set("scheduled_date", fields.ScheduledDate, true)
	set("scheduled_time", fields.ScheduledTime, true)
	set("output_path", fields.OutputPath, true)
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	stmt := "UPDATE ideas SET " + joinSets(sets) + " WHERE id = ?"
	args = append(args, id)
	if _, err := r.engine.Run(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}
	return nil
}

// Delete removes an idea; its script and asset rows go with it.
func (r *IdeaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.engine.Run(ctx, "DELETE FROM ideas WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return nil
}

// ListScheduled unions scheduled ideas and scheduled projects into one
// chronological list. Projects carry a fixed "scheduled" stage and are their
// own parent for display purposes.
func (r *IdeaRepo) ListScheduled(ctx context.Context) ([]*models.ScheduledItem, error) {
	rows, err := r.engine.QueryAll(ctx, `
		SELECT 'idea' AS type, i.id, i.project_id, i.title,
			i.scheduled_date, i.scheduled_time, i.workflow_stage,
			p.name AS project_name, p.platform AS project_platform
		FROM ideas i
		JOIN projects p ON p.id = i.project_id
		WHERE i.scheduled_date IS NOT NULL
		UNION ALL
		SELECT 'project' AS type, p.id, p.id AS project_id, p.name AS title,
			p.scheduled_date, p.scheduled_time, 'scheduled' AS workflow_stage,
			p.name AS project_name, p.platform AS project_platform
		FROM projects p
		WHERE p.scheduled_date IS NOT NULL
		ORDER BY scheduled_date ASC, scheduled_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled items: %w", err)
	}

	out := make([]*models.ScheduledItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, &models.ScheduledItem{
			Type:            asString(row, "type"),
			ID:              asInt64(row, "id"),
			ProjectID:       asInt64(row, "project_id"),
			Title:           asString(row, "title"),
			ScheduledDate:   asString(row, "scheduled_date"),
			ScheduledTime:   asString(row, "scheduled_time"),
			WorkflowStage:   asString(row, "workflow_stage"),
			ProjectName:     asString(row, "project_name"),
			ProjectPlatform: asString(row, "project_platform"),
		})
	}
	return out, nil
}

const ideaColumns = `SELECT id, project_id, title, description, status, priority,
	workflow_stage, scheduled_date, scheduled_time, output_path, created_at, updated_at`

func scanIdea(row db.Row) *models.Idea {
	return &models.Idea{
		ID:            asInt64(row, "id"),
		ProjectID:     asInt64(row, "project_id"),
		Title:         asString(row, "title"),
		Description:   asString(row, "description"),
		Status:        asString(row, "status"),
		Priority:      asString(row, "priority"),
		WorkflowStage: asString(row, "workflow_stage"),
		ScheduledDate: asString(row, "scheduled_date"),
		ScheduledTime: asString(row, "scheduled_time"),
		OutputPath:    asString(row, "output_path"),
		CreatedAt:     asString(row, "created_at"),
		UpdatedAt:     asString(row, "updated_at"),
	}
}
