package models

// Workflow stages, in pipeline order.
const (
	StageIdea      = "idea"
	StageWriting   = "writing"
	StageRecording = "recording"
	StageEditing   = "editing"
	StageReady     = "ready"
	StagePublished = "published"
)

// Priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Idea belongs to exactly one project.
type Idea struct {
	ID            int64  `json:"id"`
	ProjectID     int64  `json:"project_id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	WorkflowStage string `json:"workflow_stage"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	OutputPath    string `json:"output_path,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ScheduledItem is one row of the cross-entity schedule: a scheduled idea or
// a scheduled project, tagged with its origin type and the parent project's
// name and platform for display.
type ScheduledItem struct {
	Type            string `json:"type"`
	ID              int64  `json:"id"`
	ProjectID       int64  `json:"project_id"`
	Title           string `json:"title"`
	ScheduledDate   string `json:"scheduled_date"`
	ScheduledTime   string `json:"scheduled_time,omitempty"`
	WorkflowStage   string `json:"workflow_stage"`
	ProjectName     string `json:"project_name"`
	ProjectPlatform string `json:"project_platform"`
}
