// Package models contains the entity types of the tracker. Timestamps are
// kept as the TEXT values SQLite stores (CURRENT_TIMESTAMP strings).
package models

// Project is a container for ideas. Deleting a project cascades to its
// ideas and, transitively, their scripts and assets.
type Project struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Platform      string `json:"platform"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// ProjectSummary is a project enriched with the aggregates the list view
// shows: how many ideas it holds and when it was last touched.
type ProjectSummary struct {
	Project
	IdeaCount    int64  `json:"idea_count"`
	LastActivity string `json:"last_activity"`
}
