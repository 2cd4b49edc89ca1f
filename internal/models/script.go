package models

// Script is the written content of an idea, at most one per idea.
// WordCount is derived from Content at save time, never trusted from input.
type Script struct {
	ID        int64  `json:"id"`
	IdeaID    int64  `json:"idea_id"`
	Content   string `json:"content"`
	Notes     string `json:"notes,omitempty"`
	WordCount int64  `json:"word_count"`
	UpdatedAt string `json:"updated_at"`
}
