package models

// Search result item types.
const (
	ItemProject = "project"
	ItemIdea    = "idea"
	ItemScript  = "script"
)

// SearchResult is one row of the search index projection, sufficient for the
// caller to route a click-through to the right project, idea or script.
type SearchResult struct {
	ItemType  string `json:"item_type"`
	ItemID    int64  `json:"item_id"`
	ProjectID int64  `json:"project_id"`
	IdeaID    int64  `json:"idea_id,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
}
