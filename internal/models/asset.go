package models

// Asset types.
const (
	AssetImage = "image"
	AssetFile  = "file"
	AssetLink  = "link"
)

// Asset is a file or link attached to an idea. PathOrURL is an absolute
// filesystem path for image/file assets and an arbitrary URL for links.
type Asset struct {
	ID        int64  `json:"id"`
	IdeaID    int64  `json:"idea_id"`
	Type      string `json:"type"`
	Label     string `json:"label,omitempty"`
	PathOrURL string `json:"path_or_url"`
	CreatedAt string `json:"created_at"`
}
