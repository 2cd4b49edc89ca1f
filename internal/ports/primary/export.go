package primary

import "context"

// ExportService defines the primary port for file exports.
type ExportService interface {
	// ExportScript writes script content to a user-chosen file in txt or
	// md format.
	ExportScript(ctx context.Context, req ExportScriptRequest) (*ExportResult, error)

	// ExportMetadata writes metadata rows to a user-chosen file in json
	// or csv format. Columns fixes the CSV column order (Go maps are
	// unordered).
	ExportMetadata(ctx context.Context, req ExportMetadataRequest) (*ExportResult, error)
}

// ExportScriptRequest contains parameters for exporting a script.
type ExportScriptRequest struct {
	Title   string
	Content string
	Format  string
}

// ExportMetadataRequest contains parameters for exporting metadata rows.
type ExportMetadataRequest struct {
	Columns  []string
	Rows     []map[string]any
	Format   string
	Filename string
}

// ExportResult reports the written file, or that the user canceled the
// save dialog.
type ExportResult struct {
	Canceled bool
	Path     string
}
