package app

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/core/export"
	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	writer  secondary.FileWriter
	dialogs secondary.Dialogs
}

// NewExportService creates a new ExportService with injected dependencies.
func NewExportService(writer secondary.FileWriter, dialogs secondary.Dialogs) *ExportServiceImpl {
	return &ExportServiceImpl{writer: writer, dialogs: dialogs}
}

// ExportScript writes script content to a user-chosen file.
func (s *ExportServiceImpl) ExportScript(ctx context.Context, req primary.ExportScriptRequest) (*primary.ExportResult, error) {
	if req.Format != export.FormatTxt && req.Format != export.FormatMarkdown {
		return nil, fmt.Errorf("unsupported script export format: %s", req.Format)
	}

	defaultName := export.Slugify(req.Title) + "." + req.Format
	path, canceled, err := s.dialogs.SaveFile("Export Script", defaultName)
	if err != nil {
		return nil, fmt.Errorf("failed to pick export path: %w", err)
	}
	if canceled {
		return &primary.ExportResult{Canceled: true}, nil
	}

	if err := s.writer.WriteFile(path, []byte(req.Content)); err != nil {
		return nil, err
	}
	return &primary.ExportResult{Path: path}, nil
}

// ExportMetadata writes metadata rows to a user-chosen file as json or csv.
func (s *ExportServiceImpl) ExportMetadata(ctx context.Context, req primary.ExportMetadataRequest) (*primary.ExportResult, error) {
	var payload []byte
	switch req.Format {
	case export.FormatJSON:
		data, err := export.JSON(req.Rows)
		if err != nil {
			return nil, fmt.Errorf("failed to encode export: %w", err)
		}
		payload = data
	case export.FormatCSV:
		payload = []byte(export.CSV(req.Columns, req.Rows))
	default:
		return nil, fmt.Errorf("unsupported metadata export format: %s", req.Format)
	}

	defaultName := req.Filename
	if defaultName == "" {
		defaultName = "export." + req.Format
	}
	path, canceled, err := s.dialogs.SaveFile("Export Data", defaultName)
	if err != nil {
		return nil, fmt.Errorf("failed to pick export path: %w", err)
	}
	if canceled {
		return &primary.ExportResult{Canceled: true}, nil
	}

	if err := s.writer.WriteFile(path, payload); err != nil {
		return nil, err
	}
	return &primary.ExportResult{Path: path}, nil
}
