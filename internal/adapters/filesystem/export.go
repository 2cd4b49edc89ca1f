package filesystem

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// ExportWriter writes export payloads atomically so a failed export never
// leaves a truncated file at the user's chosen path.
type ExportWriter struct{}

// NewExportWriter creates a writer.
func NewExportWriter() *ExportWriter {
	return &ExportWriter{}
}

// WriteFile writes data to path.
func (w *ExportWriter) WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
