package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/example/creatorvault/internal/app"
	"github.com/example/creatorvault/internal/ports/primary"
)

func TestExportScriptWritesContent(t *testing.T) {
	writer := &mockFileWriter{}
	dialogs := &mockDialogs{savePath: "/exports/my-video.txt"}
	svc := app.NewExportService(writer, dialogs)

	res, err := svc.ExportScript(context.Background(), primary.ExportScriptRequest{
		Title:   "My Video: The Sequel!",
		Content: "script body",
		Format:  "txt",
	})
	if err != nil {
		t.Fatalf("ExportScript failed: %v", err)
	}
	if res.Canceled {
		t.Fatal("unexpected cancellation")
	}
	if string(writer.data) != "script body" {
		t.Errorf("written data = %q", writer.data)
	}
	// The suggested name comes from a slug of the title.
	if !strings.HasSuffix(dialogs.saveDefaultName, ".txt") {
		t.Errorf("default name = %q, want .txt suffix", dialogs.saveDefaultName)
	}
	if strings.ContainsAny(dialogs.saveDefaultName, ":!") {
		t.Errorf("default name %q not slugified", dialogs.saveDefaultName)
	}
}

func TestExportScriptRejectsUnknownFormat(t *testing.T) {
	svc := app.NewExportService(&mockFileWriter{}, &mockDialogs{})

	_, err := svc.ExportScript(context.Background(), primary.ExportScriptRequest{
		Title: "T", Content: "c", Format: "pdf",
	})
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportMetadataCSVQuotesEveryField(t *testing.T) {
	writer := &mockFileWriter{}
	dialogs := &mockDialogs{savePath: "/exports/projects.csv"}
	svc := app.NewExportService(writer, dialogs)

	res, err := svc.ExportMetadata(context.Background(), primary.ExportMetadataRequest{
		Columns:  []string{"id", "name"},
		Rows:     []map[string]any{{"id": int64(1), "name": "A,B"}},
		Format:   "csv",
		Filename: "projects.csv",
	})
	if err != nil {
		t.Fatalf("ExportMetadata failed: %v", err)
	}
	if res.Path != "/exports/projects.csv" {
		t.Errorf("path = %q", res.Path)
	}
	want := "id,name\n\"1\",\"A,B\""
	if string(writer.data) != want {
		t.Errorf("csv = %q, want %q", writer.data, want)
	}
}

func TestExportMetadataCanceledWritesNothing(t *testing.T) {
	writer := &mockFileWriter{}
	dialogs := &mockDialogs{saveCanceled: true}
	svc := app.NewExportService(writer, dialogs)

	res, err := svc.ExportMetadata(context.Background(), primary.ExportMetadataRequest{
		Columns: []string{"id"},
		Rows:    []map[string]any{{"id": int64(1)}},
		Format:  "json",
	})
	if err != nil {
		t.Fatalf("ExportMetadata failed: %v", err)
	}
	if !res.Canceled {
		t.Error("expected canceled result")
	}
	if writer.path != "" {
		t.Error("canceled export still wrote a file")
	}
}
