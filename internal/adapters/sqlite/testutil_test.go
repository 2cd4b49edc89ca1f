package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/creatorvault/internal/db"
)

// setupTestEngine opens a fresh migrated engine persisting into a temp dir.
func setupTestEngine(t *testing.T) *db.Engine {
	t.Helper()
	engine, err := db.Open(filepath.Join(t.TempDir(), "database.sqlite"))
	if err != nil {
		t.Fatalf("failed to open engine: %v", err)
	}
	t.Cleanup(func() { engine.Close() })
	if err := db.Migrate(engine); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return engine
}

// seedProject inserts a project directly and returns its id.
func seedProject(t *testing.T, engine *db.Engine, name, platform string) int64 {
	t.Helper()
	res, err := engine.Run(context.Background(),
		"INSERT INTO projects (name, platform) VALUES (?, ?)", name, platform)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return res.ID
}

// seedIdea inserts an idea directly and returns its id.
func seedIdea(t *testing.T, engine *db.Engine, projectID int64, title, description string) int64 {
	t.Helper()
	res, err := engine.Run(context.Background(),
		"INSERT INTO ideas (project_id, title, description) VALUES (?, ?, ?)",
		projectID, title, description)
	if err != nil {
		t.Fatalf("failed to seed idea: %v", err)
	}
	return res.ID
}
