package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/creatorvault/internal/db"
)

// snapshotIndex reads the full index in a deterministic order.
func snapshotIndex(t *testing.T, engine *db.Engine) []db.Row {
	t.Helper()
	rows, err := engine.QueryAll(context.Background(),
		`SELECT item_type, item_id, project_id, idea_id, title, content
		 FROM search_index ORDER BY item_type, item_id`)
	if err != nil {
		t.Fatalf("failed to snapshot search index: %v", err)
	}
	return rows
}

func TestTriggerSyncMatchesRebuild(t *testing.T) {
	engine := openMigrated(t, filepath.Join(t.TempDir(), "database.sqlite"))
	ctx := context.Background()

	// Exercise inserts, an update, and a delete through the triggers.
	if _, err := engine.Run(ctx,
		"INSERT INTO projects (name, platform) VALUES ('Chan A', 'YouTube')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := engine.Run(ctx,
		"INSERT INTO projects (name, platform) VALUES ('Chan B', 'TikTok')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := engine.Run(ctx,
		"INSERT INTO ideas (project_id, title, description) VALUES (1, 'First', 'about robots')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := engine.Run(ctx,
		"INSERT INTO scripts (idea_id, content, notes, word_count) VALUES (1, 'script body', 'some notes', 2)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := engine.Run(ctx,
		"UPDATE ideas SET title = 'First, renamed' WHERE id = 1"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := engine.Run(ctx,
		"DELETE FROM projects WHERE id = 2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	live := snapshotIndex(t, engine)

	if err := db.RebuildSearchIndex(engine); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	rebuilt := snapshotIndex(t, engine)

	if diff := cmp.Diff(live, rebuilt); diff != "" {
		t.Errorf("trigger-maintained index differs from rebuild (-live +rebuilt):\n%s", diff)
	}
}

func TestRebuildIdempotent(t *testing.T) {
	engine := openMigrated(t, filepath.Join(t.TempDir(), "database.sqlite"))
	ctx := context.Background()

	if _, err := engine.Run(ctx,
		"INSERT INTO projects (name, platform) VALUES ('Chan', 'YouTube')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := db.RebuildSearchIndex(engine); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	first := snapshotIndex(t, engine)

	if err := db.RebuildSearchIndex(engine); err != nil {
		t.Fatalf("second rebuild failed: %v", err)
	}
	second := snapshotIndex(t, engine)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rebuild not idempotent (-first +second):\n%s", diff)
	}
}

func TestIndexSeededFromExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.sqlite")
	engine := openMigrated(t, path)
	ctx := context.Background()

	if _, err := engine.Run(ctx,
		"INSERT INTO projects (name, platform) VALUES ('Preexisting', 'YouTube')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Drop the index rows behind the triggers' back, then reopen: the empty
	// index is detected and rebuilt from the source tables.
	if _, err := engine.Run(ctx, "DELETE FROM search_index"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	engine.Close()

	reopened := openMigrated(t, path)
	rows := snapshotIndex(t, reopened)
	if len(rows) != 1 {
		t.Fatalf("got %d index rows after reopen, want 1", len(rows))
	}
	if rows[0]["title"] != "Preexisting" {
		t.Errorf("index row title = %v, want Preexisting", rows[0]["title"])
	}
}
