package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/creatorvault/internal/adapters/sqlite"
)

func TestScriptSaveInsertsThenUpdates(t *testing.T) {
	engine := setupTestEngine(t)
	repo := sqlite.NewScriptRepo(engine)
	ctx := context.Background()

	pid := seedProject(t, engine, "Channel", "YouTube")
	iid := seedIdea(t, engine, pid, "Idea", "")

	if err := repo.Save(ctx, iid, "hello brave new world", "first draft"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := repo.GetByIdea(ctx, iid)
	if err != nil {
		t.Fatalf("GetByIdea failed: %v", err)
	}
	if s == nil {
		t.Fatal("expected script, got nil")
	}
	if s.WordCount != 4 {
		t.Errorf("word_count = %d, want 4", s.WordCount)
	}
	firstID := s.ID

	// A second save updates in place, keeping one row per idea.
	if err := repo.Save(ctx, iid, "shorter now", ""); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	s, _ = repo.GetByIdea(ctx, iid)
	if s.ID != firstID {
		t.Errorf("script id changed from %d to %d on upsert", firstID, s.ID)
	}
	if s.Content != "shorter now" {
		t.Errorf("content = %q, want %q", s.Content, "shorter now")
	}
	if s.WordCount != 2 {
		t.Errorf("word_count = %d, want 2", s.WordCount)
	}

	rows, err := engine.QueryAll(ctx, "SELECT id FROM scripts WHERE idea_id = ?", iid)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d script rows, want 1", len(rows))
	}
}

func TestScriptGetMissingReturnsNil(t *testing.T) {
	engine := setupTestEngine(t)
	repo := sqlite.NewScriptRepo(engine)

	s, err := repo.GetByIdea(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByIdea failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for missing script, got %+v", s)
	}
}
