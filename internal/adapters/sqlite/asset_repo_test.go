package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/creatorvault/internal/adapters/sqlite"
)

func TestAssetAddListDelete(t *testing.T) {
	engine := setupTestEngine(t)
	repo := sqlite.NewAssetRepo(engine)
	ctx := context.Background()

	pid := seedProject(t, engine, "Channel", "YouTube")
	iid := seedIdea(t, engine, pid, "Idea", "")

	linkID, err := repo.Add(ctx, iid, "link", "Reference", "https://example.com/doc")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := repo.Add(ctx, iid, "image", "", "/data/assets/1/thumb.png"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	assets, err := repo.ListByIdea(ctx, iid)
	if err != nil {
		t.Fatalf("ListByIdea failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(assets))
	}

	if err := repo.Delete(ctx, linkID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	assets, _ = repo.ListByIdea(ctx, iid)
	if len(assets) != 1 {
		t.Fatalf("got %d assets after delete, want 1", len(assets))
	}
	if assets[0].Type != "image" {
		t.Errorf("remaining asset type = %q, want %q", assets[0].Type, "image")
	}
}

func TestAssetRejectsUnknownType(t *testing.T) {
	engine := setupTestEngine(t)
	repo := sqlite.NewAssetRepo(engine)
	ctx := context.Background()

	pid := seedProject(t, engine, "Channel", "YouTube")
	iid := seedIdea(t, engine, pid, "Idea", "")

	if _, err := repo.Add(ctx, iid, "video", "", "/x.mp4"); err == nil {
		t.Error("expected CHECK constraint failure for unknown asset type")
	}
}
