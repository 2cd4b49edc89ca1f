package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/creatorvault/internal/adapters/sqlite"
)

func TestSettingsSeededOnFirstRun(t *testing.T) {
	engine := setupTestEngine(t)
	repo := sqlite.NewSettingRepo(engine)

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if all["shortcut_search"] != "Ctrl+K" {
		t.Errorf("shortcut_search = %q, want %q", all["shortcut_search"], "Ctrl+K")
	}
	if all["theme_mode"] != "system" {
		t.Errorf("theme_mode = %q, want %q", all["theme_mode"], "system")
	}
}

func TestSettingSetUpserts(t *testing.T) {
	engine := setupTestEngine(t)
	repo := sqlite.NewSettingRepo(engine)
	ctx := context.Background()

	if err := repo.Set(ctx, "theme_mode", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := repo.Set(ctx, "custom_key", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if all["theme_mode"] != "dark" {
		t.Errorf("theme_mode = %q, want %q", all["theme_mode"], "dark")
	}
	if all["custom_key"] != "v1" {
		t.Errorf("custom_key = %q, want %q", all["custom_key"], "v1")
	}
}
