package app_test

import (
	"context"
	"testing"

	"github.com/example/creatorvault/internal/app"
	"github.com/example/creatorvault/internal/ports/primary"
)

func TestSaveScriptIgnoresCallerWordCount(t *testing.T) {
	repo := newMockScriptRepo()
	svc := app.NewScriptService(repo)

	saved, err := svc.SaveScript(context.Background(), primary.SaveScriptRequest{
		IdeaID:    7,
		Content:   "one two three",
		WordCount: 9999,
	})
	if err != nil {
		t.Fatalf("SaveScript failed: %v", err)
	}
	if saved.WordCount != 3 {
		t.Errorf("word_count = %d, want recomputed 3", saved.WordCount)
	}
	if saved.IdeaID != 7 {
		t.Errorf("idea_id = %d, want 7", saved.IdeaID)
	}
}

func TestGetScriptMissingReturnsNil(t *testing.T) {
	svc := app.NewScriptService(newMockScriptRepo())

	s, err := svc.GetScript(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetScript failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for missing script, got %+v", s)
	}
}
