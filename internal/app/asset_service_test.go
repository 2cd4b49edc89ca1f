package app_test

import (
	"context"
	"testing"

	"github.com/example/creatorvault/internal/app"
	"github.com/example/creatorvault/internal/ports/primary"
)

func TestAddFileAssetClassifiesAndCatalogs(t *testing.T) {
	repo := &mockAssetRepo{}
	store := &mockAssetStore{}
	dialogs := &mockDialogs{pickPath: "thumb.PNG"}
	svc := app.NewAssetService(repo, store, dialogs)

	res, err := svc.AddFileAsset(context.Background(), 5)
	if err != nil {
		t.Fatalf("AddFileAsset failed: %v", err)
	}
	if res.Canceled {
		t.Fatal("unexpected cancellation")
	}
	if res.Type != "image" {
		t.Errorf("type = %q, want image", res.Type)
	}
	if len(repo.assets) != 1 {
		t.Fatalf("got %d catalog rows, want 1", len(repo.assets))
	}
	if repo.assets[0].PathOrURL != res.Path {
		t.Errorf("cataloged path %q != returned path %q", repo.assets[0].PathOrURL, res.Path)
	}
}

func TestAddFileAssetCanceled(t *testing.T) {
	repo := &mockAssetRepo{}
	store := &mockAssetStore{}
	dialogs := &mockDialogs{pickCanceled: true}
	svc := app.NewAssetService(repo, store, dialogs)

	res, err := svc.AddFileAsset(context.Background(), 5)
	if err != nil {
		t.Fatalf("AddFileAsset failed: %v", err)
	}
	if !res.Canceled {
		t.Error("expected canceled result")
	}
	if len(store.copied) != 0 || len(repo.assets) != 0 {
		t.Error("cancellation must not copy or catalog anything")
	}
}

func TestAddLinkAssetRequiresURL(t *testing.T) {
	svc := app.NewAssetService(&mockAssetRepo{}, &mockAssetStore{}, &mockDialogs{})

	if _, err := svc.AddLinkAsset(context.Background(), primary.AddLinkAssetRequest{IdeaID: 1}); err == nil {
		t.Error("expected error for missing URL")
	}
}

func TestDeleteAssetRemovesFileForFileTypes(t *testing.T) {
	repo := &mockAssetRepo{}
	store := &mockAssetStore{}
	svc := app.NewAssetService(repo, store, &mockDialogs{})
	ctx := context.Background()

	err := svc.DeleteAsset(ctx, primary.DeleteAssetRequest{ID: 3, Path: "/data/assets/1/x.pdf", Type: "file"})
	if err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 3 {
		t.Errorf("deleted rows = %v, want [3]", repo.deleted)
	}
	if len(store.removed) != 1 || store.removed[0] != "/data/assets/1/x.pdf" {
		t.Errorf("removed files = %v", store.removed)
	}

	// Links have no backing file.
	store.removed = nil
	if err := svc.DeleteAsset(ctx, primary.DeleteAssetRequest{ID: 4, Path: "https://x", Type: "link"}); err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}
	if len(store.removed) != 0 {
		t.Errorf("link delete touched the filesystem: %v", store.removed)
	}
}

func TestDeleteAssetToleratesFileRemovalFailure(t *testing.T) {
	repo := &mockAssetRepo{}
	store := &mockAssetStore{removeErr: errRemove}
	svc := app.NewAssetService(repo, store, &mockDialogs{})

	err := svc.DeleteAsset(context.Background(),
		primary.DeleteAssetRequest{ID: 9, Path: "/gone.pdf", Type: "file"})
	if err != nil {
		t.Fatalf("row deletion must succeed despite file error, got: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Errorf("catalog row not deleted")
	}
}
