package app

import (
	"context"
	"fmt"
	"log"

	"github.com/example/creatorvault/internal/core/asset"
	"github.com/example/creatorvault/internal/models"
	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// AssetServiceImpl implements the AssetService interface.
type AssetServiceImpl struct {
	assetRepo secondary.AssetRepository
	store     secondary.AssetStore
	dialogs   secondary.Dialogs
}

// NewAssetService creates a new AssetService with injected dependencies.
func NewAssetService(
	assetRepo secondary.AssetRepository,
	store secondary.AssetStore,
	dialogs secondary.Dialogs,
) *AssetServiceImpl {
	return &AssetServiceImpl{assetRepo: assetRepo, store: store, dialogs: dialogs}
}

// AddFileAsset picks a file, copies it under the idea's asset directory, and
// catalogs the copy under a type inferred from the file extension.
func (s *AssetServiceImpl) AddFileAsset(ctx context.Context, ideaID int64) (*primary.AddFileAssetResult, error) {
	src, canceled, err := s.dialogs.PickFile("Select Asset File")
	if err != nil {
		return nil, fmt.Errorf("failed to pick asset file: %w", err)
	}
	if canceled {
		return &primary.AddFileAssetResult{Canceled: true}, nil
	}

	dest, err := s.store.CopyIn(src, ideaID)
	if err != nil {
		return nil, err
	}

	assetType := asset.TypeForFile(dest)
	id, err := s.assetRepo.Add(ctx, ideaID, assetType, "", dest)
	if err != nil {
		return nil, err
	}
	return &primary.AddFileAssetResult{ID: id, Path: dest, Type: assetType}, nil
}

// AddLinkAsset catalogs a web link.
func (s *AssetServiceImpl) AddLinkAsset(ctx context.Context, req primary.AddLinkAssetRequest) (int64, error) {
	if req.URL == "" {
		return 0, fmt.Errorf("link URL is required")
	}
	return s.assetRepo.Add(ctx, req.IdeaID, models.AssetLink, req.Label, req.URL)
}

// ListAssets returns the idea's assets.
func (s *AssetServiceImpl) ListAssets(ctx context.Context, ideaID int64) ([]*models.Asset, error) {
	return s.assetRepo.ListByIdea(ctx, ideaID)
}

// DeleteAsset removes the catalog row, then the backing file for non-link
// assets. A file that cannot be removed is logged and left dangling rather
// than resurrecting the row.
func (s *AssetServiceImpl) DeleteAsset(ctx context.Context, req primary.DeleteAssetRequest) error {
	if err := s.assetRepo.Delete(ctx, req.ID); err != nil {
		return err
	}

	if req.Type != models.AssetLink && req.Path != "" {
		if err := s.store.Remove(req.Path); err != nil {
			log.Printf("warning: failed to remove asset file %s: %v", req.Path, err)
		}
	}
	return nil
}
