package primary

import (
	"context"

	"github.com/example/creatorvault/internal/models"
)

// AssetService defines the primary port for asset operations.
type AssetService interface {
	// AddFileAsset asks the user for a file, copies it into the idea's
	// asset directory, classifies it, and catalogs it.
	AddFileAsset(ctx context.Context, ideaID int64) (*AddFileAssetResult, error)

	// AddLinkAsset catalogs a web link.
	AddLinkAsset(ctx context.Context, req AddLinkAssetRequest) (int64, error)

	// ListAssets returns the idea's assets, newest first.
	ListAssets(ctx context.Context, ideaID int64) ([]*models.Asset, error)

	// DeleteAsset removes the catalog row and, for non-link assets, the
	// backing file. The row is removed even if the file removal fails.
	DeleteAsset(ctx context.Context, req DeleteAssetRequest) error
}

// AddFileAssetResult reports the cataloged copy, or that the user canceled
// the picker.
type AddFileAssetResult struct {
	Canceled bool
	ID       int64
	Path     string
	Type     string
}

// AddLinkAssetRequest contains parameters for cataloging a link.
type AddLinkAssetRequest struct {
	IdeaID int64
	Label  string
	URL    string
}

// DeleteAssetRequest identifies the asset row and its backing file.
type DeleteAssetRequest struct {
	ID   int64
	Path string
	Type string
}
