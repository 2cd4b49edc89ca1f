package sqlite

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/db"
	"github.com/example/creatorvault/internal/models"
)

// AssetRepo implements secondary.AssetRepository. It owns only the catalog
// rows; copying and removing backing files is the asset store's job.
type AssetRepo struct {
	engine *db.Engine
}

// NewAssetRepo creates an asset repository.
func NewAssetRepo(engine *db.Engine) *AssetRepo {
	return &AssetRepo{engine: engine}
}

// Add catalogs an asset.
func (r *AssetRepo) Add(ctx context.Context, ideaID int64, assetType, label, pathOrURL string) (int64, error) {
	res, err := r.engine.Run(ctx,
		"INSERT INTO assets (idea_id, type, label, path_or_url) VALUES (?, ?, ?, ?)",
		ideaID, assetType, label, pathOrURL)
	if err != nil {
		return 0, fmt.Errorf("failed to add asset: %w", err)
	}
	return res.ID, nil
}

// ListByIdea returns the idea's assets newest first.
func (r *AssetRepo) ListByIdea(ctx context.Context, ideaID int64) ([]*models.Asset, error) {
	rows, err := r.engine.QueryAll(ctx,
		"SELECT id, idea_id, type, label, path_or_url, created_at FROM assets WHERE idea_id = ? ORDER BY created_at DESC",
		ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	out := make([]*models.Asset, 0, len(rows))
	for _, row := range rows {
		out = append(out, &models.Asset{
			ID:        asInt64(row, "id"),
			IdeaID:    asInt64(row, "idea_id"),
			Type:      asString(row, "type"),
			Label:     asString(row, "label"),
			PathOrURL: asString(row, "path_or_url"),
			CreatedAt: asString(row, "created_at"),
		})
	}
	return out, nil
}

// Delete removes a catalog row.
func (r *AssetRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.engine.Run(ctx, "DELETE FROM assets WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
