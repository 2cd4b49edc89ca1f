package sqlite

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/db"
)

// SettingRepo implements secondary.SettingRepository.
type SettingRepo struct {
	engine *db.Engine
}

// NewSettingRepo creates a settings repository.
func NewSettingRepo(engine *db.Engine) *SettingRepo {
	return &SettingRepo{engine: engine}
}

// All returns every setting as a flat map.
func (r *SettingRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.engine.QueryAll(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[asString(row, "key")] = asString(row, "value")
	}
	return out, nil
}

// Set upserts one setting.
func (r *SettingRepo) Set(ctx context.Context, key, value string) error {
	if _, err := r.engine.Run(ctx,
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}
