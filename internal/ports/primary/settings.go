package primary

import "context"

// SettingsService defines the primary port for user preferences.
type SettingsService interface {
	// GetSettings returns the full key-value mapping.
	GetSettings(ctx context.Context) (map[string]string, error)

	// UpdateSetting upserts one key.
	UpdateSetting(ctx context.Context, key, value string) error
}
