package app

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/ports/secondary"
)

// SettingsServiceImpl implements the SettingsService interface.
type SettingsServiceImpl struct {
	settingRepo secondary.SettingRepository
}

// NewSettingsService creates a new SettingsService with injected dependencies.
func NewSettingsService(settingRepo secondary.SettingRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingRepo: settingRepo}
}

// GetSettings returns the full key-value mapping.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (map[string]string, error) {
	return s.settingRepo.All(ctx)
}

// UpdateSetting upserts one key.
func (s *SettingsServiceImpl) UpdateSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("setting key is required")
	}
	return s.settingRepo.Set(ctx, key, value)
}
