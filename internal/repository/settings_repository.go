package repository

import (
	"context"

	"github.com/acesite/backend/internal/model"
)

// SettingsRepository is the persistence contract for the single
// site-settings row.
type SettingsRepository interface {
	// Get returns the settings row, or ErrNotFound when it was never saved.
	Get(ctx context.Context) (*model.SiteSettings, error)
	// Upsert creates or replaces the settings row.
	Upsert(ctx context.Context, s *model.SiteSettings) error
}
