package repository

import (
	"context"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
)

// SettingsRepository defines the interface for the bill settings singleton
type SettingsRepository interface {
	// Get returns the settings row, or nil when none exists.
	Get(ctx context.Context) (*entity.BillSettings, error)
	Create(ctx context.Context, settings *entity.BillSettings) error
	Update(ctx context.Context, settings *entity.BillSettings) error
}
