package service

import (
	"context"
	"log"
	"time"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/infrastructure/cache"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
)

const settingsCacheTTL = 5 * time.Minute

// SettingsService manages the singleton bill settings row.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cache        cache.SettingsCache
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, settingsCache cache.SettingsCache) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        settingsCache,
	}
}

// GetSettings returns the settings row, creating the default row if the
// store has never been configured.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.BillSettings, error) {
	if cached, ok, err := s.cache.Get(ctx); err == nil && ok {
		return cached, nil
	} else if err != nil {
		log.Printf("Warning: settings cache read failed: %v", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = entity.DefaultBillSettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	if err := s.cache.Set(ctx, settings, settingsCacheTTL); err != nil {
		log.Printf("Warning: settings cache write failed: %v", err)
	}

	return settings, nil
}

// UpdateSettingsInput carries the editable settings fields. Pointers
// distinguish "not sent" from zero values.
type UpdateSettingsInput struct {
	StoreName    *string
	StoreAddress *string
	StorePhone   *string
	StoreEmail   *string
	LogoURL      *string

	ShowLogo         *bool
	ShowAddress      *bool
	ShowPhone        *bool
	ShowReturnPolicy *bool
	ShowBarcode      *bool

	PaperWidth *enum.PaperWidth
	FontSize   *enum.FontSize

	HeaderText       *string
	FooterText       *string
	ReturnPolicyText *string

	TaxEnabled        *bool
	TaxName           *string
	TaxRate           *float64
	TaxInclusive      *bool
	ShowTaxBreakdown  *bool
	TaxRegistrationNo *string
}

// UpdateSettings applies a partial update and invalidates the cache so
// the next receipt renders with the new values.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.BillSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.TaxRate != nil && (*input.TaxRate < 0 || *input.TaxRate > 100) {
		return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
	}
	if input.StoreName != nil && *input.StoreName == "" {
		return nil, apperror.NewBadRequestError("Store name cannot be empty")
	}

	applyString(&settings.StoreName, input.StoreName)
	applyString(&settings.StoreAddress, input.StoreAddress)
	applyString(&settings.StorePhone, input.StorePhone)
	applyString(&settings.StoreEmail, input.StoreEmail)
	applyString(&settings.LogoURL, input.LogoURL)

	applyBool(&settings.ShowLogo, input.ShowLogo)
	applyBool(&settings.ShowAddress, input.ShowAddress)
	applyBool(&settings.ShowPhone, input.ShowPhone)
	applyBool(&settings.ShowReturnPolicy, input.ShowReturnPolicy)
	applyBool(&settings.ShowBarcode, input.ShowBarcode)

	if input.PaperWidth != nil {
		settings.PaperWidth = *input.PaperWidth
	}
	if input.FontSize != nil {
		settings.FontSize = *input.FontSize
	}

	applyString(&settings.HeaderText, input.HeaderText)
	applyString(&settings.FooterText, input.FooterText)
	applyString(&settings.ReturnPolicyText, input.ReturnPolicyText)

	applyBool(&settings.TaxEnabled, input.TaxEnabled)
	applyString(&settings.TaxName, input.TaxName)
	if input.TaxRate != nil {
		settings.TaxRate = *input.TaxRate
	}
	applyBool(&settings.TaxInclusive, input.TaxInclusive)
	applyBool(&settings.ShowTaxBreakdown, input.ShowTaxBreakdown)
	applyString(&settings.TaxRegistrationNo, input.TaxRegistrationNo)

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Warning: settings cache invalidation failed: %v", err)
	}

	return settings, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
