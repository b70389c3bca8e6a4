package services

import (
	"context"
	"errors"
	"fmt"

	"oasis-backend/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the settings row, or the defaults when none has been saved.
func (s *SettingsService) Get(ctx context.Context) (models.Setting, error) {
	var setting models.Setting
	if err := s.DB.WithContext(ctx).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSetting(), nil
		}
		return models.Setting{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return setting, nil
}

// Update validates the stay policy and guest limit before saving.
func (s *SettingsService) Update(ctx context.Context, in models.Setting) (models.Setting, error) {
	if err := in.StayPolicy().Validate(); err != nil {
		return models.Setting{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if in.MaxGuestsPerBooking <= 0 {
		return models.Setting{}, fmt.Errorf("%w: max guests per booking must be positive", ErrInvalidSettings)
	}
	if in.BreakfastPrice.IsNegative() {
		return models.Setting{}, fmt.Errorf("%w: breakfast price is negative", ErrInvalidSettings)
	}

	var setting models.Setting
	err := s.DB.WithContext(ctx).First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Setting{}, fmt.Errorf("failed to load settings: %w", err)
	}

	setting.MinBookingLength = in.MinBookingLength
	setting.MaxBookingLength = in.MaxBookingLength
	setting.MaxGuestsPerBooking = in.MaxGuestsPerBooking
	setting.BreakfastPrice = in.BreakfastPrice

	if err := s.DB.WithContext(ctx).Save(&setting).Error; err != nil {
		return models.Setting{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return setting, nil
}
