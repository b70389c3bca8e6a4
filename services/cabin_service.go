package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"

	"gorm.io/gorm"
)

type CabinService struct {
	DB *gorm.DB
}

func NewCabinService(db *gorm.DB) *CabinService {
	return &CabinService{DB: db}
}

func (s *CabinService) List(ctx context.Context) ([]models.Cabin, error) {
	var cabins []models.Cabin
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&cabins).Error; err != nil {
		return nil, fmt.Errorf("failed to list cabins: %w", err)
	}
	return cabins, nil
}

func (s *CabinService) GetByID(ctx context.Context, id uint) (*models.Cabin, error) {
	var cabin models.Cabin
	if err := s.DB.WithContext(ctx).First(&cabin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinNotFound
		}
		return nil, fmt.Errorf("failed to find cabin %d: %w", id, err)
	}
	return &cabin, nil
}

// BookedDates lists every calendar day taken by the cabin's current and upcoming
// bookings: those starting today or later, plus guests already checked in.
func (s *CabinService) BookedDates(ctx context.Context, cabinID uint, today time.Time) ([]time.Time, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("cabin_id = ?", cabinID).
		Where("(start_date >= ? OR status = ?)", storedDate(booking.Day(today), StorageLocation), models.StatusCheckedIn).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for cabin %d: %w", cabinID, err)
	}
	return flattenBookedDays(bookings), nil
}

// flattenBookedDays expands each booking to its days, deduplicated and sorted.
func flattenBookedDays(bookings []models.Booking) []time.Time {
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0)
	for _, b := range bookings {
		for _, d := range booking.EachDay(b.Start(), b.End()) {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
