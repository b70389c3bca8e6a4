package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"

	"github.com/go-playground/validator/v10"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxReferenceAttempts = 5

var guestValidator = validator.New()

// SubmissionGate hands out the stored range of a session for exactly one submission
// at a time.
type SubmissionGate interface {
	BeginSubmit(id string) (uint, booking.Range, error)
	EndSubmit(id string, completed bool)
}

// GuestDetails is what the guest types into the reservation form.
type GuestDetails struct {
	Name         string `validate:"required,max=255"`
	Email        string `validate:"required,email,max=150"`
	NumGuests    int    `validate:"required,min=1"`
	Observations string `validate:"max=2000"`
}

func (g GuestDetails) normalized() GuestDetails {
	g.Name = strings.TrimSpace(g.Name)
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	g.Observations = strings.TrimSpace(g.Observations)
	return g
}

type ReservationService struct {
	DB          *gorm.DB
	Cabins      CabinSource
	Settings    SettingsSource
	Selections  SubmissionGate
	WindowYears int
	Now         func() time.Time
}

func NewReservationService(db *gorm.DB, cabins CabinSource, settings SettingsSource, selections SubmissionGate, windowYears int) *ReservationService {
	return &ReservationService{
		DB:          db,
		Cabins:      cabins,
		Settings:    settings,
		Selections:  selections,
		WindowYears: windowYears,
		Now:         time.Now,
	}
}

func (s *ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// quote re-runs the selection rules against fresh data and prices the stay.
func (s *ReservationService) quote(ctx context.Context, cabinID uint, stored booking.Range) (*models.Cabin, models.Setting, booking.Range, booking.PriceSummary, error) {
	var summary booking.PriceSummary
	if !stored.IsComplete() {
		return nil, models.Setting{}, booking.Range{}, summary, ErrSelectionIncomplete
	}

	cabin, err := s.Cabins.GetByID(ctx, cabinID)
	if err != nil {
		return nil, models.Setting{}, booking.Range{}, summary, err
	}
	setting, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, models.Setting{}, booking.Range{}, summary, err
	}
	booked, err := s.Cabins.BookedDates(ctx, cabinID, s.now())
	if err != nil {
		return nil, models.Setting{}, booking.Range{}, summary, err
	}

	effective := booking.Effective(stored, booked)
	if effective.IsEmpty() {
		return nil, models.Setting{}, booking.Range{}, summary, ErrSelectionUnavailable
	}

	years := s.WindowYears
	if years <= 0 {
		years = booking.DefaultWindowYears
	}
	policy := setting.StayPolicy()
	if v := booking.Admit(effective, booked, policy, booking.NewWindow(s.now(), years)); v.Kind != booking.VerdictAccepted {
		return nil, models.Setting{}, booking.Range{}, summary, fmt.Errorf("%w: %s", ErrSelectionUnavailable, v.Kind)
	}

	summary = booking.DerivePricing(effective, cabin.Pricing(), policy)
	switch summary.Kind {
	case booking.SummaryPriced:
	case booking.SummaryInsufficient:
		return nil, models.Setting{}, booking.Range{}, summary, ErrStayTooShort
	default:
		return nil, models.Setting{}, booking.Range{}, summary, fmt.Errorf("%w: %s", ErrSelectionUnavailable, summary.Kind)
	}
	return cabin, setting, effective, summary, nil
}

// Create turns a session's selection into an unconfirmed booking. Overlap is checked
// again under a row lock on the cabin so two sessions cannot book the same days.
func (s *ReservationService) Create(ctx context.Context, sessionID string, guest GuestDetails) (*models.Booking, error) {
	cabinID, stored, err := s.Selections.BeginSubmit(sessionID)
	if err != nil {
		return nil, err
	}
	completed := false
	defer func() { s.Selections.EndSubmit(sessionID, completed) }()

	cabin, setting, stay, summary, err := s.quote(ctx, cabinID, stored)
	if err != nil {
		return nil, err
	}

	guest = guest.normalized()
	if err := guestValidator.Struct(guest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGuests, err)
	}
	limit := cabin.MaxCapacity
	if setting.MaxGuestsPerBooking > 0 && setting.MaxGuestsPerBooking < limit {
		limit = setting.MaxGuestsPerBooking
	}
	if guest.NumGuests < 1 || guest.NumGuests > limit {
		return nil, fmt.Errorf("%w: between 1 and %d guests", ErrInvalidGuests, limit)
	}

	var created models.Booking
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		created = models.Booking{
			CabinID:       cabin.ID,
			ReferenceCode: newReferenceCode(),
			GuestName:     guest.Name,
			GuestEmail:    guest.Email,
			StartDate:     storedDate(stay.From, StorageLocation),
			EndDate:       storedDate(stay.To, StorageLocation),
			NumNights:     summary.Nights,
			NumGuests:     guest.NumGuests,
			CabinPrice:    summary.Total,
			ExtrasPrice:   decimal.Zero,
			TotalPrice:    summary.Total,
			Status:        models.StatusUnconfirmed,
			Observations:  guest.Observations,
		}

		err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var locked models.Cabin
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, cabin.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCabinNotFound
				}
				return err
			}

			var overlapping int64
			if err := tx.Model(&models.Booking{}).
				Where("cabin_id = ?", cabin.ID).
				Where("start_date <= ? AND end_date >= ?", storedDate(stay.To, StorageLocation), storedDate(stay.From, StorageLocation)).
				Where("status <> ?", models.StatusCheckedOut).
				Count(&overlapping).Error; err != nil {
				return err
			}
			if overlapping > 0 {
				return ErrSelectionUnavailable
			}

			return tx.Omit(clause.Associations).Create(&created).Error
		})
		if err == nil {
			break
		}
		if isDuplicateKey(err) {
			zap.L().Warn("reference code collision, retrying", zap.Int("attempt", attempt+1))
			continue
		}
		if errors.Is(err, ErrSelectionUnavailable) || errors.Is(err, ErrCabinNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create booking after retries: %w", err)
	}

	completed = true
	created.Cabin = *cabin
	zap.L().Info("booking created",
		zap.Uint("booking_id", created.ID),
		zap.String("reference", created.ReferenceCode),
		zap.Uint("cabin_id", cabin.ID),
		zap.Int("nights", created.NumNights),
		zap.String("total", created.TotalPrice.StringFixed(2)),
	)
	return &created, nil
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.WithContext(ctx).Preload("Cabin").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking %d: %w", id, err)
	}
	return &b, nil
}

// Delete cancels a booking and frees its days.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func newReferenceCode() string {
	return "OAS-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func isDuplicateKey(err error) bool {
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
