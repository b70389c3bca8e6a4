package services

import (
	"context"
	"testing"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return db, mock
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := booking.ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

type fakeCabins struct {
	cabins map[uint]models.Cabin
	booked map[uint][]time.Time
}

func (f *fakeCabins) GetByID(_ context.Context, id uint) (*models.Cabin, error) {
	c, ok := f.cabins[id]
	if !ok {
		return nil, ErrCabinNotFound
	}
	return &c, nil
}

func (f *fakeCabins) BookedDates(_ context.Context, cabinID uint, _ time.Time) ([]time.Time, error) {
	return f.booked[cabinID], nil
}

type fakeSettings struct {
	setting models.Setting
}

func (f fakeSettings) Get(context.Context) (models.Setting, error) {
	return f.setting, nil
}

func testCabin() models.Cabin {
	c := models.Cabin{
		Name:         "001",
		MaxCapacity:  4,
		RegularPrice: decimal.NewFromInt(100),
		Discount:     decimal.NewFromInt(10),
	}
	c.ID = 1
	return c
}

func testSetting() models.Setting {
	return models.Setting{
		ID:                  1,
		MinBookingLength:    2,
		MaxBookingLength:    14,
		MaxGuestsPerBooking: 3,
		BreakfastPrice:      decimal.NewFromInt(15),
	}
}

func fixedNow(t *testing.T, s string) func() time.Time {
	d := mustDay(t, s).Add(9 * time.Hour)
	return func() time.Time { return d }
}
