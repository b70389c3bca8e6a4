package models

import (
	"time"

	"oasis-backend/booking"

	"github.com/shopspring/decimal"
)

// Setting is the single row of site-wide booking rules.
type Setting struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	MinBookingLength    int             `gorm:"column:min_booking_length" json:"minBookingLength"`
	MaxBookingLength    int             `gorm:"column:max_booking_length" json:"maxBookingLength"`
	MaxGuestsPerBooking int             `gorm:"column:max_guests_per_booking" json:"maxGuestsPerBooking"`
	BreakfastPrice      decimal.Decimal `gorm:"column:breakfast_price;type:decimal(10,2)" json:"breakfastPrice"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (s Setting) StayPolicy() booking.StayPolicy {
	return booking.StayPolicy{MinNights: s.MinBookingLength, MaxNights: s.MaxBookingLength}
}

// DefaultSetting is used until an administrator saves the settings row.
func DefaultSetting() Setting {
	return Setting{
		MinBookingLength:    2,
		MaxBookingLength:    90,
		MaxGuestsPerBooking: 8,
		BreakfastPrice:      decimal.NewFromInt(15),
	}
}
