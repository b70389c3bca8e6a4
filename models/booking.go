package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusUnconfirmed = "unconfirmed"
	StatusCheckedIn   = "checked-in"
	StatusCheckedOut  = "checked-out"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CabinID       uint   `gorm:"index;column:cabin_id" json:"cabinId"`
	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`
	GuestName     string `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestEmail    string `gorm:"column:guest_email;size:150" json:"guestEmail"`

	// stay is [StartDate, EndDate]; EndDate is the check-out day
	StartDate datatypes.Date `gorm:"column:start_date;index" json:"startDate"`
	EndDate   datatypes.Date `gorm:"column:end_date;index" json:"endDate"`
	NumNights int            `gorm:"column:num_nights" json:"numNights"`
	NumGuests int            `gorm:"column:num_guests" json:"numGuests"`

	CabinPrice  decimal.Decimal `gorm:"column:cabin_price;type:decimal(10,2)" json:"cabinPrice"`
	ExtrasPrice decimal.Decimal `gorm:"column:extras_price;type:decimal(10,2)" json:"extrasPrice"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"totalPrice"`

	Status       string `gorm:"column:status;size:32;default:unconfirmed" json:"status"`
	IsPaid       bool   `gorm:"column:is_paid;default:false" json:"isPaid"`
	HasBreakfast bool   `gorm:"column:has_breakfast;default:false" json:"hasBreakfast"`
	Observations string `gorm:"column:observations;type:text" json:"observations,omitempty"`

	Cabin Cabin `gorm:"foreignKey:CabinID;references:ID" json:"cabin,omitempty"`
}

func (b Booking) Start() time.Time { return time.Time(b.StartDate) }

func (b Booking) End() time.Time { return time.Time(b.EndDate) }
