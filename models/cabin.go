package models

import (
	"oasis-backend/booking"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cabin struct {
	gorm.Model

	Name         string          `json:"name" gorm:"column:name;uniqueIndex;type:varchar(100)"`
	MaxCapacity  int             `json:"maxCapacity" gorm:"column:max_capacity"`
	RegularPrice decimal.Decimal `json:"regularPrice" gorm:"column:regular_price;type:decimal(10,2)"`
	Discount     decimal.Decimal `json:"discount" gorm:"column:discount;type:decimal(10,2)"`
	Description  string          `json:"description" gorm:"type:text"`
	Image        string          `json:"image" gorm:"type:varchar(255)"`
}

// Pricing is the record the booking core prices a stay with.
func (c Cabin) Pricing() booking.Pricing {
	return booking.Pricing{RegularPrice: c.RegularPrice, Discount: c.Discount}
}
