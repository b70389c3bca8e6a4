package controllers

import (
	"oasis-backend/booking"
	"oasis-backend/models"
	"oasis-backend/services"
)

type rangeDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func toRangeDTO(r booking.Range) rangeDTO {
	return rangeDTO{StartDate: booking.FormatDay(r.From), EndDate: booking.FormatDay(r.To)}
}

type summaryDTO struct {
	State        string `json:"state"`
	Nights       int    `json:"nights"`
	NightlyRate  string `json:"nightlyRate"`
	RegularPrice string `json:"regularPrice"`
	HasDiscount  bool   `json:"hasDiscount"`
	Total        string `json:"total"`
	MinNights    int    `json:"minNights"`
	MaxNights    int    `json:"maxNights"`
}

func toSummaryDTO(s booking.PriceSummary) summaryDTO {
	return summaryDTO{
		State:        s.Kind.String(),
		Nights:       s.Nights,
		NightlyRate:  s.NightlyRate.StringFixed(2),
		RegularPrice: s.RegularPrice.StringFixed(2),
		HasDiscount:  s.HasDiscount,
		Total:        s.Total.StringFixed(2),
		MinNights:    s.MinNights,
		MaxNights:    s.MaxNights,
	}
}

type selectionDTO struct {
	ID          string     `json:"id"`
	CabinID     uint       `json:"cabinId"`
	CabinName   string     `json:"cabinName"`
	MaxGuests   int        `json:"maxGuests"`
	Selected    rangeDTO   `json:"selected"`
	Effective   rangeDTO   `json:"effective"`
	CanClear    bool       `json:"canClear"`
	Confirmable bool       `json:"confirmable"`
	Pending     bool       `json:"pending"`
	Summary     summaryDTO `json:"summary"`
	Verdict     string     `json:"verdict,omitempty"`
}

func toSelectionDTO(s services.SelectionSnapshot) selectionDTO {
	maxGuests := s.Cabin.MaxCapacity
	if s.Setting.MaxGuestsPerBooking > 0 && s.Setting.MaxGuestsPerBooking < maxGuests {
		maxGuests = s.Setting.MaxGuestsPerBooking
	}
	return selectionDTO{
		ID:          s.ID,
		CabinID:     s.CabinID,
		CabinName:   s.Cabin.Name,
		MaxGuests:   maxGuests,
		Selected:    toRangeDTO(s.View.Stored),
		Effective:   toRangeDTO(s.View.Effective),
		CanClear:    s.View.CanClear,
		Confirmable: s.View.Confirmable,
		Pending:     s.Pending,
		Summary:     toSummaryDTO(s.View.Summary),
	}
}

type cabinDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	MaxCapacity  int    `json:"maxCapacity"`
	RegularPrice string `json:"regularPrice"`
	Discount     string `json:"discount"`
	NightlyRate  string `json:"nightlyRate"`
	HasDiscount  bool   `json:"hasDiscount"`
	Description  string `json:"description"`
	Image        string `json:"image"`
}

func toCabinDTO(c models.Cabin) cabinDTO {
	p := c.Pricing()
	return cabinDTO{
		ID:           c.ID,
		Name:         c.Name,
		MaxCapacity:  c.MaxCapacity,
		RegularPrice: c.RegularPrice.StringFixed(2),
		Discount:     c.Discount.StringFixed(2),
		NightlyRate:  p.NightlyRate().StringFixed(2),
		HasDiscount:  p.HasDiscount(),
		Description:  c.Description,
		Image:        c.Image,
	}
}
