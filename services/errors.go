package services

import "errors"

var (
	ErrCabinNotFound        = errors.New("cabin_not_found")
	ErrBookingNotFound      = errors.New("booking_not_found")
	ErrSelectionNotFound    = errors.New("selection_not_found")
	ErrSelectionIncomplete  = errors.New("selection_incomplete")
	ErrSelectionUnavailable = errors.New("selection_unavailable")
	ErrStayTooShort         = errors.New("stay_too_short")
	ErrSubmissionPending    = errors.New("submission_pending")
	ErrInvalidGuests        = errors.New("invalid_guests")
	ErrInvalidSettings      = errors.New("invalid_settings")
)
