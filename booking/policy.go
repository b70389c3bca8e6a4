package booking

import (
	"errors"
	"fmt"
	"time"
)

// DefaultWindowYears is how far ahead a stay may be selected.
const DefaultWindowYears = 2

var ErrInvalidPolicy = errors.New("invalid stay policy")

// StayPolicy bounds the length of a stay in nights.
type StayPolicy struct {
	MinNights int `json:"minNights"`
	MaxNights int `json:"maxNights"`
}

func (p StayPolicy) Validate() error {
	if p.MinNights <= 0 {
		return fmt.Errorf("%w: minimum nights must be positive, got %d", ErrInvalidPolicy, p.MinNights)
	}
	if p.MaxNights < p.MinNights {
		return fmt.Errorf("%w: maximum nights %d is below minimum %d", ErrInvalidPolicy, p.MaxNights, p.MinNights)
	}
	return nil
}

// PolicyStatus classifies a night count against a StayPolicy.
type PolicyStatus int

const (
	PolicyEmpty PolicyStatus = iota
	PolicyBelowMinimum
	PolicyWithin
	PolicyAboveMaximum
)

func (s PolicyStatus) String() string {
	switch s {
	case PolicyEmpty:
		return "empty"
	case PolicyBelowMinimum:
		return "below_minimum"
	case PolicyWithin:
		return "within"
	case PolicyAboveMaximum:
		return "above_maximum"
	default:
		return fmt.Sprintf("PolicyStatus(%d)", int(s))
	}
}

// Check is the single stay-length rule shared by selection admission and pricing.
func (p StayPolicy) Check(nights int) PolicyStatus {
	switch {
	case nights <= 0:
		return PolicyEmpty
	case nights < p.MinNights:
		return PolicyBelowMinimum
	case nights > p.MaxNights:
		return PolicyAboveMaximum
	default:
		return PolicyWithin
	}
}

// Window is the span of calendar days a guest may pick from.
type Window struct {
	Earliest time.Time
	Latest   time.Time
}

// NewWindow opens the window on today and closes it the given number of years later.
func NewWindow(today time.Time, years int) Window {
	start := Day(today)
	return Window{Earliest: start, Latest: start.AddDate(years, 0, 0)}
}

// Allows reports whether every set endpoint of r lies inside the window.
// A zero window allows everything.
func (w Window) Allows(r Range) bool {
	for _, d := range []time.Time{r.From, r.To} {
		if d.IsZero() {
			continue
		}
		if !w.Earliest.IsZero() && Day(d).Before(w.Earliest) {
			return false
		}
		if !w.Latest.IsZero() && Day(d).After(w.Latest) {
			return false
		}
	}
	return true
}
