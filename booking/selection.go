package booking

import (
	"time"
)

// Selection holds the range committed for one booking session. It never validates;
// callers run Admit before SetRange.
type Selection struct {
	current Range
}

func (s *Selection) CurrentRange() Range {
	return s.current
}

func (s *Selection) SetRange(r Range) {
	s.current = r
}

// ResetRange clears both endpoints. Calling it again has no further effect.
func (s *Selection) ResetRange() {
	s.current = Range{}
}

// Notifier receives rejections that the guest must be warned about.
type Notifier interface {
	SelectionRejected(v Verdict)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(v Verdict)

func (f NotifierFunc) SelectionRejected(v Verdict) { f(v) }

// View is what a page renders for a session at one moment.
type View struct {
	Stored      Range
	Effective   Range
	CanClear    bool
	Confirmable bool
	Summary     PriceSummary
}

// Session binds a Selection to the gesture rules of one cabin's booking page:
// commit on acceptance, silent reset on a same-day gesture, reset plus exactly one
// notification on any other rejection. It is owned by a single writer.
type Session struct {
	selection Selection
	notifier  Notifier
	pending   bool
}

func NewSession(n Notifier) *Session {
	return &Session{notifier: n}
}

// Select applies one gesture. The verdict is resolved before anything can read the
// selection, so a rejected gesture is never priced.
func (s *Session) Select(candidate Range, booked []time.Time, policy StayPolicy, window Window) Verdict {
	candidate = candidate.ordered()
	v := Admit(candidate, booked, policy, window)
	switch v.Kind {
	case VerdictAccepted, VerdictEmpty:
		s.selection.SetRange(v.Range)
	case VerdictRejectedDegenerate:
		s.selection.ResetRange()
	default:
		s.selection.ResetRange()
		if s.notifier != nil {
			s.notifier.SelectionRejected(v)
		}
	}
	return v
}

// Clear is the guest's explicit reset.
func (s *Session) Clear() {
	s.selection.ResetRange()
}

func (s *Session) CurrentRange() Range {
	return s.selection.CurrentRange()
}

// View re-validates the stored selection against the latest booked days and the
// current window, then prices the result. The stored selection is left as is.
func (s *Session) View(booked []time.Time, pricing Pricing, policy StayPolicy, window Window) View {
	stored := s.selection.CurrentRange()
	effective := Effective(stored, booked)
	if !window.Allows(effective) {
		effective = Range{}
	}
	summary := DerivePricing(effective, pricing, policy)
	return View{
		Stored:      stored,
		Effective:   effective,
		CanClear:    !stored.From.IsZero() || !stored.To.IsZero(),
		Confirmable: summary.Priced(),
		Summary:     summary,
	}
}

// BeginSubmit marks a reservation submission as in flight. It returns false when one
// is already pending.
func (s *Session) BeginSubmit() bool {
	if s.pending {
		return false
	}
	s.pending = true
	return true
}

func (s *Session) EndSubmit() {
	s.pending = false
}

func (s *Session) Pending() bool {
	return s.pending
}
