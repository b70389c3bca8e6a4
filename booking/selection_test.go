package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type recordingNotifier struct {
	got []Verdict
}

func (n *recordingNotifier) SelectionRejected(v Verdict) {
	n.got = append(n.got, v)
}

func TestResetRangeIsIdempotent(t *testing.T) {
	var s Selection
	s.SetRange(rng(t, "2024-07-12", "2024-07-15"))

	s.ResetRange()
	once := s.CurrentRange()
	s.ResetRange()
	if s.CurrentRange() != once || !once.IsEmpty() {
		t.Fatalf("second reset changed state: %s vs %s", s.CurrentRange(), once)
	}
}

func TestSessionGestures(t *testing.T) {
	booked := []time.Time{day(t, "2024-07-10")}
	policy := StayPolicy{MinNights: 2, MaxNights: 14}
	price := pricing(100, 10)
	n := &recordingNotifier{}
	s := NewSession(n)

	// overlap: warn once, reset
	s.selection.SetRange(rng(t, "2024-07-01", "2024-07-03"))
	v := s.Select(rng(t, "2024-07-09", "2024-07-11"), booked, policy, Window{})
	if v.Kind != VerdictRejectedOverlap {
		t.Fatalf("overlap gesture = %s", v.Kind)
	}
	if !s.CurrentRange().IsEmpty() {
		t.Fatalf("overlap should reset the selection, got %s", s.CurrentRange())
	}
	if len(n.got) != 1 || n.got[0].Kind != VerdictRejectedOverlap {
		t.Fatalf("notifications = %+v, want exactly one overlap", n.got)
	}

	// accepted and priced
	v = s.Select(rng(t, "2024-07-12", "2024-07-15"), booked, policy, Window{})
	if v.Kind != VerdictAccepted {
		t.Fatalf("free gesture = %s", v.Kind)
	}
	view := s.View(booked, price, policy, Window{})
	if !view.Confirmable || view.Summary.Nights != 3 || !view.Summary.Total.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("view = %+v, want 3 nights totalling 270", view)
	}
	if !view.CanClear {
		t.Fatalf("non-empty selection should offer clear")
	}

	// same day: silent reset
	v = s.Select(rng(t, "2024-07-12", "2024-07-12"), booked, policy, Window{})
	if v.Kind != VerdictRejectedDegenerate {
		t.Fatalf("same-day gesture = %s", v.Kind)
	}
	if !s.CurrentRange().IsEmpty() {
		t.Fatalf("same-day gesture should reset the selection")
	}
	if len(n.got) != 1 {
		t.Fatalf("same-day gesture must not notify, got %d notifications", len(n.got))
	}

	// below minimum: committed but not priced
	v = s.Select(rng(t, "2024-07-12", "2024-07-13"), booked, policy, Window{})
	if v.Kind != VerdictAccepted {
		t.Fatalf("short gesture = %s", v.Kind)
	}
	view = s.View(booked, price, policy, Window{})
	if view.Summary.Kind != SummaryInsufficient || view.Confirmable {
		t.Fatalf("short stay view = %+v, want insufficient", view)
	}
	if view.Effective.IsEmpty() {
		t.Fatalf("short stay should stay selected")
	}
}

func TestSessionPartialGestureIsCommitted(t *testing.T) {
	s := NewSession(nil)
	from := day(t, "2024-07-12")
	v := s.Select(Range{From: from}, nil, StayPolicy{MinNights: 1, MaxNights: 5}, Window{})
	if v.Kind != VerdictEmpty {
		t.Fatalf("partial gesture = %s", v.Kind)
	}
	if !s.CurrentRange().From.Equal(from) || !s.CurrentRange().To.IsZero() {
		t.Fatalf("partial gesture not committed: %s", s.CurrentRange())
	}
	view := s.View(nil, pricing(50, 0), StayPolicy{MinNights: 1, MaxNights: 5}, Window{})
	if !view.CanClear || view.Summary.Kind != SummaryEmpty {
		t.Fatalf("partial view = %+v", view)
	}
}

func TestSessionViewInvalidatesStaleSelection(t *testing.T) {
	policy := StayPolicy{MinNights: 2, MaxNights: 14}
	s := NewSession(nil)
	if v := s.Select(rng(t, "2024-07-12", "2024-07-15"), nil, policy, Window{}); v.Kind != VerdictAccepted {
		t.Fatalf("gesture = %s", v.Kind)
	}

	refreshed := []time.Time{day(t, "2024-07-13")}
	view := s.View(refreshed, pricing(100, 10), policy, Window{})
	if !view.Effective.IsEmpty() {
		t.Fatalf("effective range = %s, want empty", view.Effective)
	}
	if view.Summary.Kind != SummaryEmpty || !view.Summary.Total.IsZero() || view.Summary.Nights != 0 {
		t.Fatalf("summary = %+v, want zero state", view.Summary)
	}
	if view.Stored.IsEmpty() {
		t.Fatalf("stored selection must be left untouched")
	}
}

func TestSessionViewDropsSelectionOutsideWindow(t *testing.T) {
	policy := StayPolicy{MinNights: 2, MaxNights: 14}
	s := NewSession(nil)
	opened := NewWindow(day(t, "2024-07-11"), 2)
	if v := s.Select(rng(t, "2024-07-12", "2024-07-15"), nil, policy, opened); v.Kind != VerdictAccepted {
		t.Fatalf("gesture = %s", v.Kind)
	}

	view := s.View(nil, pricing(100, 10), policy, opened)
	if !view.Confirmable {
		t.Fatalf("selection inside the window should be confirmable: %+v", view)
	}

	nextDay := NewWindow(day(t, "2024-07-13"), 2)
	view = s.View(nil, pricing(100, 10), policy, nextDay)
	if !view.Effective.IsEmpty() || view.Confirmable || view.Summary.Kind != SummaryEmpty {
		t.Fatalf("stay starting before today still offered: %+v", view)
	}
	if view.Stored.IsEmpty() || !view.CanClear {
		t.Fatalf("stored selection must be left untouched")
	}
}

func TestSessionPendingFlag(t *testing.T) {
	s := NewSession(nil)
	if !s.BeginSubmit() {
		t.Fatalf("first submission should start")
	}
	if s.BeginSubmit() {
		t.Fatalf("second submission should be refused while pending")
	}
	s.EndSubmit()
	if s.Pending() || !s.BeginSubmit() {
		t.Fatalf("submission should be possible after EndSubmit")
	}
}

func TestNotifierFunc(t *testing.T) {
	calls := 0
	s := NewSession(NotifierFunc(func(v Verdict) {
		calls++
		if v.Message() == "" {
			t.Fatalf("warning verdict without message: %s", v.Kind)
		}
	}))
	s.Select(rng(t, "2024-07-01", "2024-07-30"), nil, StayPolicy{MinNights: 1, MaxNights: 7}, Window{})
	if calls != 1 {
		t.Fatalf("notifier called %d times, want 1", calls)
	}
}
