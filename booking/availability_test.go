package booking

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q) error: %v", s, err)
	}
	return d
}

func rng(t *testing.T, from, to string) Range {
	t.Helper()
	return NewRange(day(t, from), day(t, to))
}

func TestEvaluateDegenerateWinsOverOverlap(t *testing.T) {
	booked := []time.Time{day(t, "2024-07-10")}

	cases := []Range{
		rng(t, "2024-07-10", "2024-07-10"),
		rng(t, "2024-07-12", "2024-07-12"),
		{From: time.Date(2024, 7, 12, 8, 0, 0, 0, time.UTC), To: time.Date(2024, 7, 12, 22, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := Evaluate(c, booked).Kind; got != VerdictRejectedDegenerate {
			t.Fatalf("Evaluate(%s) = %s, want rejected_degenerate", c, got)
		}
	}
}

func TestEvaluateOverlapIsInclusive(t *testing.T) {
	booked := []time.Time{day(t, "2024-07-10")}

	for _, c := range []Range{
		rng(t, "2024-07-09", "2024-07-11"),
		rng(t, "2024-07-10", "2024-07-12"),
		rng(t, "2024-07-08", "2024-07-10"),
	} {
		v := Evaluate(c, booked)
		if v.Kind != VerdictRejectedOverlap {
			t.Fatalf("Evaluate(%s) = %s, want rejected_overlap", c, v.Kind)
		}
		if !v.Range.IsEmpty() {
			t.Fatalf("rejected verdict should carry no range, got %s", v.Range)
		}
	}
}

func TestEvaluateAcceptsDisjointRange(t *testing.T) {
	booked := []time.Time{day(t, "2024-07-10"), day(t, "2024-07-20")}
	c := rng(t, "2024-07-12", "2024-07-15")

	v := Evaluate(c, booked)
	if v.Kind != VerdictAccepted {
		t.Fatalf("Evaluate(%s) = %s, want accepted", c, v.Kind)
	}
	if !v.Range.From.Equal(c.From) || !v.Range.To.Equal(c.To) {
		t.Fatalf("accepted range changed: got %s want %s", v.Range, c)
	}
}

func TestEvaluatePartialRangeIsEmpty(t *testing.T) {
	booked := []time.Time{day(t, "2024-07-10")}

	partial := Range{From: day(t, "2024-07-10")}
	v := Evaluate(partial, booked)
	if v.Kind != VerdictEmpty {
		t.Fatalf("Evaluate(partial) = %s, want empty", v.Kind)
	}
	if !v.Range.From.Equal(partial.From) {
		t.Fatalf("empty verdict should carry the partial candidate")
	}
	if Evaluate(Range{}, booked).Kind != VerdictEmpty {
		t.Fatalf("Evaluate(empty) should be empty")
	}
}

func TestAdmitRejectsStayAboveMaximum(t *testing.T) {
	policy := StayPolicy{MinNights: 2, MaxNights: 5}
	v := Admit(rng(t, "2024-07-01", "2024-07-07"), nil, policy, Window{})
	if v.Kind != VerdictRejectedTooLong {
		t.Fatalf("Admit = %s, want rejected_too_long", v.Kind)
	}
	if !v.Warns() {
		t.Fatalf("too-long rejection should warn")
	}
}

func TestAdmitKeepsShortStay(t *testing.T) {
	policy := StayPolicy{MinNights: 3, MaxNights: 10}
	v := Admit(rng(t, "2024-07-01", "2024-07-02"), nil, policy, Window{})
	if v.Kind != VerdictAccepted {
		t.Fatalf("Admit = %s, want accepted for a stay below the minimum", v.Kind)
	}
}

func TestAdmitWindow(t *testing.T) {
	policy := StayPolicy{MinNights: 1, MaxNights: 30}
	window := NewWindow(day(t, "2024-07-05"), DefaultWindowYears)

	if v := Admit(rng(t, "2024-07-04", "2024-07-08"), nil, policy, window); v.Kind != VerdictRejectedOutOfWindow {
		t.Fatalf("range starting before today: got %s", v.Kind)
	}
	if v := Admit(rng(t, "2026-07-04", "2026-07-08"), nil, policy, window); v.Kind != VerdictRejectedOutOfWindow {
		t.Fatalf("range ending after the window: got %s", v.Kind)
	}
	if v := Admit(Range{From: day(t, "2024-07-01")}, nil, policy, window); v.Kind != VerdictRejectedOutOfWindow {
		t.Fatalf("partial range before today: got %s", v.Kind)
	}
	if v := Admit(rng(t, "2024-07-05", "2024-07-08"), nil, policy, window); v.Kind != VerdictAccepted {
		t.Fatalf("range starting today: got %s", v.Kind)
	}
	if v := Admit(rng(t, "2024-07-01", "2024-07-01"), nil, policy, window); v.Kind != VerdictRejectedDegenerate {
		t.Fatalf("same-day gesture in the past should stay silent: got %s", v.Kind)
	}
}

func TestDegenerateVerdictDoesNotWarn(t *testing.T) {
	v := Verdict{Kind: VerdictRejectedDegenerate}
	if !v.Rejected() || v.Warns() {
		t.Fatalf("degenerate verdict: rejected=%v warns=%v", v.Rejected(), v.Warns())
	}
	if v.Message() != "" {
		t.Fatalf("degenerate verdict should carry no message")
	}
}

func TestEffectiveDropsStaleSelection(t *testing.T) {
	stored := rng(t, "2024-07-12", "2024-07-15")

	if got := Effective(stored, []time.Time{day(t, "2024-07-10")}); got != stored {
		t.Fatalf("Effective should keep a free range, got %s", got)
	}
	if got := Effective(stored, []time.Time{day(t, "2024-07-14")}); !got.IsEmpty() {
		t.Fatalf("Effective should be empty once a stored day is booked, got %s", got)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 30, 23, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 2, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(to, from); got != 3 {
		t.Fatalf("DaysBetween = %d, want 3", got)
	}
	if got := DaysBetween(from, to); got != -3 {
		t.Fatalf("DaysBetween reversed = %d, want -3", got)
	}
}

func TestEachDay(t *testing.T) {
	days := EachDay(day(t, "2024-02-27"), day(t, "2024-03-01"))
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if len(days) != len(want) {
		t.Fatalf("EachDay returned %d days, want %d", len(days), len(want))
	}
	for i, d := range days {
		if FormatDay(d) != want[i] {
			t.Fatalf("day %d = %s, want %s", i, FormatDay(d), want[i])
		}
	}
	if EachDay(day(t, "2024-03-02"), day(t, "2024-03-01")) != nil {
		t.Fatalf("EachDay with end before start should be nil")
	}
}

func TestNewRangeOrdersEndpoints(t *testing.T) {
	r := NewRange(day(t, "2024-07-15"), day(t, "2024-07-12"))
	if FormatDay(r.From) != "2024-07-12" || FormatDay(r.To) != "2024-07-15" {
		t.Fatalf("NewRange did not order endpoints: %s", r)
	}
}
