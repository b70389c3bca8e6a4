package booking

import (
	"fmt"
	"time"
)

// VerdictKind tags the outcome of evaluating a candidate range.
type VerdictKind int

const (
	// VerdictEmpty: an endpoint is still unset, nothing to decide yet.
	VerdictEmpty VerdictKind = iota
	VerdictAccepted
	VerdictRejectedOverlap
	VerdictRejectedDegenerate
	// VerdictRejectedTooLong: the stay exceeds the policy's maximum nights.
	VerdictRejectedTooLong
	// VerdictRejectedOutOfWindow: an endpoint falls before today or past the booking window.
	VerdictRejectedOutOfWindow
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictEmpty:
		return "empty"
	case VerdictAccepted:
		return "accepted"
	case VerdictRejectedOverlap:
		return "rejected_overlap"
	case VerdictRejectedDegenerate:
		return "rejected_degenerate"
	case VerdictRejectedTooLong:
		return "rejected_too_long"
	case VerdictRejectedOutOfWindow:
		return "rejected_out_of_window"
	default:
		return fmt.Sprintf("VerdictKind(%d)", int(k))
	}
}

// Verdict is the engine's answer for one candidate. Range carries the candidate on
// Accepted and Empty and is zero otherwise.
type Verdict struct {
	Kind  VerdictKind
	Range Range
}

// Rejected reports whether the candidate must not be committed.
func (v Verdict) Rejected() bool {
	switch v.Kind {
	case VerdictEmpty, VerdictAccepted:
		return false
	default:
		return true
	}
}

// Warns reports whether the guest should be told about the rejection.
// A same-day selection is an abandoned gesture and stays silent.
func (v Verdict) Warns() bool {
	return v.Rejected() && v.Kind != VerdictRejectedDegenerate
}

// Message is the guest-facing text for a warning verdict.
func (v Verdict) Message() string {
	switch v.Kind {
	case VerdictRejectedOverlap:
		return "These dates are already booked. Please select different dates."
	case VerdictRejectedTooLong:
		return "This stay is longer than the maximum allowed. Please select fewer nights."
	case VerdictRejectedOutOfWindow:
		return "These dates cannot be booked. Please select dates within the booking window."
	default:
		return ""
	}
}

// IsAlreadyBooked reports whether any booked day falls inside the closed interval of
// a complete range.
func IsAlreadyBooked(r Range, booked []time.Time) bool {
	if !r.IsComplete() {
		return false
	}
	r = r.ordered()
	for _, d := range booked {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// Evaluate classifies a candidate against the booked days. Same-day selections are
// rejected before the overlap scan.
func Evaluate(candidate Range, booked []time.Time) Verdict {
	if !candidate.IsComplete() {
		return Verdict{Kind: VerdictEmpty, Range: candidate}
	}
	if SameDay(candidate.From, candidate.To) {
		return Verdict{Kind: VerdictRejectedDegenerate}
	}
	if IsAlreadyBooked(candidate, booked) {
		return Verdict{Kind: VerdictRejectedOverlap}
	}
	return Verdict{Kind: VerdictAccepted, Range: candidate}
}

// Admit is Evaluate plus the interaction-layer bounds: the selectable window and the
// policy maximum. Stays shorter than the minimum are admitted; pricing reports them.
func Admit(candidate Range, booked []time.Time, policy StayPolicy, window Window) Verdict {
	if candidate.IsComplete() && SameDay(candidate.From, candidate.To) {
		return Verdict{Kind: VerdictRejectedDegenerate}
	}
	if !window.Allows(candidate) {
		return Verdict{Kind: VerdictRejectedOutOfWindow}
	}
	v := Evaluate(candidate, booked)
	if v.Kind != VerdictAccepted {
		return v
	}
	if policy.Check(v.Range.Nights()) == PolicyAboveMaximum {
		return Verdict{Kind: VerdictRejectedTooLong}
	}
	return v
}

// Effective is the range actually shown and priced: the stored selection, or an
// empty range once the stored selection overlaps the latest booked days.
func Effective(stored Range, booked []time.Time) Range {
	if IsAlreadyBooked(stored, booked) {
		return Range{}
	}
	return stored
}
