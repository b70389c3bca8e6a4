package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"
)

func newTestSelections(t *testing.T, booked []time.Time) (*SelectionService, *fakeCabins) {
	t.Helper()
	cabins := &fakeCabins{
		cabins: map[uint]models.Cabin{1: testCabin()},
		booked: map[uint][]time.Time{1: booked},
	}
	svc := NewSelectionService(cabins, fakeSettings{setting: testSetting()}, time.Hour, 2)
	svc.Now = fixedNow(t, "2024-07-01")
	return svc, cabins
}

func TestSelectionServiceOpenUnknownCabin(t *testing.T) {
	svc, _ := newTestSelections(t, nil)
	if _, err := svc.Open(context.Background(), 99); !errors.Is(err, ErrCabinNotFound) {
		t.Fatalf("err = %v, want ErrCabinNotFound", err)
	}
	if svc.Len() != 0 {
		t.Fatalf("failed open must not leave a session behind")
	}
}

func TestSelectionServiceGestures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSelections(t, []time.Time{mustDay(t, "2024-07-10")})

	snap, err := svc.Open(ctx, 1)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if snap.View.CanClear || snap.View.Summary.Kind != booking.SummaryEmpty {
		t.Fatalf("fresh session view = %+v", snap.View)
	}

	v, warning, snap, err := svc.Select(ctx, snap.ID, booking.NewRange(mustDay(t, "2024-07-09"), mustDay(t, "2024-07-11")))
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if v.Kind != booking.VerdictRejectedOverlap || warning == "" {
		t.Fatalf("overlap gesture: verdict=%s warning=%q", v.Kind, warning)
	}
	if !snap.View.Stored.IsEmpty() {
		t.Fatalf("overlap should reset the selection, got %s", snap.View.Stored)
	}

	v, warning, snap, err = svc.Select(ctx, snap.ID, booking.NewRange(mustDay(t, "2024-07-12"), mustDay(t, "2024-07-15")))
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if v.Kind != booking.VerdictAccepted || warning != "" {
		t.Fatalf("free gesture: verdict=%s warning=%q", v.Kind, warning)
	}
	if !snap.View.Confirmable || snap.View.Summary.Total.StringFixed(2) != "270.00" {
		t.Fatalf("view = %+v, want confirmable at 270.00", snap.View)
	}

	_, warning, snap, err = svc.Select(ctx, snap.ID, booking.NewRange(mustDay(t, "2024-07-12"), mustDay(t, "2024-07-12")))
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if warning != "" || !snap.View.Stored.IsEmpty() {
		t.Fatalf("same-day gesture: warning=%q stored=%s", warning, snap.View.Stored)
	}

	_, warning, _, err = svc.Select(ctx, snap.ID, booking.NewRange(mustDay(t, "2024-06-20"), mustDay(t, "2024-06-25")))
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if warning == "" {
		t.Fatalf("past dates should warn")
	}
}

func TestSelectionServiceViewSeesNewBookings(t *testing.T) {
	ctx := context.Background()
	svc, cabins := newTestSelections(t, nil)

	snap, _ := svc.Open(ctx, 1)
	if _, _, _, err := svc.Select(ctx, snap.ID, booking.NewRange(mustDay(t, "2024-07-12"), mustDay(t, "2024-07-15"))); err != nil {
		t.Fatalf("Select error: %v", err)
	}

	cabins.booked[1] = []time.Time{mustDay(t, "2024-07-14")}
	snap, err := svc.View(ctx, snap.ID)
	if err != nil {
		t.Fatalf("View error: %v", err)
	}
	if !snap.View.Effective.IsEmpty() || snap.View.Confirmable {
		t.Fatalf("stale selection still shown: %+v", snap.View)
	}
	if snap.View.Stored.IsEmpty() || !snap.View.CanClear {
		t.Fatalf("stored selection should remain until cleared")
	}

	snap, err = svc.Clear(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if snap.View.CanClear {
		t.Fatalf("cleared selection still offers clear")
	}
}

func TestSelectionServiceSubmitGate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSelections(t, nil)
	snap, _ := svc.Open(ctx, 1)

	cabinID, _, err := svc.BeginSubmit(snap.ID)
	if err != nil || cabinID != 1 {
		t.Fatalf("BeginSubmit = %d, %v", cabinID, err)
	}
	if _, _, err := svc.BeginSubmit(snap.ID); !errors.Is(err, ErrSubmissionPending) {
		t.Fatalf("second BeginSubmit err = %v, want ErrSubmissionPending", err)
	}

	svc.EndSubmit(snap.ID, false)
	if _, _, err := svc.BeginSubmit(snap.ID); err != nil {
		t.Fatalf("BeginSubmit after failed attempt: %v", err)
	}

	svc.EndSubmit(snap.ID, true)
	if _, err := svc.View(ctx, snap.ID); !errors.Is(err, ErrSelectionNotFound) {
		t.Fatalf("completed session still alive: %v", err)
	}
}

func TestSelectionServiceExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSelections(t, nil)
	now := mustDay(t, "2024-07-01")
	svc.Now = func() time.Time { return now }

	snap, _ := svc.Open(ctx, 1)
	now = now.Add(30 * time.Minute)
	if _, err := svc.View(ctx, snap.ID); err != nil {
		t.Fatalf("active session expired early: %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := svc.View(ctx, snap.ID); !errors.Is(err, ErrSelectionNotFound) {
		t.Fatalf("idle session err = %v, want ErrSelectionNotFound", err)
	}
	if err := svc.Close(snap.ID); !errors.Is(err, ErrSelectionNotFound) {
		t.Fatalf("Close on expired session = %v", err)
	}
}

func TestSelectionServiceViewFollowsWindow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSelections(t, nil)
	now := mustDay(t, "2024-07-01")
	svc.Now = func() time.Time { return now }
	svc.TTL = 0

	snap, _ := svc.Open(ctx, 1)
	if _, _, _, err := svc.Select(ctx, snap.ID, booking.NewRange(mustDay(t, "2024-07-12"), mustDay(t, "2024-07-15"))); err != nil {
		t.Fatalf("Select error: %v", err)
	}

	now = mustDay(t, "2024-07-13")
	snap, err := svc.View(ctx, snap.ID)
	if err != nil {
		t.Fatalf("View error: %v", err)
	}
	if snap.View.Confirmable || !snap.View.Effective.IsEmpty() {
		t.Fatalf("stay that started in the past is still offered: %+v", snap.View)
	}
	if snap.View.Stored.IsEmpty() {
		t.Fatalf("stored selection should remain until cleared")
	}
}
