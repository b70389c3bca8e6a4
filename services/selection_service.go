package services

import (
	"context"
	"sync"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CabinSource is what the selection flow needs to know about a cabin.
type CabinSource interface {
	GetByID(ctx context.Context, id uint) (*models.Cabin, error)
	BookedDates(ctx context.Context, cabinID uint, today time.Time) ([]time.Time, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (models.Setting, error)
}

// SelectionSnapshot is one session's state as the page should render it.
type SelectionSnapshot struct {
	ID      string
	CabinID uint
	Pending bool
	View    booking.View
	Cabin   models.Cabin
	Setting models.Setting
}

type selectionEntry struct {
	mu       sync.Mutex
	id       string
	cabinID  uint
	session  *booking.Session
	lastSeen time.Time
	// warnings fired by the most recent gesture; read once by the caller
	warnings []booking.Verdict
}

func (e *selectionEntry) SelectionRejected(v booking.Verdict) {
	e.warnings = append(e.warnings, v)
	zap.L().Info("selection rejected",
		zap.String("selection_id", e.id),
		zap.Uint("cabin_id", e.cabinID),
		zap.String("verdict", v.Kind.String()),
	)
}

// SelectionService keeps one date selection per open cabin booking page. Sessions
// live in memory only and expire after TTL without activity.
type SelectionService struct {
	Cabins      CabinSource
	Settings    SettingsSource
	TTL         time.Duration
	WindowYears int
	Now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*selectionEntry
}

func NewSelectionService(cabins CabinSource, settings SettingsSource, ttl time.Duration, windowYears int) *SelectionService {
	return &SelectionService{
		Cabins:      cabins,
		Settings:    settings,
		TTL:         ttl,
		WindowYears: windowYears,
		Now:         time.Now,
		sessions:    make(map[string]*selectionEntry),
	}
}

func (s *SelectionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SelectionService) window() booking.Window {
	years := s.WindowYears
	if years <= 0 {
		years = booking.DefaultWindowYears
	}
	return booking.NewWindow(s.now(), years)
}

// Open starts a session on a cabin's booking page.
func (s *SelectionService) Open(ctx context.Context, cabinID uint) (SelectionSnapshot, error) {
	if _, err := s.Cabins.GetByID(ctx, cabinID); err != nil {
		return SelectionSnapshot{}, err
	}

	e := &selectionEntry{
		id:       uuid.NewString(),
		cabinID:  cabinID,
		lastSeen: s.now(),
	}
	e.session = booking.NewSession(e)

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[string]*selectionEntry)
	}
	s.sweepLocked(e.lastSeen)
	s.sessions[e.id] = e
	s.mu.Unlock()

	zap.L().Debug("selection opened", zap.String("selection_id", e.id), zap.Uint("cabin_id", cabinID))

	e.mu.Lock()
	defer e.mu.Unlock()
	return s.snapshot(ctx, e)
}

// Select applies a date gesture. The returned verdict carries the rejection, if any;
// warning is the guest-facing message and is non-empty only for this gesture.
func (s *SelectionService) Select(ctx context.Context, id string, candidate booking.Range) (booking.Verdict, string, SelectionSnapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return booking.Verdict{}, "", SelectionSnapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	setting, err := s.Settings.Get(ctx)
	if err != nil {
		return booking.Verdict{}, "", SelectionSnapshot{}, err
	}
	booked, err := s.Cabins.BookedDates(ctx, e.cabinID, s.now())
	if err != nil {
		return booking.Verdict{}, "", SelectionSnapshot{}, err
	}

	e.warnings = e.warnings[:0]
	v := e.session.Select(candidate, booked, setting.StayPolicy(), s.window())
	warning := ""
	if len(e.warnings) > 0 {
		warning = e.warnings[0].Message()
	}
	e.warnings = e.warnings[:0]

	snap, err := s.snapshot(ctx, e)
	return v, warning, snap, err
}

// Clear is the page's "Clear" button.
func (s *SelectionService) Clear(ctx context.Context, id string) (SelectionSnapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.Clear()
	return s.snapshot(ctx, e)
}

// View re-reads booked days and settings and renders the session.
func (s *SelectionService) View(ctx context.Context, id string) (SelectionSnapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.snapshot(ctx, e)
}

// Close ends a session: the guest left the page or completed a reservation.
func (s *SelectionService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSelectionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// BeginSubmit raises the session's pending flag and hands back what a reservation
// needs. It fails with ErrSubmissionPending while another submission runs.
func (s *SelectionService) BeginSubmit(id string) (uint, booking.Range, error) {
	e, err := s.lookup(id)
	if err != nil {
		return 0, booking.Range{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.session.BeginSubmit() {
		return 0, booking.Range{}, ErrSubmissionPending
	}
	return e.cabinID, e.session.CurrentRange(), nil
}

// EndSubmit lowers the pending flag. A completed reservation ends the session.
func (s *SelectionService) EndSubmit(id string, completed bool) {
	if completed {
		_ = s.Close(id)
		return
	}
	e, err := s.lookup(id)
	if err != nil {
		return
	}
	e.mu.Lock()
	e.session.EndSubmit()
	e.mu.Unlock()
}

// Len is the number of live sessions.
func (s *SelectionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

func (s *SelectionService) lookup(id string) (*selectionEntry, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSelectionNotFound
	}
	e.lastSeen = now
	return e, nil
}

// sweepLocked drops idle sessions. Sessions with a submission in flight are kept.
func (s *SelectionService) sweepLocked(now time.Time) {
	if s.TTL <= 0 {
		return
	}
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) <= s.TTL {
			continue
		}
		if e.mu.TryLock() {
			pending := e.session.Pending()
			e.mu.Unlock()
			if pending {
				continue
			}
			delete(s.sessions, id)
		}
	}
}

// snapshot must be called with e.mu held.
func (s *SelectionService) snapshot(ctx context.Context, e *selectionEntry) (SelectionSnapshot, error) {
	cabin, err := s.Cabins.GetByID(ctx, e.cabinID)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	setting, err := s.Settings.Get(ctx)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	booked, err := s.Cabins.BookedDates(ctx, e.cabinID, s.now())
	if err != nil {
		return SelectionSnapshot{}, err
	}

	return SelectionSnapshot{
		ID:      e.id,
		CabinID: e.cabinID,
		Pending: e.session.Pending(),
		View:    e.session.View(booked, cabin.Pricing(), setting.StayPolicy(), s.window()),
		Cabin:   *cabin,
		Setting: setting,
	}, nil
}
