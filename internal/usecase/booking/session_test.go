package booking

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fitreni/coach-scheduler/internal/models"
)

func recvResult(t *testing.T, s *Session) Result {
	t.Helper()
	select {
	case r := <-s.Results():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a session result")
		return Result{}
	}
}

func assertNoResult(t *testing.T, s *Session) {
	t.Helper()
	select {
	case r := <-s.Results():
		t.Fatalf("unexpected result %+v", r)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSessionSelectDeliversLoadingThenReady(t *testing.T) {
	repo := &stubRepo{
		service: &models.Service{ID: 3, DurationMin: 30},
		windows: []models.AvailabilityWindow{window(1, "09:00", "10:00")},
	}

	s := NewSession(newAvailability(repo, nil), nil, zap.NewNop())
	defer s.Close()

	s.Select(availabilityInput())

	r := recvResult(t, s)
	if r.State != StateLoading {
		t.Fatalf("first result is %s, want loading", r.State)
	}
	if r.Date != "2026-03-02" {
		t.Fatalf("loading date %s, want 2026-03-02", r.Date)
	}

	r = recvResult(t, s)
	if r.State != StateReady {
		t.Fatalf("second result is %s, want ready", r.State)
	}
	if len(r.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(r.Slots))
	}
}

func TestSessionFailedStaysDistinguishableFromEmpty(t *testing.T) {
	repo := &stubRepo{
		service:    &models.Service{ID: 3, DurationMin: 30},
		windowsErr: errors.New("backend down"),
	}

	s := NewSession(newAvailability(repo, nil), nil, zap.NewNop())
	defer s.Close()

	s.Select(availabilityInput())

	if r := recvResult(t, s); r.State != StateLoading {
		t.Fatalf("first result is %s, want loading", r.State)
	}

	r := recvResult(t, s)
	if r.State != StateFailed {
		t.Fatalf("got %s, want failed", r.State)
	}
	if r.Err == nil {
		t.Fatal("failed result must carry the error")
	}
	if r.Slots != nil {
		t.Fatalf("failed result must not carry slots, got %v", r.Slots)
	}
}

func TestSessionLastSelectionWins(t *testing.T) {
	gate := make(chan struct{})
	repo := &stubRepo{
		service:            &models.Service{ID: 3, DurationMin: 30},
		windows:            []models.AvailabilityWindow{window(1, "09:00", "10:00")},
		windowsGate:        gate,
		windowsGateWeekday: 1, // blocks the Monday fetch only
	}

	s := NewSession(newAvailability(repo, nil), nil, zap.NewNop())
	defer s.Close()

	first := availabilityInput() // Monday, will hang on the gate
	s.Select(first)

	if r := recvResult(t, s); r.State != StateLoading {
		t.Fatalf("first result is %s, want loading", r.State)
	}

	second := first
	second.Date = testDate.AddDate(0, 0, 1) // Tuesday
	s.Select(second)

	if r := recvResult(t, s); r.State != StateLoading {
		t.Fatalf("third result is %s, want loading", r.State)
	}

	r := recvResult(t, s)
	if r.State != StateReady {
		t.Fatalf("got %s, want ready", r.State)
	}
	if r.Date != "2026-03-03" {
		t.Fatalf("ready result is for %s, want the newer selection 2026-03-03", r.Date)
	}

	// releasing the stale computation must not surface anything:
	// its context was cancelled and its sequence superseded
	close(gate)
	assertNoResult(t, s)
}

func TestSessionInvalidationRecomputes(t *testing.T) {
	repo := &stubRepo{
		service: &models.Service{ID: 3, DurationMin: 30},
		windows: []models.AvailabilityWindow{window(1, "09:00", "10:00")},
	}

	invalidations := make(chan uint, 1)
	s := NewSession(newAvailability(repo, nil), invalidations, zap.NewNop())
	defer s.Close()

	in := availabilityInput()
	s.Select(in)
	recvResult(t, s) // loading
	recvResult(t, s) // ready

	// another coach's change is not our business
	invalidations <- in.CoachID + 1
	assertNoResult(t, s)

	invalidations <- in.CoachID
	if r := recvResult(t, s); r.State != StateLoading {
		t.Fatalf("invalidation should re-select, got %s", r.State)
	}
	if r := recvResult(t, s); r.State != StateReady {
		t.Fatalf("recompute should land in ready, got %s", r.State)
	}
}

func TestSessionInvalidationBeforeSelectionIsIgnored(t *testing.T) {
	repo := &stubRepo{
		service: &models.Service{ID: 3, DurationMin: 30},
		windows: []models.AvailabilityWindow{window(1, "09:00", "10:00")},
	}

	invalidations := make(chan uint, 1)
	s := NewSession(newAvailability(repo, nil), invalidations, zap.NewNop())
	defer s.Close()

	invalidations <- 7
	assertNoResult(t, s)
}
