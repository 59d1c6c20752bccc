package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
)

// Selection states. A session starts in NoDateSelected, every Select
// moves it to Loading and then to Ready or Failed. A newer Select
// supersedes an in-flight one.
type State string

const (
	StateNoDateSelected State = "no_date_selected"
	StateLoading        State = "loading"
	StateReady          State = "ready"
	StateFailed         State = "failed"
)

type Result struct {
	State State
	Date  string
	Slots []domain.TimeSlot
	Err   error
}

// fetchTimeout bounds one availability computation so a hung backend
// surfaces Failed instead of leaving the caller in Loading forever.
const fetchTimeout = 5 * time.Second

// Session drives the date-selection flow for one booking widget: it
// recomputes availability whenever the caller selects a date or the
// underlying data is invalidated, and guarantees that only the latest
// selection's result is ever delivered.
type Session struct {
	availability *GetAvailability
	log          *zap.Logger
	timeout      time.Duration

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	selected bool
	current  domain.AvailabilityInput

	results chan Result
	done    chan struct{}
}

func NewSession(
	availability *GetAvailability,
	invalidations <-chan uint,
	log *zap.Logger,
) *Session {
	s := &Session{
		availability: availability,
		log:          log,
		timeout:      fetchTimeout,
		results:      make(chan Result, 8),
		done:         make(chan struct{}),
	}

	if invalidations != nil {
		go s.watch(invalidations)
	}

	return s
}

// Results delivers state transitions in order. The caller renders each
// one; Loading and a later Ready/Failed arrive as separate results.
func (s *Session) Results() <-chan Result {
	return s.results
}

// Select switches the session to the given date, cancelling any
// in-flight computation for a previous selection.
func (s *Session) Select(in domain.AvailabilityInput) {
	s.mu.Lock()

	if s.cancel != nil {
		s.cancel()
	}

	s.seq++
	seq := s.seq
	s.selected = true
	s.current = in

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	s.cancel = cancel

	s.mu.Unlock()

	s.emit(Result{State: StateLoading, Date: in.Date.Format("2006-01-02")})

	go s.compute(ctx, seq, in)
}

// Close stops the session. No results are delivered afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *Session) compute(ctx context.Context, seq uint64, in domain.AvailabilityInput) {
	slots, err := s.availability.Execute(ctx, in)

	s.mu.Lock()
	if seq != s.seq {
		// a newer selection superseded this computation
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	date := in.Date.Format("2006-01-02")

	if err != nil {
		// a failed fetch must stay distinguishable from a day with
		// zero slots
		s.emit(Result{State: StateFailed, Date: date, Err: err})
		return
	}

	s.emit(Result{State: StateReady, Date: date, Slots: slots})
}

// watch re-runs the current selection when its coach's booking or block
// data changes.
func (s *Session) watch(invalidations <-chan uint) {
	for {
		select {
		case <-s.done:
			return
		case coachID, ok := <-invalidations:
			if !ok {
				return
			}

			s.mu.Lock()
			match := s.selected && s.current.CoachID == coachID
			in := s.current
			s.mu.Unlock()

			if match {
				s.Select(in)
			}
		}
	}
}

func (s *Session) emit(r Result) {
	select {
	case <-s.done:
	case s.results <- r:
	default:
		s.log.Warn("session result buffer full, dropping update",
			zap.String("state", string(r.State)),
			zap.String("date", r.Date),
		)
	}
}
