package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/models"
)

// stubRepo satisfies the repository port with canned data so use cases
// can be exercised without a database.
type stubRepo struct {
	studio  *models.Studio
	service *models.Service
	client  *models.Client

	windows    []models.AvailabilityWindow
	windowsErr error

	bookings    []models.Booking
	bookingsErr error

	blocks    []models.BlockedRange
	blocksErr error

	conflictErr error
	createErr   error

	created *models.Booking

	// windowsGate, when set, blocks ListWindowsForWeekday for the
	// given weekday until the channel is closed.
	windowsGate        chan struct{}
	windowsGateWeekday int
}

func (r *stubRepo) GetStudioByID(ctx context.Context, id uint) (*models.Studio, error) {
	if r.studio == nil {
		return nil, errors.New("studio not found")
	}
	return r.studio, nil
}

func (r *stubRepo) GetService(ctx context.Context, studioID, serviceID uint) (*models.Service, error) {
	if r.service == nil {
		return nil, errors.New("service not found")
	}
	return r.service, nil
}

func (r *stubRepo) GetOrCreateClient(ctx context.Context, studioID uint, name, phone, email, locale string) (*models.Client, error) {
	if r.client != nil {
		return r.client, nil
	}
	return &models.Client{ID: 1, StudioID: studioID, Name: name, Phone: phone}, nil
}

func (r *stubRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = 1
	r.created = b
	return nil
}

func (r *stubRepo) AssertNoTimeConflict(ctx context.Context, coachID uint, start, end time.Time) error {
	return r.conflictErr
}

func (r *stubRepo) GetBookingForCoach(ctx context.Context, bookingID, coachID uint) (*models.Booking, error) {
	if r.created == nil {
		return nil, errors.New("booking not found")
	}
	return r.created, nil
}

func (r *stubRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	r.created = b
	return nil
}

func (r *stubRepo) ListWindowsForWeekday(ctx context.Context, coachID uint, weekday int) ([]models.AvailabilityWindow, error) {
	if r.windowsGate != nil && weekday == r.windowsGateWeekday {
		select {
		case <-r.windowsGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.windowsErr != nil {
		return nil, r.windowsErr
	}
	return r.windows, nil
}

func (r *stubRepo) ListBookingsForDay(ctx context.Context, coachID uint, start, end time.Time) ([]models.Booking, error) {
	if r.bookingsErr != nil {
		return nil, r.bookingsErr
	}
	return r.bookings, nil
}

func (r *stubRepo) ListBlockedRangesForDate(ctx context.Context, coachID uint, date string) ([]models.BlockedRange, error) {
	if r.blocksErr != nil {
		return nil, r.blocksErr
	}
	return r.blocks, nil
}

func (r *stubRepo) ListBookingsForPeriod(ctx context.Context, coachID uint, start, end time.Time) ([]models.Booking, error) {
	return r.bookings, nil
}

type stubPublisher struct {
	published []uint
}

func (p *stubPublisher) Publish(ctx context.Context, coachID uint) {
	p.published = append(p.published, coachID)
}

type stubCache struct {
	hit   []domain.TimeSlot
	hitOK bool
	sets  map[string][]domain.TimeSlot
}

func (c *stubCache) Get(ctx context.Context, coachID, serviceID uint, date string) ([]domain.TimeSlot, bool) {
	return c.hit, c.hitOK
}

func (c *stubCache) Set(ctx context.Context, coachID, serviceID uint, date string, slots []domain.TimeSlot) {
	if c.sets == nil {
		c.sets = make(map[string][]domain.TimeSlot)
	}
	c.sets[date] = slots
}

func window(weekday int, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		Weekday:   weekday,
		Active:    true,
		StartTime: start,
		EndTime:   end,
	}
}
