package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitreni/coach-scheduler/internal/audit"
	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/domain/schedule"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

// InvalidationPublisher signals "availability data changed for this
// coach" to whoever recomputes slots. A nil publisher is a no-op.
type InvalidationPublisher interface {
	Publish(ctx context.Context, coachID uint)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StudioID uint
	CoachID  uint

	ClientName   string
	ClientPhone  string
	ClientEmail  string
	ClientLocale string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	invalidate InvalidationPublisher
	log        *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	invalidate InvalidationPublisher,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		audit:      audit,
		invalidate: invalidate,
		log:        log,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	shop, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, err
	}

	start, err := timezone.ParseDateTime(shop.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.StudioID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	if err := uc.assertBookable(ctx, in.CoachID, start, end); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.StudioID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
		in.ClientLocale,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.CoachID, start, end); err != nil {
		return nil, err
	}

	b := &models.Booking{
		StudioID:      in.StudioID,
		CoachID:       in.CoachID,
		ClientID:      client.ID,
		ServiceID:     service.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        string(domain.StatusScheduled),
		ReferenceCode: uuid.NewString(),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.invalidate != nil {
		uc.invalidate.Publish(ctx, in.CoachID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// assertBookable checks the requested interval against the coach's
// weekly windows and the date's blocked ranges: the slot must lie fully
// inside one window and clear of every block.
func (uc *CreateBooking) assertBookable(
	ctx context.Context,
	coachID uint,
	start time.Time,
	end time.Time,
) error {

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()

	rows, err := uc.repo.ListWindowsForWeekday(ctx, coachID, int(start.Weekday()))
	if err != nil {
		return err
	}

	inside := false
	for _, w := range windowsFromRows(uc.log, rows) {
		if startMin >= w.Start && endMin <= w.End {
			inside = true
			break
		}
	}
	if !inside {
		return httperr.ErrBusiness("outside_availability")
	}

	blockRows, err := uc.repo.ListBlockedRangesForDate(
		ctx,
		coachID,
		start.Format("2006-01-02"),
	)
	if err != nil {
		return err
	}

	for _, b := range blocksFromRows(uc.log, blockRows) {
		if b.AllDay || schedule.Overlaps(startMin, endMin, b.Start, b.End) {
			return httperr.ErrBusiness("time_blocked")
		}
	}

	return nil
}
