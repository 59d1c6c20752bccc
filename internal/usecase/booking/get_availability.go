package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/domain/schedule"
	"github.com/fitreni/coach-scheduler/internal/httperr"
)

// SlotCache is the snapshot cache for computed availability. A nil
// cache disables caching (tests, degraded mode without redis).
type SlotCache interface {
	Get(ctx context.Context, coachID, serviceID uint, date string) ([]domain.TimeSlot, bool)
	Set(ctx context.Context, coachID, serviceID uint, date string, slots []domain.TimeSlot)
}

type GetAvailability struct {
	repo  domain.Repository
	cache SlotCache
	log   *zap.Logger
}

func NewGetAvailability(repo domain.Repository, cache SlotCache, log *zap.Logger) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache, log: log}
}

// Execute returns the offerable start times for one coach, service and
// date. A day with no configured windows yields an empty list; a fetch
// failure yields an error, never an empty list that looks authoritative.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	dateStr := in.Date.Format("2006-01-02")

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.CoachID, in.ServiceID, dateStr); ok {
			return slots, nil
		}
	}

	service, err := uc.repo.GetService(ctx, in.StudioID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	rows, err := uc.repo.ListWindowsForWeekday(ctx, in.CoachID, weekday)
	if err != nil {
		return nil, err
	}

	windows := windowsFromRows(uc.log, rows)

	candidates := schedule.Candidates(service.DurationMin, windows)
	if len(candidates) == 0 {
		slots := []domain.TimeSlot{}
		if uc.cache != nil {
			uc.cache.Set(ctx, in.CoachID, in.ServiceID, dateStr, slots)
		}
		return slots, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookingRows, err := uc.repo.ListBookingsForDay(ctx, in.CoachID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blockRows, err := uc.repo.ListBlockedRangesForDate(ctx, in.CoachID, dateStr)
	if err != nil {
		return nil, err
	}

	bookings := make([]schedule.Interval, 0, len(bookingRows))
	for _, b := range bookingRows {
		start := b.StartTime.In(in.Date.Location())
		end := b.EndTime.In(in.Date.Location())
		bookings = append(bookings, schedule.Interval{
			Start: start.Hour()*60 + start.Minute(),
			End:   end.Hour()*60 + end.Minute(),
		})
	}

	blocks := blocksFromRows(uc.log, blockRows)

	available := schedule.Filter(candidates, bookings, blocks)

	slots := make([]domain.TimeSlot, 0, len(available))
	for _, s := range available {
		slots = append(slots, domain.TimeSlot{
			Start: schedule.FormatMinutes(s.Start),
			End:   schedule.FormatMinutes(s.End),
		})
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, in.CoachID, in.ServiceID, dateStr, slots)
	}

	return slots, nil
}

