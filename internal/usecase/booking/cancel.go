package booking

import (
	"context"

	"github.com/fitreni/coach-scheduler/internal/audit"
	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	invalidate InvalidationPublisher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	invalidate InvalidationPublisher,
) *CancelBooking {
	return &CancelBooking{
		repo:       repo,
		audit:      audit,
		invalidate: invalidate,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	studioID uint,
	coachID uint,
	bookingID uint,
) (*models.Booking, error) {

	shop, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForCoach(ctx, bookingID, coachID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// a cancelled booking frees its slot
	if uc.invalidate != nil {
		uc.invalidate.Publish(ctx, coachID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		CoachID:  &coachID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
