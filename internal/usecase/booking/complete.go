package booking

import (
	"context"

	"github.com/fitreni/coach-scheduler/internal/audit"
	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
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
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		CoachID:  &coachID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
