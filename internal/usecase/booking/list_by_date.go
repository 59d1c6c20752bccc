package booking

import (
	"context"
	"time"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/dto"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	coachID uint,
	studioID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	shop, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		coachID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Status:        b.Status,
			ReferenceCode: b.ReferenceCode,
			ClientName:    b.Client.Name,
			ServiceName:   b.Service.Name,
		})
	}

	return out, nil
}
