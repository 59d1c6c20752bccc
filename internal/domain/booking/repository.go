package booking

import (
	"context"
	"time"

	"github.com/fitreni/coach-scheduler/internal/models"
)

type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		studioID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		studioID uint,
		name string,
		phone string,
		email string,
		locale string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		coachID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Booking (state change) --------
	GetBookingForCoach(
		ctx context.Context,
		bookingID uint,
		coachID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability inputs --------
	ListWindowsForWeekday(
		ctx context.Context,
		coachID uint,
		weekday int,
	) ([]models.AvailabilityWindow, error)

	ListBookingsForDay(
		ctx context.Context,
		coachID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBlockedRangesForDate(
		ctx context.Context,
		coachID uint,
		date string,
	) ([]models.BlockedRange, error)

	// -------- Listings --------
	ListBookingsForPeriod(
		ctx context.Context,
		coachID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
