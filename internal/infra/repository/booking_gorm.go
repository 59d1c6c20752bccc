package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *BookingGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var shop models.Studio
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	studioID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", serviceID, studioID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	studioID uint,
	name string,
	phone string,
	email string,
	locale string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("studio_id = ? AND phone = ?", studioID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		StudioID: studioID,
		Name:     name,
		Phone:    phone,
		Email:    email,
		Locale:   locale,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	coachID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"coach_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			coachID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Booking (Cancel / Complete)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForCoach(
	ctx context.Context,
	bookingID uint,
	coachID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND coach_id = ?", bookingID, coachID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability inputs
// --------------------------------------------------

func (r *BookingGormRepository) ListWindowsForWeekday(
	ctx context.Context,
	coachID uint,
	weekday int,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("coach_id = ? AND weekday = ? AND active = true", coachID, weekday).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	coachID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"coach_id = ? AND status = 'scheduled' AND start_time >= ? AND start_time < ?",
			coachID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBlockedRangesForDate(
	ctx context.Context,
	coachID uint,
	date string,
) ([]models.BlockedRange, error) {

	var blocks []models.BlockedRange
	if err := r.db.WithContext(ctx).
		Where("coach_id = ? AND date = ?", coachID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	coachID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"coach_id = ? AND start_time >= ? AND start_time < ?",
			coachID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
