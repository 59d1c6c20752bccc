package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/httpresp"
	"github.com/fitreni/coach-scheduler/internal/middleware"
	usecase "github.com/fitreni/coach-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *usecase.CreateBooking
	cancel   *usecase.CancelBooking
	complete *usecase.CompleteBooking
	byDate   *usecase.ListBookingsByDate
	byMonth  *usecase.ListBookingsByMonth
}

func NewBookingHandler(
	create *usecase.CreateBooking,
	cancel *usecase.CancelBooking,
	complete *usecase.CompleteBooking,
	byDate *usecase.ListBookingsByDate,
	byMonth *usecase.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		cancel:   cancel,
		complete: complete,
		byDate:   byDate,
		byMonth:  byMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextCoachID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		StudioID:    studioID,
		CoachID:     coachID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LISTS
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextCoachID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query param 'date' is required.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	items, err := h.byDate.Execute(c.Request.Context(), coachID, studioID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextCoachID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Query param 'year' is invalid.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Query param 'month' is invalid.")
		return
	}

	items, err := h.byMonth.Execute(c.Request.Context(), coachID, studioID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// STATE TRANSITIONS
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextCoachID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), studioID, coachID, uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextCoachID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), studioID, coachID, uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// writeBookingError maps business errors to 4xx and everything
// else to a generic 500.
func writeBookingError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Code {
		case "booking_not_found", "service_not_found":
			httperr.NotFound(c, be.Code, "Not found.")
		case "time_conflict":
			httperr.Conflict(c, be.Code, "The selected time is already taken.")
		default:
			httperr.BadRequest(c, be.Code, "Invalid request.")
		}
		return
	}
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
