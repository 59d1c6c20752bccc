package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
	ucBooking "github.com/fitreni/coach-scheduler/internal/usecase/booking"
	ucOrder "github.com/fitreni/coach-scheduler/internal/usecase/order"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db            *gorm.DB
	availability  *ucBooking.GetAvailability
	createBooking *ucBooking.CreateBooking
	checkout      *ucOrder.Checkout
	markPaid      *ucOrder.MarkPaid
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucBooking.GetAvailability,
	createBooking *ucBooking.CreateBooking,
	checkout *ucOrder.Checkout,
	markPaid *ucOrder.MarkPaid,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		availability:  availability,
		createBooking: createBooking,
		checkout:      checkout,
		markPaid:      markPaid,
	}
}

func (h *PublicHandler) studioBySlug(c *gin.Context) (*models.Studio, bool) {
	slug := c.Param("slug")

	var shop models.Studio
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Studio not found.")
		return nil, false
	}
	return &shop, true
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName   string `json:"client_name" binding:"required"`
	ClientPhone  string `json:"client_phone" binding:"required"`
	ClientEmail  string `json:"client_email"`
	ClientLocale string `json:"client_locale"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
	Notes        string `json:"notes"`
}

type PublicCheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PublicCheckoutRequest struct {
	ClientName   string `json:"client_name" binding:"required"`
	ClientPhone  string `json:"client_phone" binding:"required"`
	ClientEmail  string `json:"client_email"`
	ClientLocale string `json:"client_locale"`

	Items            []PublicCheckoutItem `json:"items" binding:"required,min=1"`
	ShippingMethodID *uint                `json:"shipping_method_id"`
	ShippingAddress  string               `json:"shipping_address"`
}

type PaymentWebhookRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
	Status           string `json:"status"`
}

////////////////////////////////////////////////////////
// CONTENT
////////////////////////////////////////////////////////

func (h *PublicHandler) GetContent(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	locale := c.Query("locale")
	switch locale {
	case "hu", "en", "es":
	case "":
		locale = shop.DefaultLocale
	default:
		httperr.BadRequest(c, "invalid_locale", "Unsupported locale.")
		return
	}

	var blocks []models.ContentBlock
	if err := h.db.
		Where("studio_id = ? AND locale = ?", shop.ID, locale).
		Order("key ASC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_load_content", "Failed to load content.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"studio":  shop,
		"locale":  locale,
		"content": blocks,
	})
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("studio_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"studio":   shop,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Query params 'date' and 'service_id' are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var coach models.Coach
	if err := h.db.
		Where("studio_id = ? AND role = ?", shop.ID, "owner").
		First(&coach).Error; err != nil {
		httperr.BadRequest(c, "coach_not_found", "Coach not found.")
		return
	}

	date, err := timezone.ParseDate(shop.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		StudioID:  shop.ID,
		CoachID:   coach.ID,
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, "Invalid request.")
			return
		}
		httperr.Internal(c, "failed_to_load_availability", "Failed to load availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var coach models.Coach
	if err := h.db.
		Where("studio_id = ? AND role = ?", shop.ID, "owner").
		First(&coach).Error; err != nil {
		httperr.BadRequest(c, "coach_not_found", "Coach not found.")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StudioID:     shop.ID,
		CoachID:      coach.ID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ClientLocale: req.ClientLocale,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference_code": b.ReferenceCode,
		"start_time":     b.StartTime,
		"end_time":       b.EndTime,
		"status":         b.Status,
	})
}

////////////////////////////////////////////////////////
// STORE
////////////////////////////////////////////////////////

func (h *PublicHandler) ListProducts(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := h.db.
		Where("studio_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Failed to list products.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *PublicHandler) ListShippingMethods(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var methods []models.ShippingMethod
	if err := h.db.
		Where("studio_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&methods).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shipping_methods", "Failed to list shipping methods.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipping_methods": methods})
}

func (h *PublicHandler) Checkout(c *gin.Context) {
	shop, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var req PublicCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	items := make([]ucOrder.CheckoutItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ucOrder.CheckoutItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.checkout.Execute(c.Request.Context(), ucOrder.CheckoutInput{
		StudioID:         shop.ID,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ClientEmail:      req.ClientEmail,
		ClientLocale:     req.ClientLocale,
		Items:            items,
		ShippingMethodID: req.ShippingMethodID,
		ShippingAddress:  req.ShippingAddress,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			switch be.Code {
			case "product_not_found", "shipping_method_not_found":
				httperr.NotFound(c, be.Code, "Not found.")
			case "out_of_stock":
				httperr.Conflict(c, be.Code, "Not enough stock.")
			default:
				httperr.BadRequest(c, be.Code, "Invalid request.")
			}
			return
		}
		httperr.Internal(c, "checkout_failed", "Checkout failed.")
		return
	}

	c.JSON(http.StatusCreated, out)
}

// PaymentWebhook is called by the payment processor once a checkout
// is paid. It only flips order status; money never moves here.
func (h *PublicHandler) PaymentWebhook(c *gin.Context) {
	if _, ok := h.studioBySlug(c); !ok {
		return
	}

	var req PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	o, err := h.markPaid.Execute(c.Request.Context(), req.PaymentReference)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			if be.Code == "order_not_found" {
				httperr.NotFound(c, be.Code, "Order not found.")
				return
			}
			httperr.BadRequest(c, be.Code, "Invalid state transition.")
			return
		}
		httperr.Internal(c, "failed_to_mark_paid", "Failed to update order.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference_code": o.ReferenceCode,
		"status":         o.Status,
	})
}
