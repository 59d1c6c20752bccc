package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
	usecase "github.com/fitreni/coach-scheduler/internal/usecase/order"
)

type OrderHandler struct {
	db   *gorm.DB
	ship *usecase.ShipOrder
}

func NewOrderHandler(db *gorm.DB, ship *usecase.ShipOrder) *OrderHandler {
	return &OrderHandler{db: db, ship: ship}
}

func (h *OrderHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	status := strings.TrimSpace(c.Query("status"))

	q := h.db.Where("studio_id = ?", studioID)

	switch status {
	case models.OrderStatusPending,
		models.OrderStatusPaid,
		models.OrderStatusShipped,
		models.OrderStatusCancelled:
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	var order models.Order
	if err := h.db.
		Preload("Items").
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Ship(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextCoachID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	o, err := h.ship.Execute(c.Request.Context(), studioID, coachID, uint(id))
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			if be.Code == "order_not_found" {
				httperr.NotFound(c, be.Code, "Order not found.")
				return
			}
			httperr.BadRequest(c, be.Code, "Invalid state transition.")
			return
		}
		httperr.Internal(c, "failed_to_ship_order", "Failed to ship order.")
		return
	}

	c.JSON(http.StatusOK, o)
}
