package order

import (
	"context"

	"github.com/fitreni/coach-scheduler/internal/models"
)

type Repository interface {
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	GetProductsByIDs(
		ctx context.Context,
		studioID uint,
		ids []uint,
	) ([]models.Product, error)

	GetShippingMethod(
		ctx context.Context,
		studioID uint,
		id uint,
	) (*models.ShippingMethod, error)

	GetOrCreateClient(
		ctx context.Context,
		studioID uint,
		name string,
		phone string,
		email string,
		locale string,
	) (*models.Client, error)

	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	GetOrderByPaymentReference(
		ctx context.Context,
		paymentRef string,
	) (*models.Order, error)

	GetOrderForStudio(
		ctx context.Context,
		orderID uint,
		studioID uint,
	) (*models.Order, error)

	UpdateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	ListOrders(
		ctx context.Context,
		studioID uint,
		status string,
	) ([]models.Order, error)

	// DecrementStock fails with a business error when fewer than qty
	// units remain. Untracked stock (-1) always succeeds.
	DecrementStock(
		ctx context.Context,
		productID uint,
		qty int,
	) error

	// RestoreStock hands units back after an aborted checkout. A no-op
	// for untracked stock.
	RestoreStock(
		ctx context.Context,
		productID uint,
		qty int,
	) error
}
