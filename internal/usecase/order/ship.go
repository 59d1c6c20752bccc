package order

import (
	"context"

	"github.com/fitreni/coach-scheduler/internal/audit"
	domain "github.com/fitreni/coach-scheduler/internal/domain/order"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

type ShipOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewShipOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ShipOrder {
	return &ShipOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ShipOrder) Execute(
	ctx context.Context,
	studioID uint,
	coachID uint,
	orderID uint,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderForStudio(ctx, orderID, studioID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if o.Status != models.OrderStatusPaid {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	shop, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	o.Status = models.OrderStatusShipped
	o.ShippedAt = &now

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		CoachID:  &coachID,
		Action:   "order_shipped",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
