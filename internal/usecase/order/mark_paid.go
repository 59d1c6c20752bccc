package order

import (
	"context"

	"github.com/fitreni/coach-scheduler/internal/audit"
	domain "github.com/fitreni/coach-scheduler/internal/domain/order"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

// MarkPaid flips a pending order to paid when the processor's webhook
// confirms the payment. Capture happened on the processor's side;
// this is only bookkeeping, and it is idempotent because webhooks
// get redelivered.
type MarkPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkPaid) Execute(
	ctx context.Context,
	paymentRef string,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderByPaymentReference(ctx, paymentRef)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if o.Status == models.OrderStatusPaid || o.Status == models.OrderStatusShipped {
		return o, nil
	}
	if o.Status != models.OrderStatusPending {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	shop, err := uc.repo.GetStudioByID(ctx, o.StudioID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	o.Status = models.OrderStatusPaid
	o.PaidAt = &now

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: o.StudioID,
		Action:   "order_paid",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
