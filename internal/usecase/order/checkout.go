package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitreni/coach-scheduler/internal/audit"
	domain "github.com/fitreni/coach-scheduler/internal/domain/order"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CheckoutItemInput struct {
	ProductID uint
	Quantity  int
}

type CheckoutInput struct {
	StudioID uint

	ClientName   string
	ClientPhone  string
	ClientEmail  string
	ClientLocale string

	Items            []CheckoutItemInput
	ShippingMethodID *uint
	ShippingAddress  string
}

type CheckoutOutput struct {
	Order        *models.Order `json:"order"`
	PaymentURL   string        `json:"payment_url"`
	PaymentRefID string        `json:"payment_reference"`
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo    domain.Repository
	payment domain.PaymentProvider
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewCheckout(
	repo domain.Repository,
	payment domain.PaymentProvider,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Checkout {
	return &Checkout{
		repo:    repo,
		payment: payment,
		audit:   audit,
		log:     log,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*CheckoutOutput, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	if _, err := uc.repo.GetStudioByID(ctx, in.StudioID); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.ProductID)
	}

	products, err := uc.repo.GetProductsByIDs(ctx, in.StudioID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]domain.Line, 0, len(in.Items))
	orderItems := make([]models.OrderItem, 0, len(in.Items))
	paymentItems := make([]domain.PaymentItem, 0, len(in.Items))

	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok || !p.Active {
			return nil, httperr.ErrBusiness("product_not_found")
		}

		lines = append(lines, domain.Line{
			Kind:        p.Kind,
			UnitPrice:   p.Price,
			Quantity:    it.Quantity,
			WeightGrams: p.WeightGrams,
		})
		orderItems = append(orderItems, models.OrderItem{
			ProductID: p.ID,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
		})
		paymentItems = append(paymentItems, domain.PaymentItem{
			Title:     p.Name,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
		})
	}

	var method *models.ShippingMethod
	if domain.RequiresShipping(lines) {
		if in.ShippingMethodID == nil {
			return nil, httperr.ErrBusiness("shipping_method_required")
		}
		if in.ShippingAddress == "" {
			return nil, httperr.ErrBusiness("shipping_address_required")
		}

		method, err = uc.repo.GetShippingMethod(ctx, in.StudioID, *in.ShippingMethodID)
		if err != nil {
			return nil, httperr.ErrBusiness("shipping_method_not_found")
		}
	}

	totals, err := domain.Compute(lines, method)
	if err != nil {
		return nil, err
	}

	// every unit reserved below must be handed back if the checkout
	// aborts before the order row exists
	decremented := make([]CheckoutItemInput, 0, len(in.Items))
	restore := func() {
		for _, it := range decremented {
			if err := uc.repo.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
				uc.log.Error("stock restore failed after aborted checkout",
					zap.Uint("product_id", it.ProductID),
					zap.Int("quantity", it.Quantity),
					zap.Error(err),
				)
			}
		}
	}

	for _, it := range in.Items {
		if err := uc.repo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			restore()
			return nil, err
		}
		decremented = append(decremented, it)
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.StudioID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
		in.ClientLocale,
	)
	if err != nil {
		restore()
		return nil, err
	}

	o := &models.Order{
		StudioID:         in.StudioID,
		ClientID:         client.ID,
		ReferenceCode:    uuid.NewString(),
		Items:            orderItems,
		ShippingMethodID: in.ShippingMethodID,
		ShippingAddress:  in.ShippingAddress,
		Subtotal:         totals.Subtotal,
		ShippingFee:      totals.ShippingFee,
		Total:            totals.Total,
		Status:           models.OrderStatusPending,
	}

	if uc.payment == nil {
		restore()
		return nil, httperr.ErrBusiness("payment_unavailable")
	}

	intent, err := uc.payment.CreateCheckout(ctx, o.ReferenceCode, paymentItems, totals.ShippingFee)
	if err != nil {
		restore()
		return nil, httperr.ErrBusiness("payment_unavailable")
	}
	o.PaymentReference = intent.ID

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		restore()
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return &CheckoutOutput{
		Order:        o,
		PaymentURL:   intent.InitPoint,
		PaymentRefID: intent.ID,
	}, nil
}
