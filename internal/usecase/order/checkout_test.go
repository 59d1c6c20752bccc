package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/fitreni/coach-scheduler/internal/domain/order"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type stubOrderRepo struct {
	studio   *models.Studio
	products []models.Product
	method   *models.ShippingMethod

	created *models.Order
	updated *models.Order
	order   *models.Order

	stockErr    error
	stockErrFor uint
	decremented map[uint]int
	restored    map[uint]int
}

func (r *stubOrderRepo) GetStudioByID(ctx context.Context, id uint) (*models.Studio, error) {
	if r.studio == nil {
		return nil, errors.New("studio not found")
	}
	return r.studio, nil
}

func (r *stubOrderRepo) GetProductsByIDs(ctx context.Context, studioID uint, ids []uint) ([]models.Product, error) {
	return r.products, nil
}

func (r *stubOrderRepo) GetShippingMethod(ctx context.Context, studioID, id uint) (*models.ShippingMethod, error) {
	if r.method == nil {
		return nil, errors.New("shipping method not found")
	}
	return r.method, nil
}

func (r *stubOrderRepo) GetOrCreateClient(ctx context.Context, studioID uint, name, phone, email, locale string) (*models.Client, error) {
	return &models.Client{ID: 1, StudioID: studioID, Name: name, Phone: phone}, nil
}

func (r *stubOrderRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	o.ID = 1
	r.created = o
	return nil
}

func (r *stubOrderRepo) GetOrderByPaymentReference(ctx context.Context, paymentRef string) (*models.Order, error) {
	if r.order == nil {
		return nil, errors.New("order not found")
	}
	return r.order, nil
}

func (r *stubOrderRepo) GetOrderForStudio(ctx context.Context, orderID, studioID uint) (*models.Order, error) {
	if r.order == nil {
		return nil, errors.New("order not found")
	}
	return r.order, nil
}

func (r *stubOrderRepo) UpdateOrder(ctx context.Context, o *models.Order) error {
	r.updated = o
	return nil
}

func (r *stubOrderRepo) ListOrders(ctx context.Context, studioID uint, status string) ([]models.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) DecrementStock(ctx context.Context, productID uint, qty int) error {
	if r.stockErr != nil {
		return r.stockErr
	}
	if r.stockErrFor != 0 && productID == r.stockErrFor {
		return httperr.ErrBusiness("out_of_stock")
	}
	if r.decremented == nil {
		r.decremented = make(map[uint]int)
	}
	r.decremented[productID] += qty
	return nil
}

func (r *stubOrderRepo) RestoreStock(ctx context.Context, productID uint, qty int) error {
	if r.restored == nil {
		r.restored = make(map[uint]int)
	}
	r.restored[productID] += qty
	return nil
}

type stubPayment struct {
	err   error
	calls int
}

func (p *stubPayment) CreateCheckout(ctx context.Context, referenceCode string, items []domain.PaymentItem, shippingFee float64) (*domain.PaymentIntent, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &domain.PaymentIntent{ID: "pref-123", InitPoint: "https://pay.example/pref-123"}, nil
}

func checkoutRepo() *stubOrderRepo {
	return &stubOrderRepo{
		studio: &models.Studio{ID: 1, Timezone: "UTC"},
		products: []models.Product{
			{ID: 10, StudioID: 1, Name: "Meal plan", Kind: models.ProductKindDigital, Price: 30, Stock: -1, Active: true},
			{ID: 11, StudioID: 1, Name: "Resistance band", Kind: models.ProductKindPhysical, Price: 15, WeightGrams: 400, Stock: 5, Active: true},
		},
		method: &models.ShippingMethod{ID: 2, StudioID: 1, Name: "Courier", Fee: 8, Active: true},
	}
}

func TestCheckoutDigitalOnly(t *testing.T) {
	repo := checkoutRepo()
	pay := &stubPayment{}
	uc := NewCheckout(repo, pay, nil, zap.NewNop())

	out, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:    1,
		ClientName:  "Nagy Petra",
		ClientPhone: "+36301112233",
		Items:       []CheckoutItemInput{{ProductID: 10, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Order.Total != 30 {
		t.Errorf("total %v, want 30", out.Order.Total)
	}
	if out.Order.ShippingFee != 0 {
		t.Errorf("digital cart has shipping fee %v", out.Order.ShippingFee)
	}
	if out.PaymentURL == "" || out.Order.PaymentReference != "pref-123" {
		t.Error("payment preference was not attached to the order")
	}
	if repo.created == nil {
		t.Fatal("order was not persisted")
	}
}

func TestCheckoutPhysicalRequiresShippingMethod(t *testing.T) {
	uc := NewCheckout(checkoutRepo(), &stubPayment{}, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:    1,
		ClientName:  "Nagy Petra",
		ClientPhone: "+36301112233",
		Items:       []CheckoutItemInput{{ProductID: 11, Quantity: 1}},
	})
	if !httperr.IsBusiness(err, "shipping_method_required") {
		t.Fatalf("want shipping_method_required, got %v", err)
	}
}

func TestCheckoutMixedCart(t *testing.T) {
	repo := checkoutRepo()
	pay := &stubPayment{}
	uc := NewCheckout(repo, pay, nil, zap.NewNop())

	methodID := uint(2)
	out, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:         1,
		ClientName:       "Nagy Petra",
		ClientPhone:      "+36301112233",
		Items:            []CheckoutItemInput{{ProductID: 10, Quantity: 1}, {ProductID: 11, Quantity: 2}},
		ShippingMethodID: &methodID,
		ShippingAddress:  "Budapest, Fő utca 1.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Order.Subtotal != 60 {
		t.Errorf("subtotal %v, want 60", out.Order.Subtotal)
	}
	if out.Order.Total != 68 {
		t.Errorf("total %v, want 68", out.Order.Total)
	}
	if repo.decremented[11] != 2 {
		t.Errorf("stock decremented by %d, want 2", repo.decremented[11])
	}
	if len(out.Order.Items) != 2 {
		t.Fatalf("order has %d items, want 2", len(out.Order.Items))
	}
	if out.Order.Items[1].UnitPrice != 15 {
		t.Errorf("unit price snapshot %v, want 15", out.Order.Items[1].UnitPrice)
	}
}

func TestCheckoutOutOfStock(t *testing.T) {
	repo := checkoutRepo()
	repo.stockErr = httperr.ErrBusiness("out_of_stock")
	uc := NewCheckout(repo, &stubPayment{}, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:    1,
		ClientName:  "Nagy Petra",
		ClientPhone: "+36301112233",
		Items:       []CheckoutItemInput{{ProductID: 10, Quantity: 1}},
	})
	if !httperr.IsBusiness(err, "out_of_stock") {
		t.Fatalf("want out_of_stock, got %v", err)
	}
}

func TestCheckoutPaymentUnavailable(t *testing.T) {
	pay := &stubPayment{err: errors.New("processor down")}
	uc := NewCheckout(checkoutRepo(), pay, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:    1,
		ClientName:  "Nagy Petra",
		ClientPhone: "+36301112233",
		Items:       []CheckoutItemInput{{ProductID: 10, Quantity: 1}},
	})
	if !httperr.IsBusiness(err, "payment_unavailable") {
		t.Fatalf("want payment_unavailable, got %v", err)
	}
}

func TestCheckoutFailedPaymentRestoresStock(t *testing.T) {
	repo := checkoutRepo()
	pay := &stubPayment{err: errors.New("processor down")}
	uc := NewCheckout(repo, pay, nil, zap.NewNop())

	methodID := uint(2)
	_, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:         1,
		ClientName:       "Nagy Petra",
		ClientPhone:      "+36301112233",
		Items:            []CheckoutItemInput{{ProductID: 11, Quantity: 2}},
		ShippingMethodID: &methodID,
		ShippingAddress:  "Budapest, Fő utca 1.",
	})
	if !httperr.IsBusiness(err, "payment_unavailable") {
		t.Fatalf("want payment_unavailable, got %v", err)
	}

	if repo.decremented[11] != 2 {
		t.Fatalf("decremented %d units, want 2", repo.decremented[11])
	}
	if repo.restored[11] != 2 {
		t.Errorf("restored %d units after failed payment, want 2", repo.restored[11])
	}
}

func TestCheckoutShortfallRestoresEarlierItems(t *testing.T) {
	repo := checkoutRepo()
	repo.products = append(repo.products, models.Product{
		ID: 12, StudioID: 1, Name: "Kettlebell", Kind: models.ProductKindPhysical,
		Price: 20, WeightGrams: 100, Stock: 1, Active: true,
	})
	repo.stockErrFor = 12
	uc := NewCheckout(repo, &stubPayment{}, nil, zap.NewNop())

	methodID := uint(2)
	_, err := uc.Execute(context.Background(), CheckoutInput{
		StudioID:         1,
		ClientName:       "Nagy Petra",
		ClientPhone:      "+36301112233",
		Items:            []CheckoutItemInput{{ProductID: 11, Quantity: 2}, {ProductID: 12, Quantity: 1}},
		ShippingMethodID: &methodID,
		ShippingAddress:  "Budapest, Fő utca 1.",
	})
	if !httperr.IsBusiness(err, "out_of_stock") {
		t.Fatalf("want out_of_stock, got %v", err)
	}

	if repo.restored[11] != 2 {
		t.Errorf("restored %d units of the first item, want 2", repo.restored[11])
	}
	if repo.restored[12] != 0 {
		t.Errorf("restored %d units of the failed item, want 0", repo.restored[12])
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc := NewCheckout(checkoutRepo(), &stubPayment{}, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), CheckoutInput{StudioID: 1})
	if !httperr.IsBusiness(err, "empty_cart") {
		t.Fatalf("want empty_cart, got %v", err)
	}
}

func TestMarkPaidIdempotent(t *testing.T) {
	paid := time.Now()
	repo := checkoutRepo()
	repo.order = &models.Order{ID: 1, StudioID: 1, Status: models.OrderStatusPaid, PaidAt: &paid}

	uc := NewMarkPaid(repo, nil)

	o, err := uc.Execute(context.Background(), "pref-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != models.OrderStatusPaid {
		t.Errorf("status %q, want paid", o.Status)
	}
	if repo.updated != nil {
		t.Error("an already paid order must not be rewritten")
	}
}

func TestMarkPaidPendingOrder(t *testing.T) {
	repo := checkoutRepo()
	repo.order = &models.Order{ID: 1, StudioID: 1, Status: models.OrderStatusPending}

	uc := NewMarkPaid(repo, nil)

	o, err := uc.Execute(context.Background(), "pref-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != models.OrderStatusPaid || o.PaidAt == nil {
		t.Errorf("order not marked paid: %+v", o)
	}
	if repo.updated == nil {
		t.Error("paid order was not persisted")
	}
}

func TestShipRequiresPaidOrder(t *testing.T) {
	repo := checkoutRepo()
	repo.order = &models.Order{ID: 1, StudioID: 1, Status: models.OrderStatusPending}

	uc := NewShipOrder(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 7, 1)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("want invalid_state, got %v", err)
	}
}

func TestShipPaidOrder(t *testing.T) {
	repo := checkoutRepo()
	repo.order = &models.Order{ID: 1, StudioID: 1, Status: models.OrderStatusPaid}

	uc := NewShipOrder(repo, nil)

	o, err := uc.Execute(context.Background(), 1, 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != models.OrderStatusShipped || o.ShippedAt == nil {
		t.Errorf("order not shipped: %+v", o)
	}
}
