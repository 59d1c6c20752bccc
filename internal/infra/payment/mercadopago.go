package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	appconfig "github.com/fitreni/coach-scheduler/internal/config"
	domain "github.com/fitreni/coach-scheduler/internal/domain/order"
)

// MercadoPagoProvider opens checkouts as MercadoPago preferences. The
// buyer pays on the processor's hosted page; confirmation arrives via
// webhook.
type MercadoPagoProvider struct {
	client  preference.Client
	baseURL string
}

func NewMercadoPagoProvider(cfg *appconfig.Config) (*MercadoPagoProvider, error) {
	mpCfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoProvider{
		client:  preference.NewClient(mpCfg),
		baseURL: cfg.CheckoutBaseURL,
	}, nil
}

func (p *MercadoPagoProvider) CreateCheckout(
	ctx context.Context,
	referenceCode string,
	items []domain.PaymentItem,
	shippingFee float64,
) (*domain.PaymentIntent, error) {

	reqItems := make([]preference.ItemRequest, 0, len(items)+1)
	for _, it := range items {
		reqItems = append(reqItems, preference.ItemRequest{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	if shippingFee > 0 {
		reqItems = append(reqItems, preference.ItemRequest{
			Title:     "Shipping",
			Quantity:  1,
			UnitPrice: shippingFee,
		})
	}

	req := preference.Request{
		Items:             reqItems,
		ExternalReference: referenceCode,
		BackURLs: &preference.BackURLsRequest{
			Success: p.baseURL + "/checkout/success",
			Pending: p.baseURL + "/checkout/pending",
			Failure: p.baseURL + "/checkout/failure",
		},
	}

	resource, err := p.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &domain.PaymentIntent{
		ID:        resource.ID,
		InitPoint: resource.InitPoint,
	}, nil
}

// Compile-time check
var _ domain.PaymentProvider = (*MercadoPagoProvider)(nil)
