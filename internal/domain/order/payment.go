package order

import "context"

// PaymentItem is one line handed to the external payment processor.
type PaymentItem struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// PaymentIntent is the processor's handle for a created checkout:
// the id is stored on the order, the init point is where the buyer
// finishes paying.
type PaymentIntent struct {
	ID        string
	InitPoint string
}

// PaymentProvider creates checkouts at the external processor. Capture,
// refunds and settlement all live on the processor's side; this
// repository only opens the checkout and later receives a webhook.
type PaymentProvider interface {
	CreateCheckout(
		ctx context.Context,
		referenceCode string,
		items []PaymentItem,
		shippingFee float64,
	) (*PaymentIntent, error)
}
