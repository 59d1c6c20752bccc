package order

import (
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
)

// Line is one cart position with its price snapshot.
type Line struct {
	Kind        string
	UnitPrice   float64
	Quantity    int
	WeightGrams int
}

type Totals struct {
	Subtotal    float64
	ShippingFee float64
	Total       float64
	WeightGrams int
}

// RequiresShipping reports whether the cart contains anything physical.
// All-digital carts ship nothing and pay no fee.
func RequiresShipping(lines []Line) bool {
	for _, l := range lines {
		if l.Kind == models.ProductKindPhysical {
			return true
		}
	}
	return false
}

// Compute aggregates the cart: items subtotal, shipping fee for the
// chosen method (waived at the method's free-above threshold), grand
// total. method may be nil for all-digital carts.
func Compute(lines []Line, method *models.ShippingMethod) (Totals, error) {
	var t Totals

	for _, l := range lines {
		if l.Quantity <= 0 {
			return Totals{}, httperr.ErrBusiness("invalid_quantity")
		}
		t.Subtotal += l.UnitPrice * float64(l.Quantity)
		if l.Kind == models.ProductKindPhysical {
			t.WeightGrams += l.WeightGrams * l.Quantity
		}
	}

	if RequiresShipping(lines) {
		if method == nil {
			return Totals{}, httperr.ErrBusiness("shipping_method_required")
		}
		if method.MaxWeightGrams > 0 && t.WeightGrams > method.MaxWeightGrams {
			return Totals{}, httperr.ErrBusiness("shipping_over_weight")
		}

		t.ShippingFee = method.Fee
		if method.FreeAbove > 0 && t.Subtotal >= method.FreeAbove {
			t.ShippingFee = 0
		}
	}

	t.Total = t.Subtotal + t.ShippingFee
	return t, nil
}
