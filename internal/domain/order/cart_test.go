package order

import (
	"testing"

	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
)

func TestComputeDigitalOnly(t *testing.T) {
	lines := []Line{
		{Kind: models.ProductKindDigital, UnitPrice: 4990, Quantity: 1},
		{Kind: models.ProductKindDigital, UnitPrice: 1990, Quantity: 2},
	}

	got, err := Compute(lines, nil)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if got.Subtotal != 8970 {
		t.Errorf("subtotal = %v, want 8970", got.Subtotal)
	}
	if got.ShippingFee != 0 {
		t.Errorf("digital cart must not pay shipping, got %v", got.ShippingFee)
	}
	if got.Total != 8970 {
		t.Errorf("total = %v, want 8970", got.Total)
	}
}

func TestComputePhysicalNeedsMethod(t *testing.T) {
	lines := []Line{{Kind: models.ProductKindPhysical, UnitPrice: 12000, Quantity: 1, WeightGrams: 500}}

	if _, err := Compute(lines, nil); !httperr.IsBusiness(err, "shipping_method_required") {
		t.Fatalf("want shipping_method_required, got %v", err)
	}
}

func TestComputeShippingFeeApplied(t *testing.T) {
	lines := []Line{{Kind: models.ProductKindPhysical, UnitPrice: 12000, Quantity: 1, WeightGrams: 500}}
	method := &models.ShippingMethod{Fee: 1490, FreeAbove: 20000}

	got, err := Compute(lines, method)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if got.ShippingFee != 1490 {
		t.Errorf("shipping fee = %v, want 1490", got.ShippingFee)
	}
	if got.Total != 13490 {
		t.Errorf("total = %v, want 13490", got.Total)
	}
}

func TestComputeFreeShippingThreshold(t *testing.T) {
	lines := []Line{{Kind: models.ProductKindPhysical, UnitPrice: 12000, Quantity: 2, WeightGrams: 500}}
	method := &models.ShippingMethod{Fee: 1490, FreeAbove: 20000}

	got, err := Compute(lines, method)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if got.ShippingFee != 0 {
		t.Errorf("subtotal %v over threshold still charged %v shipping", got.Subtotal, got.ShippingFee)
	}
	if got.Total != 24000 {
		t.Errorf("total = %v, want 24000", got.Total)
	}
}

func TestComputeWeightLimit(t *testing.T) {
	lines := []Line{{Kind: models.ProductKindPhysical, UnitPrice: 5000, Quantity: 3, WeightGrams: 2000}}
	method := &models.ShippingMethod{Fee: 1490, MaxWeightGrams: 5000}

	if _, err := Compute(lines, method); !httperr.IsBusiness(err, "shipping_over_weight") {
		t.Fatalf("want shipping_over_weight, got %v", err)
	}
}

func TestComputeMixedCartWeighsOnlyPhysical(t *testing.T) {
	lines := []Line{
		{Kind: models.ProductKindDigital, UnitPrice: 4990, Quantity: 1},
		{Kind: models.ProductKindPhysical, UnitPrice: 8000, Quantity: 2, WeightGrams: 300},
	}
	method := &models.ShippingMethod{Fee: 990}

	got, err := Compute(lines, method)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if got.WeightGrams != 600 {
		t.Errorf("weight = %d, want 600", got.WeightGrams)
	}
	if got.Total != 4990+16000+990 {
		t.Errorf("total = %v, want %v", got.Total, 4990+16000+990)
	}
}

func TestComputeRejectsNonPositiveQuantity(t *testing.T) {
	lines := []Line{{Kind: models.ProductKindDigital, UnitPrice: 4990, Quantity: 0}}

	if _, err := Compute(lines, nil); !httperr.IsBusiness(err, "invalid_quantity") {
		t.Fatalf("want invalid_quantity, got %v", err)
	}
}
