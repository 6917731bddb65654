package shop

import (
	"testing"

	"trasua/internal/domain"
)

func sampleCart() []domain.CartItem {
	return []domain.CartItem{
		{
			ID:           1,
			ItemType:     domain.ItemTypeProduct,
			ProductID:    10,
			ProductName:  "Trà sữa truyền thống",
			ProductPrice: 10000,
			SizeID:       "1",
			SizePrice:    2000,
			Quantity:     2,
			SweetnessID:  "4",
			IceID:        "3",
			Toppings: []domain.Topping{
				{ID: 1, Name: "Trân châu đen", Price: 3000},
			},
		},
	}
}

func TestCartTotal(t *testing.T) {
	cart := sampleCart()
	// per unit: base 10000 + size 2000 + toppings 3000 = 15000, qty 2
	if got := CartTotal(cart, 5000, false); got != 30000 {
		t.Fatalf("unlocked discount must not apply, got %d", got)
	}
	if got := CartTotal(cart, 5000, true); got != 25000 {
		t.Fatalf("locked discount, got %d", got)
	}
}

func TestCartTotal_UnlockedDiscountIgnored(t *testing.T) {
	cart := sampleCart()
	base := CartTotal(cart, 0, true)
	for _, d := range []int64{1, 5000, 1 << 40} {
		if got := CartTotal(cart, d, false); got != base {
			t.Fatalf("discount %d leaked into unlocked total: %d != %d", d, got, base)
		}
	}
}

func TestCartTotal_ClampedAtZero(t *testing.T) {
	cart := sampleCart()
	if got := CartTotal(cart, 30000, true); got != 0 {
		t.Fatalf("discount equal to subtotal, got %d", got)
	}
	if got := CartTotal(cart, 1000000, true); got != 0 {
		t.Fatalf("oversized discount must clamp to 0, got %d", got)
	}
}

func TestCartTotal_EmptyCart(t *testing.T) {
	if got := CartTotal(nil, 0, false); got != 0 {
		t.Fatalf("empty cart, got %d", got)
	}
	if got := CartTotal([]domain.CartItem{}, 9999, true); got != 0 {
		t.Fatalf("empty cart with discount, got %d", got)
	}
}

func TestCartTotal_ToppingLineFallback(t *testing.T) {
	cart := []domain.CartItem{
		{ItemType: domain.ItemTypeTopping, ToppingID: 3, ToppingPrice: 5000, Quantity: 3},
	}
	if got := CartTotal(cart, 0, false); got != 15000 {
		t.Fatalf("standalone topping line, got %d", got)
	}
}

func TestCartTotal_MissingOptionalFields(t *testing.T) {
	// no toppings slice, no size surcharge
	cart := []domain.CartItem{
		{ItemType: domain.ItemTypeProduct, ProductPrice: 20000, Quantity: 1},
	}
	if got := CartTotal(cart, 0, false); got != 20000 {
		t.Fatalf("missing optional fields must contribute 0, got %d", got)
	}
}
