// Package shop holds the pure cart and order math used by both the API
// server and the POS client: no I/O, no shared state.
package shop

import "trasua/internal/domain"

// CartTotal computes the payable total for a cart.
//
// Per line the unit price is the product price (falling back to the topping
// price for standalone topping lines) plus the size surcharge plus the sum
// of attached topping prices, multiplied by the quantity. The discount is
// subtracted only while locked, and the result never goes below zero.
func CartTotal(cart []domain.CartItem, discountAmount int64, discountLocked bool) int64 {
	var subtotal int64
	for _, item := range cart {
		base := item.ProductPrice
		if base == 0 {
			base = item.ToppingPrice
		}
		var toppings int64
		for _, t := range item.Toppings {
			toppings += t.Price
		}
		subtotal += (base + toppings + item.SizePrice) * item.Quantity
	}
	if discountLocked {
		subtotal -= discountAmount
	}
	if subtotal < 0 {
		return 0
	}
	return subtotal
}
