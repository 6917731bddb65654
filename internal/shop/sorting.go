package shop

import (
	"sort"

	"trasua/internal/domain"
)

// SortOrders returns a new slice with open orders first and, inside each
// completion group, the most recent order time first. The sort is stable:
// orders with equal keys keep their input order. The input slice is left
// untouched.
func SortOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCompleted != out[j].IsCompleted {
			return !out[i].IsCompleted
		}
		return out[i].OrderTime.After(out[j].OrderTime)
	})
	return out
}
