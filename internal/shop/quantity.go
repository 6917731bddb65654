package shop

// Quantities maps an item id to the quantity the operator has dialed in
// before confirming a line.
type Quantities map[int64]int64

// Get returns the selected quantity for id, defaulting to 0.
func (q Quantities) Get(id int64) int64 {
	return q[id]
}

// Update returns a new map with the id's quantity replaced. A negative
// quantity is a no-op and returns the receiver itself, so callers comparing
// references can skip redundant refreshes. The receiver is never mutated.
func (q Quantities) Update(id, quantity int64) Quantities {
	if quantity < 0 {
		return q
	}
	next := make(Quantities, len(q)+1)
	for k, v := range q {
		next[k] = v
	}
	next[id] = quantity
	return next
}
