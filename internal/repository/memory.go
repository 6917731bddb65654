package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trasua/internal/domain"
)

// MemoryStore is an in-memory implementation of Store with a simple ID
// generator, used for tests and for running the server without MySQL.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID map[string]int64

	milkTeas        map[int64]domain.MilkTea
	toppings        map[int64]domain.Topping
	sweetnessLevels map[int64]domain.SweetnessLevel
	iceLevels       map[int64]domain.IceLevel
	sizes           map[int64]domain.Size
	cartItems       map[int64]domain.CartItem
	orders          map[int64]domain.Order
	users           map[int64]domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:          make(map[string]int64),
		milkTeas:        make(map[int64]domain.MilkTea),
		toppings:        make(map[int64]domain.Topping),
		sweetnessLevels: make(map[int64]domain.SweetnessLevel),
		iceLevels:       make(map[int64]domain.IceLevel),
		sizes:           make(map[int64]domain.Size),
		cartItems:       make(map[int64]domain.CartItem),
		orders:          make(map[int64]domain.Order),
		users:           make(map[int64]domain.User),
	}
}

var _ Store = (*MemoryStore)(nil)

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

func (m *MemoryStore) nextFor(kind string) int64 {
	m.nextID[kind]++
	return m.nextID[kind]
}

// WithTransaction takes the write lock for the whole callback and marks the
// context so nested repository calls skip their own locks.
func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

// CatalogRepository

func (m *MemoryStore) CreateMilkTea(ctx context.Context, p *domain.MilkTea) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.nextFor("milk_teas")
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.milkTeas[p.ID] = *p
	return nil
}

func (m *MemoryStore) GetMilkTea(ctx context.Context, id int64) (*domain.MilkTea, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.milkTeas[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *MemoryStore) UpdateMilkTea(ctx context.Context, p *domain.MilkTea) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.milkTeas[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	m.milkTeas[p.ID] = *p
	return nil
}

func (m *MemoryStore) ListMilkTeas(ctx context.Context, f CatalogFilter) ([]domain.MilkTea, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.MilkTea, 0)
	for _, p := range m.milkTeas {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sortByID(out, func(p domain.MilkTea) int64 { return p.ID })
	return out, nil
}

func (m *MemoryStore) CreateTopping(ctx context.Context, t *domain.Topping) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	t.ID = m.nextFor("toppings")
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	m.toppings[t.ID] = *t
	return nil
}

func (m *MemoryStore) GetTopping(ctx context.Context, id int64) (*domain.Topping, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	t, ok := m.toppings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := t
	return &cp, nil
}

func (m *MemoryStore) ListToppings(ctx context.Context, f CatalogFilter) ([]domain.Topping, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Topping, 0)
	for _, t := range m.toppings {
		if f.ActiveOnly && !t.IsActive {
			continue
		}
		if f.SellableOnly && !t.Sellable {
			continue
		}
		out = append(out, t)
	}
	sortByID(out, func(t domain.Topping) int64 { return t.ID })
	return out, nil
}

func (m *MemoryStore) CreateSweetnessLevel(ctx context.Context, l *domain.SweetnessLevel) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	l.ID = m.nextFor("sweetness_levels")
	m.sweetnessLevels[l.ID] = *l
	return nil
}

func (m *MemoryStore) ListSweetnessLevels(ctx context.Context) ([]domain.SweetnessLevel, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.SweetnessLevel, 0, len(m.sweetnessLevels))
	for _, l := range m.sweetnessLevels {
		out = append(out, l)
	}
	sortByID(out, func(l domain.SweetnessLevel) int64 { return l.ID })
	return out, nil
}

func (m *MemoryStore) CreateIceLevel(ctx context.Context, l *domain.IceLevel) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	l.ID = m.nextFor("ice_levels")
	m.iceLevels[l.ID] = *l
	return nil
}

func (m *MemoryStore) ListIceLevels(ctx context.Context) ([]domain.IceLevel, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.IceLevel, 0, len(m.iceLevels))
	for _, l := range m.iceLevels {
		out = append(out, l)
	}
	sortByID(out, func(l domain.IceLevel) int64 { return l.ID })
	return out, nil
}

func (m *MemoryStore) CreateSize(ctx context.Context, s *domain.Size) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	s.ID = m.nextFor("sizes")
	m.sizes[s.ID] = *s
	return nil
}

func (m *MemoryStore) GetSize(ctx context.Context, id int64) (*domain.Size, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	s, ok := m.sizes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (m *MemoryStore) ListSizes(ctx context.Context) ([]domain.Size, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Size, 0, len(m.sizes))
	for _, s := range m.sizes {
		out = append(out, s)
	}
	sortByID(out, func(s domain.Size) int64 { return s.ID })
	return out, nil
}

// CartRepository

func (m *MemoryStore) CreateCartItem(ctx context.Context, item *domain.CartItem) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	item.ID = m.nextFor("cart_items")
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	m.cartItems[item.ID] = copyCartItem(*item)
	return nil
}

func (m *MemoryStore) GetCartItem(ctx context.Context, id int64) (*domain.CartItem, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	item, ok := m.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyCartItem(item)
	return &cp, nil
}

func (m *MemoryStore) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.CartItem, 0, len(m.cartItems))
	for _, item := range m.cartItems {
		out = append(out, copyCartItem(item))
	}
	sortByID(out, func(i domain.CartItem) int64 { return i.ID })
	return out, nil
}

func (m *MemoryStore) AttachCartItemTopping(ctx context.Context, cartItemID int64, t domain.Topping) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	item, ok := m.cartItems[cartItemID]
	if !ok {
		return ErrNotFound
	}
	item.Toppings = append(item.Toppings, t)
	item.UpdatedAt = time.Now().UTC()
	m.cartItems[cartItemID] = item
	return nil
}

func (m *MemoryStore) DeleteCartItem(ctx context.Context, id int64) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(m.cartItems, id)
	return nil
}

func (m *MemoryStore) ClearCart(ctx context.Context) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	m.cartItems = make(map[int64]domain.CartItem)
	return nil
}

// OrderRepository

func (m *MemoryStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	o.ID = m.nextFor("orders")
	if o.ReceiptCode == "" {
		o.ReceiptCode = uuid.New().String()
	}
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	for i := range o.Items {
		o.Items[i].ID = m.nextFor("order_items")
		o.Items[i].OrderID = o.ID
	}
	m.orders[o.ID] = copyOrder(*o)
	return nil
}

func (m *MemoryStore) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyOrder(o)
	return &cp, nil
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, copyOrder(o))
	}
	sortByID(out, func(o domain.Order) int64 { return o.ID })
	return out, nil
}

func (m *MemoryStore) UpdateOrder(ctx context.Context, o *domain.Order) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.orders[o.ID]; !ok {
		return ErrNotFound
	}
	o.UpdatedAt = time.Now().UTC()
	m.orders[o.ID] = copyOrder(*o)
	return nil
}

func (m *MemoryStore) CreateOrderItem(ctx context.Context, item *domain.OrderItem) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	o, ok := m.orders[item.OrderID]
	if !ok {
		return ErrNotFound
	}
	item.ID = m.nextFor("order_items")
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	o.Items = append(o.Items, copyOrderItem(*item))
	m.orders[o.ID] = o
	return nil
}

// UserRepository

func (m *MemoryStore) CreateUser(ctx context.Context, u *domain.User) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	u.ID = m.nextFor("users")
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// deep copies so callers never alias map-held slices

func copyCartItem(item domain.CartItem) domain.CartItem {
	if item.Toppings != nil {
		toppings := make([]domain.Topping, len(item.Toppings))
		copy(toppings, item.Toppings)
		item.Toppings = toppings
	}
	return item
}

func copyOrderItem(item domain.OrderItem) domain.OrderItem {
	if item.Toppings != nil {
		toppings := make([]domain.Topping, len(item.Toppings))
		copy(toppings, item.Toppings)
		item.Toppings = toppings
	}
	return item
}

func copyOrder(o domain.Order) domain.Order {
	if o.Items != nil {
		items := make([]domain.OrderItem, len(o.Items))
		for i, it := range o.Items {
			items[i] = copyOrderItem(it)
		}
		o.Items = items
	}
	return o
}

// listings come back in insertion order, like an auto-increment table scan
func sortByID[T any](s []T, id func(T) int64) {
	sort.Slice(s, func(i, j int) bool { return id(s[i]) < id(s[j]) })
}
