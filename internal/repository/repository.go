package repository

import (
	"context"
	"errors"

	"trasua/internal/domain"
)

// ErrNotFound is returned when an entity does not exist or is soft-deleted.
var ErrNotFound = errors.New("not found")

// CatalogFilter narrows menu listings the way the storefront queries them
// (fq=is_active:1, fq=sellable:1).
type CatalogFilter struct {
	ActiveOnly   bool
	SellableOnly bool
}

// CatalogRepository serves the immutable menu reference data.
type CatalogRepository interface {
	CreateMilkTea(ctx context.Context, m *domain.MilkTea) error
	GetMilkTea(ctx context.Context, id int64) (*domain.MilkTea, error)
	UpdateMilkTea(ctx context.Context, m *domain.MilkTea) error
	ListMilkTeas(ctx context.Context, f CatalogFilter) ([]domain.MilkTea, error)

	CreateTopping(ctx context.Context, t *domain.Topping) error
	GetTopping(ctx context.Context, id int64) (*domain.Topping, error)
	ListToppings(ctx context.Context, f CatalogFilter) ([]domain.Topping, error)

	CreateSweetnessLevel(ctx context.Context, l *domain.SweetnessLevel) error
	ListSweetnessLevels(ctx context.Context) ([]domain.SweetnessLevel, error)
	CreateIceLevel(ctx context.Context, l *domain.IceLevel) error
	ListIceLevels(ctx context.Context) ([]domain.IceLevel, error)
	CreateSize(ctx context.Context, s *domain.Size) error
	GetSize(ctx context.Context, id int64) (*domain.Size, error)
	ListSizes(ctx context.Context) ([]domain.Size, error)
}

// CartRepository owns the single active cart.
type CartRepository interface {
	CreateCartItem(ctx context.Context, item *domain.CartItem) error
	GetCartItem(ctx context.Context, id int64) (*domain.CartItem, error)
	ListCartItems(ctx context.Context) ([]domain.CartItem, error)
	AttachCartItemTopping(ctx context.Context, cartItemID int64, t domain.Topping) error
	DeleteCartItem(ctx context.Context, id int64) error
	ClearCart(ctx context.Context) error
}

// OrderRepository owns placed orders and their line snapshots.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, o *domain.Order) error
	CreateOrderItem(ctx context.Context, item *domain.OrderItem) error
}

// UserRepository owns operator accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TxManager is the transaction abstraction. The in-memory store takes a
// global write lock; the SQL store opens a database transaction.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store groups everything a fully wired server needs.
type Store interface {
	CatalogRepository
	CartRepository
	OrderRepository
	UserRepository
	TxManager
}
