package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"trasua/internal/domain"
	"trasua/internal/repository"
	"trasua/internal/shop"
)

// OrderService owns the cart-to-order transition and the order list.
type OrderService struct {
	cart   repository.CartRepository
	orders repository.OrderRepository
	tx     repository.TxManager
}

func NewOrderService(cart repository.CartRepository, orders repository.OrderRepository, tx repository.TxManager) *OrderService {
	return &OrderService{cart: cart, orders: orders, tx: tx}
}

// CreateInput mirrors the POST orders payload.
type CreateInput struct {
	PaymentMethodID int64
	OrderTime       time.Time
	TotalAmount     int64
	DiscountAmount  int64
	IsCompleted     bool
}

// Create stores a bare order record. Line snapshots arrive separately via
// AddItem, matching clients that replicate cart lines one call at a time.
func (s *OrderService) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if in.PaymentMethodID != domain.PaymentMethodCash && in.PaymentMethodID != domain.PaymentMethodTransfer {
		return nil, ErrInvalidInput
	}
	if in.TotalAmount < 0 || in.DiscountAmount < 0 {
		return nil, ErrInvalidInput
	}
	if in.OrderTime.IsZero() {
		in.OrderTime = time.Now().UTC()
	}

	o := domain.Order{
		ReceiptCode:     uuid.New().String(),
		PaymentMethodID: in.PaymentMethodID,
		OrderTime:       in.OrderTime,
		TotalAmount:     in.TotalAmount,
		DiscountAmount:  in.DiscountAmount,
		IsCompleted:     in.IsCompleted,
	}
	if err := s.orders.CreateOrder(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ItemInput mirrors the POST order_items payload.
type ItemInput struct {
	OrderID     int64
	ProductID   int64
	ProductName string
	SizeID      string
	SweetnessID string
	IceID       string
	Quantity    int64
	UnitPrice   int64
	Notes       string
	Toppings    []domain.Topping
}

// AddItem appends one line snapshot to an existing order.
func (s *OrderService) AddItem(ctx context.Context, in ItemInput) (*domain.OrderItem, error) {
	if in.OrderID <= 0 || in.Quantity <= 0 || len(in.Notes) > domain.MaxNoteLength {
		return nil, ErrInvalidInput
	}

	item := domain.OrderItem{
		OrderID:     in.OrderID,
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		SizeID:      in.SizeID,
		SweetnessID: in.SweetnessID,
		IceID:       in.IceID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Notes:       in.Notes,
		Toppings:    in.Toppings,
	}
	if err := s.orders.CreateOrderItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CheckoutInput is a full cart-to-order transition.
type CheckoutInput struct {
	PaymentMethodID int64
	CashAmount      int64
	DiscountAmount  int64
	DiscountLocked  bool
	OrderTime       time.Time
}

// Checkout converts the current cart into an order atomically: total the
// cart, validate cash when paying cash, create the order, snapshot every
// cart line into an order line and empty the cart. Either everything is
// persisted or nothing is.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	if in.PaymentMethodID != domain.PaymentMethodCash && in.PaymentMethodID != domain.PaymentMethodTransfer {
		return nil, ErrInvalidInput
	}
	if in.OrderTime.IsZero() {
		in.OrderTime = time.Now().UTC()
	}

	var created *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cart, err := s.cart.ListCartItems(ctx)
		if err != nil {
			return err
		}
		if len(cart) == 0 {
			return ErrCartEmpty
		}

		total := shop.CartTotal(cart, in.DiscountAmount, in.DiscountLocked)
		if in.PaymentMethodID == domain.PaymentMethodCash {
			if msg := shop.ValidateCashPayment(in.CashAmount, total); msg != "" {
				return &shop.CashError{Message: msg}
			}
		}

		discount := int64(0)
		if in.DiscountLocked {
			discount = in.DiscountAmount
		}
		o := domain.Order{
			ReceiptCode:     uuid.New().String(),
			PaymentMethodID: in.PaymentMethodID,
			OrderTime:       in.OrderTime,
			TotalAmount:     total,
			DiscountAmount:  discount,
			Items:           snapshotCart(cart),
		}
		if err := s.orders.CreateOrder(ctx, &o); err != nil {
			return err
		}
		if err := s.cart.ClearCart(ctx); err != nil {
			return err
		}
		created = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// snapshotCart copies cart lines into order lines by value; the order keeps
// these even after the cart rows are gone.
func snapshotCart(cart []domain.CartItem) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(cart))
	for _, line := range cart {
		unitPrice := line.ProductPrice
		if unitPrice == 0 {
			unitPrice = line.ToppingPrice
		}
		toppings := make([]domain.Topping, len(line.Toppings))
		copy(toppings, line.Toppings)
		items = append(items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			SizeID:      line.SizeID,
			SweetnessID: line.SweetnessID,
			IceID:       line.IceID,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Notes:       line.Notes,
			Toppings:    toppings,
		})
	}
	return items
}

// SetCompleted flips the completion flag. The record is otherwise
// immutable.
func (s *OrderService) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	o, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.IsCompleted = completed
	if err := s.orders.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.orders.GetOrder(ctx, id)
}

// List returns orders for the management screen: open orders first, newest
// first inside each group.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return shop.SortOrders(orders), nil
}
