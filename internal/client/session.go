package client

import (
	"context"
	"errors"
	"time"

	"trasua/internal/domain"
	"trasua/internal/shop"
)

// State is the register screen's position in the order lifecycle.
type State int

const (
	Browsing State = iota
	Customizing
	CartReview
	PaymentSelect
	PaymentConfirm
)

// Customization sheet defaults: 70% sugar, medium ice, size S.
const (
	DefaultSweetnessID = "4"
	DefaultIceID       = "3"
	DefaultSizeID      = "1"
)

var (
	ErrWrongState      = errors.New("operation not allowed in current state")
	ErrNoPaymentMethod = errors.New("no payment method selected")
	ErrUnknownOrder    = errors.New("order not in local list")
)

// customization holds the sheet selections for the product being added.
type customization struct {
	product     domain.MilkTea
	sweetnessID string
	iceID       string
	sizeID      string
	note        string
	toppingIDs  []int64
}

// checkoutState is everything CompleteOrder resets afterwards.
type checkoutState struct {
	paymentMethodID int64
	cashAmount      int64
	discountAmount  int64
	discountLocked  bool
	errMsg          string
}

// LineOutcome reports how one cart line fared during order replication and
// cleanup. Partial failure is visible per line instead of being swallowed.
type LineOutcome struct {
	CartItemID   int64
	OrderItemID  int64
	ReplicateErr error
	DeleteErr    error
}

// OrderResult is what CompleteOrder hands back.
type OrderResult struct {
	Order *domain.Order
	Lines []LineOutcome
}

// CheckoutSession drives one register: a single active cart, the order
// list, per-product quantity selections and the in-flight checkout. Not
// safe for concurrent use; the register is single-operator, and two rapid
// removes may interleave exactly like the original screen.
type CheckoutSession struct {
	api        *Client
	loc        *time.Location
	state      State
	cart       []domain.CartItem
	orders     []domain.Order
	quantities shop.Quantities
	sheet      customization
	checkout   checkoutState
}

func NewCheckoutSession(api *Client) *CheckoutSession {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		loc = time.FixedZone("ICT", 7*60*60)
	}
	return &CheckoutSession{
		api:        api,
		loc:        loc,
		state:      Browsing,
		quantities: shop.Quantities{},
	}
}

func (s *CheckoutSession) State() State            { return s.state }
func (s *CheckoutSession) Cart() []domain.CartItem { return s.cart }
func (s *CheckoutSession) Orders() []domain.Order  { return shop.SortOrders(s.orders) }
func (s *CheckoutSession) ErrorMessage() string    { return s.checkout.errMsg }

// CartTotal prices the current cart with the session's discount settings.
func (s *CheckoutSession) CartTotal() int64 {
	return shop.CartTotal(s.cart, s.checkout.discountAmount, s.checkout.discountLocked)
}

// Refresh pulls the cart and order lists from the backend.
func (s *CheckoutSession) Refresh(ctx context.Context) error {
	cart, err := s.api.ListCartItems(ctx)
	if err != nil {
		return err
	}
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	s.cart = cart
	s.orders = orders
	return nil
}

// Quantity selections on the browse grid.

func (s *CheckoutSession) Quantity(productID int64) int64 {
	return s.quantities.Get(productID)
}

func (s *CheckoutSession) SetQuantity(productID, quantity int64) {
	s.quantities = s.quantities.Update(productID, quantity)
}

// Customization sheet.

// BeginCustomization opens the sheet for a product with the default
// selections.
func (s *CheckoutSession) BeginCustomization(product domain.MilkTea) {
	s.state = Customizing
	s.sheet = customization{
		product:     product,
		sweetnessID: DefaultSweetnessID,
		iceID:       DefaultIceID,
		sizeID:      DefaultSizeID,
	}
}

func (s *CheckoutSession) SetSweetness(id string) { s.sheet.sweetnessID = id }
func (s *CheckoutSession) SetIce(id string)       { s.sheet.iceID = id }
func (s *CheckoutSession) SetSize(id string)      { s.sheet.sizeID = id }
func (s *CheckoutSession) SetNote(note string)    { s.sheet.note = note }

// ToggleTopping selects or deselects a topping on the sheet.
func (s *CheckoutSession) ToggleTopping(toppingID int64) {
	for i, id := range s.sheet.toppingIDs {
		if id == toppingID {
			s.sheet.toppingIDs = append(s.sheet.toppingIDs[:i], s.sheet.toppingIDs[i+1:]...)
			return
		}
	}
	s.sheet.toppingIDs = append(s.sheet.toppingIDs, toppingID)
}

// ConfirmAddToCart posts the sheet as a cart line, attaches the selected
// toppings to the freshly created line and refetches the cart. On any
// failure the session stays in Customizing and the error is returned.
func (s *CheckoutSession) ConfirmAddToCart(ctx context.Context) error {
	if s.state != Customizing {
		return ErrWrongState
	}

	quantity := s.quantities.Get(s.sheet.product.ID)
	if quantity <= 0 {
		quantity = 1
	}
	if _, err := s.api.CreateCartItem(ctx, CartItemInput{
		ItemType:    domain.ItemTypeProduct,
		ProductID:   s.sheet.product.ID,
		Quantity:    quantity,
		SweetnessID: s.sheet.sweetnessID,
		IceID:       s.sheet.iceID,
		SizeID:      s.sheet.sizeID,
		Notes:       s.sheet.note,
	}); err != nil {
		return err
	}

	cart, err := s.api.ListCartItems(ctx)
	if err != nil {
		return err
	}
	s.cart = cart

	if len(s.sheet.toppingIDs) > 0 {
		line := newestLine(cart)
		if line == nil {
			return errors.New("cart refetch returned no lines")
		}
		for _, toppingID := range s.sheet.toppingIDs {
			if err := s.api.AttachCartItemTopping(ctx, line.ID, toppingID); err != nil {
				return err
			}
		}
		cart, err = s.api.ListCartItems(ctx)
		if err != nil {
			return err
		}
		s.cart = cart
	}

	s.quantities = s.quantities.Update(s.sheet.product.ID, 0)
	s.sheet = customization{}
	s.state = CartReview
	return nil
}

// newestLine picks the line with the highest id, the one the add call just
// created.
func newestLine(cart []domain.CartItem) *domain.CartItem {
	var newest *domain.CartItem
	for i := range cart {
		if newest == nil || cart[i].ID > newest.ID {
			newest = &cart[i]
		}
	}
	return newest
}

// RemoveFromCart deletes a line and refetches. Unsynchronized: two rapid
// removes may interleave and the last response wins.
func (s *CheckoutSession) RemoveFromCart(ctx context.Context, cartItemID int64) error {
	if err := s.api.DeleteCartItem(ctx, cartItemID); err != nil {
		return err
	}
	cart, err := s.api.ListCartItems(ctx)
	if err != nil {
		return err
	}
	s.cart = cart
	return nil
}

// Checkout flow.

// ReviewCart moves from the browse grid to the cart screen.
func (s *CheckoutSession) ReviewCart() {
	s.state = CartReview
}

// StartCheckout enters payment selection with the method cleared.
func (s *CheckoutSession) StartCheckout() error {
	if s.state != CartReview {
		return ErrWrongState
	}
	if len(s.cart) == 0 {
		return ErrWrongState
	}
	s.checkout.paymentMethodID = 0
	s.checkout.errMsg = ""
	s.state = PaymentSelect
	return nil
}

func (s *CheckoutSession) SelectPaymentMethod(id int64) error {
	if id != domain.PaymentMethodCash && id != domain.PaymentMethodTransfer {
		return ErrNoPaymentMethod
	}
	s.checkout.paymentMethodID = id
	return nil
}

// NextStep advances to confirmation; blocked until a method is chosen.
func (s *CheckoutSession) NextStep() error {
	if s.state != PaymentSelect {
		return ErrWrongState
	}
	if s.checkout.paymentMethodID == 0 {
		return ErrNoPaymentMethod
	}
	s.state = PaymentConfirm
	return nil
}

func (s *CheckoutSession) SetCashAmount(amount int64) { s.checkout.cashAmount = amount }

func (s *CheckoutSession) SetDiscount(amount int64, locked bool) {
	s.checkout.discountAmount = amount
	s.checkout.discountLocked = locked
}

// CompleteOrder finalizes the checkout: validate cash, create the order,
// replicate every cart line into an order line, delete the cart lines,
// refetch and reset. Per-line outcomes are reported so a partial
// replication failure is visible to the caller.
func (s *CheckoutSession) CompleteOrder(ctx context.Context) (*OrderResult, error) {
	if s.state != PaymentConfirm {
		return nil, ErrWrongState
	}

	total := s.CartTotal()
	if s.checkout.paymentMethodID == domain.PaymentMethodCash {
		if msg := shop.ValidateCashPayment(s.checkout.cashAmount, total); msg != "" {
			s.checkout.errMsg = msg
			return nil, &shop.CashError{Message: msg}
		}
	}

	discount := int64(0)
	if s.checkout.discountLocked {
		discount = s.checkout.discountAmount
	}
	order, err := s.api.CreateOrder(ctx, OrderInput{
		PaymentMethodID: s.checkout.paymentMethodID,
		OrderTime:       time.Now().In(s.loc),
		TotalAmount:     total,
		DiscountAmount:  discount,
	})
	if err != nil {
		s.checkout.errMsg = err.Error()
		return nil, err
	}

	result := &OrderResult{Order: order, Lines: make([]LineOutcome, 0, len(s.cart))}
	for _, line := range s.cart {
		outcome := LineOutcome{CartItemID: line.ID}
		unitPrice := line.ProductPrice
		if unitPrice == 0 {
			unitPrice = line.ToppingPrice
		}
		name := line.ProductName
		if name == "" {
			name = line.ToppingName
		}
		item, err := s.api.CreateOrderItem(ctx, OrderItemInput{
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: name,
			SizeID:      line.SizeID,
			SweetnessID: line.SweetnessID,
			IceID:       line.IceID,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Notes:       line.Notes,
			Toppings:    line.Toppings,
		})
		if err != nil {
			outcome.ReplicateErr = err
		} else {
			outcome.OrderItemID = item.ID
		}
		outcome.DeleteErr = s.api.DeleteCartItem(ctx, line.ID)
		result.Lines = append(result.Lines, outcome)
	}

	if err := s.Refresh(ctx); err != nil {
		return result, err
	}
	s.checkout = checkoutState{}
	s.state = Browsing
	return result, nil
}

// ToggleOrderStatus flips an order's completion flag optimistically: the
// local list changes first, the remote update follows, and a remote
// failure reverts the local flip.
func (s *CheckoutSession) ToggleOrderStatus(ctx context.Context, orderID int64) error {
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownOrder
	}

	s.orders[idx].IsCompleted = !s.orders[idx].IsCompleted
	if _, err := s.api.UpdateOrderCompleted(ctx, orderID, s.orders[idx].IsCompleted); err != nil {
		s.orders[idx].IsCompleted = !s.orders[idx].IsCompleted
		return err
	}
	return nil
}
