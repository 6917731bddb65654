package service

import (
	"context"
	"strconv"

	"trasua/internal/domain"
	"trasua/internal/repository"
)

// CartService manages the single active cart: line creation with resolved
// price snapshots, topping attachment and removal.
type CartService struct {
	catalog repository.CatalogRepository
	cart    repository.CartRepository
}

func NewCartService(catalog repository.CatalogRepository, cart repository.CartRepository) *CartService {
	return &CartService{catalog: catalog, cart: cart}
}

// AddProductInput mirrors the POST cart_items payload for a drink line.
type AddProductInput struct {
	ProductID   int64
	Quantity    int64
	SweetnessID string
	IceID       string
	SizeID      string
	Notes       string
}

// AddProduct creates a PRODUCT cart line. The product must exist and be
// active; price and name are copied onto the line so later menu edits never
// change what the customer agreed to. An unknown size contributes no
// surcharge.
func (s *CartService) AddProduct(ctx context.Context, in AddProductInput) (*domain.CartItem, error) {
	if in.ProductID <= 0 || in.Quantity <= 0 || len(in.Notes) > domain.MaxNoteLength {
		return nil, ErrInvalidInput
	}

	product, err := s.catalog.GetMilkTea(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrInvalidState
	}

	item := domain.CartItem{
		ItemType:     domain.ItemTypeProduct,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.BasePrice,
		Quantity:     in.Quantity,
		SweetnessID:  in.SweetnessID,
		IceID:        in.IceID,
		SizeID:       in.SizeID,
		Notes:        in.Notes,
	}
	if sizeID, convErr := strconv.ParseInt(in.SizeID, 10, 64); convErr == nil {
		if size, sizeErr := s.catalog.GetSize(ctx, sizeID); sizeErr == nil {
			item.SizeName = size.Name
			item.SizePrice = size.Price
		}
	}

	if err := s.cart.CreateCartItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AddToppingInput mirrors the POST cart_items payload for a standalone
// topping line.
type AddToppingInput struct {
	ToppingID int64
	Quantity  int64
	Notes     string
}

// AddStandaloneTopping creates a TOPPING cart line (a topping sold on its
// own, no size or sweetness).
func (s *CartService) AddStandaloneTopping(ctx context.Context, in AddToppingInput) (*domain.CartItem, error) {
	if in.ToppingID <= 0 || in.Quantity <= 0 || len(in.Notes) > domain.MaxNoteLength {
		return nil, ErrInvalidInput
	}

	topping, err := s.catalog.GetTopping(ctx, in.ToppingID)
	if err != nil {
		return nil, err
	}
	if !topping.IsActive || !topping.Sellable {
		return nil, ErrInvalidState
	}

	item := domain.CartItem{
		ItemType:     domain.ItemTypeTopping,
		ToppingID:    topping.ID,
		ToppingName:  topping.Name,
		ToppingPrice: topping.Price,
		Quantity:     in.Quantity,
		Notes:        in.Notes,
	}
	if err := s.cart.CreateCartItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AttachTopping adds a topping to an existing PRODUCT cart line.
func (s *CartService) AttachTopping(ctx context.Context, cartItemID, toppingID int64) error {
	if cartItemID <= 0 || toppingID <= 0 {
		return ErrInvalidInput
	}

	item, err := s.cart.GetCartItem(ctx, cartItemID)
	if err != nil {
		return err
	}
	if item.ItemType != domain.ItemTypeProduct {
		return ErrInvalidState
	}

	topping, err := s.catalog.GetTopping(ctx, toppingID)
	if err != nil {
		return err
	}
	return s.cart.AttachCartItemTopping(ctx, cartItemID, *topping)
}

func (s *CartService) List(ctx context.Context) ([]domain.CartItem, error) {
	return s.cart.ListCartItems(ctx)
}

func (s *CartService) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.cart.DeleteCartItem(ctx, id)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.cart.ClearCart(ctx)
}
