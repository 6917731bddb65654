package service

import (
	"context"
	"errors"

	"trasua/internal/domain"
	"trasua/internal/repository"
)

var (
	// ErrInvalidInput rejects requests that fail basic validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState rejects operations that do not apply to the entity's
	// current state.
	ErrInvalidState = errors.New("invalid state")
	// ErrCartEmpty rejects a checkout with nothing in the cart.
	ErrCartEmpty = errors.New("cart is empty")
)

// CatalogService serves the storefront menu: drinks, toppings and the
// customization option levels.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListMilkTeas(ctx context.Context, f repository.CatalogFilter) ([]domain.MilkTea, error) {
	return s.repo.ListMilkTeas(ctx, f)
}

func (s *CatalogService) GetMilkTea(ctx context.Context, id int64) (*domain.MilkTea, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetMilkTea(ctx, id)
}

func (s *CatalogService) ListToppings(ctx context.Context, f repository.CatalogFilter) ([]domain.Topping, error) {
	return s.repo.ListToppings(ctx, f)
}

func (s *CatalogService) ListSweetnessLevels(ctx context.Context) ([]domain.SweetnessLevel, error) {
	return s.repo.ListSweetnessLevels(ctx)
}

func (s *CatalogService) ListIceLevels(ctx context.Context) ([]domain.IceLevel, error) {
	return s.repo.ListIceLevels(ctx)
}

func (s *CatalogService) ListSizes(ctx context.Context) ([]domain.Size, error) {
	return s.repo.ListSizes(ctx)
}
