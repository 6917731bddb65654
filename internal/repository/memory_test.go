package repository

import (
	"context"
	"testing"

	"trasua/internal/domain"
)

func TestMemoryStore_CatalogCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := domain.MilkTea{Name: "Trà sữa matcha", BasePrice: 32000, IsActive: true}
	if err := store.CreateMilkTea(ctx, &m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("no id")
	}

	got, err := store.GetMilkTea(ctx, m.ID)
	if err != nil || got.ID != m.ID {
		t.Fatalf("get: %v", err)
	}

	if _, err := store.GetMilkTea(ctx, 999); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryStore_CatalogFiltering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	active := domain.MilkTea{Name: "A", BasePrice: 25000, IsActive: true}
	hidden := domain.MilkTea{Name: "B", BasePrice: 30000, IsActive: false}
	if err := store.CreateMilkTea(ctx, &active); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateMilkTea(ctx, &hidden); err != nil {
		t.Fatal(err)
	}

	list, _ := store.ListMilkTeas(ctx, CatalogFilter{ActiveOnly: true})
	if len(list) != 1 || list[0].ID != active.ID {
		t.Fatalf("active filter: %v", list)
	}

	tAct := domain.Topping{Name: "Trân châu", Price: 5000, IsActive: true, Sellable: true}
	tHidden := domain.Topping{Name: "Thạch", Price: 6000, IsActive: true, Sellable: false}
	if err := store.CreateTopping(ctx, &tAct); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateTopping(ctx, &tHidden); err != nil {
		t.Fatal(err)
	}

	tops, _ := store.ListToppings(ctx, CatalogFilter{ActiveOnly: true, SellableOnly: true})
	if len(tops) != 1 || tops[0].ID != tAct.ID {
		t.Fatalf("sellable filter: %v", tops)
	}
}

func TestMemoryStore_CartLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item := domain.CartItem{
		ItemType:     domain.ItemTypeProduct,
		ProductID:    1,
		ProductName:  "Trà sữa",
		ProductPrice: 25000,
		Quantity:     2,
	}
	if err := store.CreateCartItem(ctx, &item); err != nil {
		t.Fatalf("create cart item: %v", err)
	}

	if err := store.AttachCartItemTopping(ctx, item.ID, domain.Topping{ID: 9, Name: "Pudding", Price: 8000}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	got, err := store.GetCartItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Toppings) != 1 || got.Toppings[0].Price != 8000 {
		t.Fatalf("topping not attached: %v", got.Toppings)
	}

	// mutating the returned copy must not leak into the store
	got.Toppings[0].Price = 1
	again, _ := store.GetCartItem(ctx, item.ID)
	if again.Toppings[0].Price != 8000 {
		t.Fatalf("store aliased a returned slice")
	}

	if err := store.DeleteCartItem(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteCartItem(ctx, item.ID); err != ErrNotFound {
		t.Fatalf("expected not found on double delete, got %v", err)
	}

	var second domain.CartItem
	second.ItemType = domain.ItemTypeTopping
	second.ToppingID = 2
	second.Quantity = 1
	if err := store.CreateCartItem(ctx, &second); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearCart(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ := store.ListCartItems(ctx)
	if len(list) != 0 {
		t.Fatalf("cart not empty after clear: %v", list)
	}
}

func TestMemoryStore_Orders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	o := domain.Order{
		PaymentMethodID: domain.PaymentMethodCash,
		TotalAmount:     50000,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 25000},
		},
	}
	if err := store.CreateOrder(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ReceiptCode == "" {
		t.Fatalf("receipt code not generated")
	}
	if o.Items[0].OrderID != o.ID {
		t.Fatalf("item not linked to order")
	}

	extra := domain.OrderItem{OrderID: o.ID, ProductID: 2, Quantity: 1, UnitPrice: 30000}
	if err := store.CreateOrderItem(ctx, &extra); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if err := store.CreateOrderItem(ctx, &domain.OrderItem{OrderID: 999}); err != ErrNotFound {
		t.Fatalf("expected not found for unknown order, got %v", err)
	}

	got, err := store.GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}

	got.IsCompleted = true
	if err := store.UpdateOrder(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := store.GetOrder(ctx, o.ID)
	if !again.IsCompleted {
		t.Fatalf("completion flag not persisted")
	}
}

func TestMemoryStore_TransactionalCheckout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item := domain.CartItem{ItemType: domain.ItemTypeProduct, ProductID: 1, ProductPrice: 25000, Quantity: 1}
	if err := store.CreateCartItem(ctx, &item); err != nil {
		t.Fatal(err)
	}

	// emulate atomic order create + cart clear
	err := store.WithTransaction(ctx, func(ctx context.Context) error {
		o := domain.Order{PaymentMethodID: domain.PaymentMethodCash, TotalAmount: 25000}
		if err := store.CreateOrder(ctx, &o); err != nil {
			return err
		}
		return store.ClearCart(ctx)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	cart, _ := store.ListCartItems(context.Background())
	if len(cart) != 0 {
		t.Fatalf("cart should be empty after checkout tx")
	}
	orders, _ := store.ListOrders(context.Background())
	if len(orders) != 1 {
		t.Fatalf("order missing after checkout tx")
	}
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	u := domain.User{Email: "banhang@trasua.vn", Name: "NV"}
	if err := store.CreateUser(ctx, &u); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetUserByEmail(ctx, "banhang@trasua.vn")
	if err != nil || got.ID != u.ID {
		t.Fatalf("get by email: %v", err)
	}
	if _, err := store.GetUserByEmail(ctx, "missing@trasua.vn"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
