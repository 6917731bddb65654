package repository

import (
	"context"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"trasua/internal/domain"
)

// SeedDemo loads the demo menu, option levels and a default operator
// account into an empty store. Safe to call once at startup.
func SeedDemo(ctx context.Context, store Store) error {
	if existing, err := store.ListMilkTeas(ctx, CatalogFilter{}); err != nil {
		return err
	} else if len(existing) > 0 {
		return nil
	}

	milkTeas := []domain.MilkTea{
		{Name: "Trà sữa truyền thống", BasePrice: 25000, Description: "Hồng trà, sữa đặc", Rating: 4.8, IsActive: true},
		{Name: "Trà sữa matcha", BasePrice: 32000, Description: "Matcha Nhật, sữa tươi", Rating: 4.6, IsActive: true},
		{Name: "Trà sữa ô long", BasePrice: 30000, Description: "Ô long rang, kem sữa", Rating: 4.7, IsActive: true},
		{Name: "Trà đào cam sả", BasePrice: 35000, Description: "Đào miếng, cam vàng, sả", Rating: 4.9, IsActive: true},
		{Name: "Trà sữa khoai môn", BasePrice: 33000, Description: "Khoai môn nghiền", Rating: 4.4, IsActive: false},
	}
	for i := range milkTeas {
		if err := store.CreateMilkTea(ctx, &milkTeas[i]); err != nil {
			return err
		}
	}

	toppings := []domain.Topping{
		{Name: "Trân châu đen", Price: 5000, IsActive: true, Sellable: true},
		{Name: "Trân châu trắng", Price: 7000, IsActive: true, Sellable: true},
		{Name: "Pudding trứng", Price: 8000, IsActive: true, Sellable: true},
		{Name: "Thạch dừa", Price: 6000, IsActive: true, Sellable: false},
	}
	for i := range toppings {
		if err := store.CreateTopping(ctx, &toppings[i]); err != nil {
			return err
		}
	}

	for _, lv := range []int{0, 30, 50, 70, 100} {
		l := domain.SweetnessLevel{Level: lv, Label: strconv.Itoa(lv) + "%"}
		if err := store.CreateSweetnessLevel(ctx, &l); err != nil {
			return err
		}
	}

	iceLevels := []domain.IceLevel{
		{Level: 0, Label: "Không đá"},
		{Level: 50, Label: "Vừa"},
		{Level: 100, Label: "Đầy"},
	}
	for i := range iceLevels {
		if err := store.CreateIceLevel(ctx, &iceLevels[i]); err != nil {
			return err
		}
	}

	sizes := []domain.Size{
		{Name: "S", Price: 0},
		{Name: "M", Price: 2000},
		{Name: "L", Price: 4000},
	}
	for i := range sizes {
		if err := store.CreateSize(ctx, &sizes[i]); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("banhang123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	operator := domain.User{Email: "banhang@trasua.vn", Name: "Nhân viên bán hàng", PasswordHash: string(hash)}
	return store.CreateUser(ctx, &operator)
}
