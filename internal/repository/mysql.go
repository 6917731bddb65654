package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trasua/internal/domain"
)

// SQLStore implements Store on top of gorm/MySQL.
type SQLStore struct {
	db *gorm.DB
}

var _ Store = (*SQLStore)(nil)

// OpenMySQL connects with pooled settings and returns a ready SQLStore.
func OpenMySQL(dsn string) (*SQLStore, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return &SQLStore{db: gdb}, nil
}

// NewSQLStore wraps an existing gorm handle (tests, CLI).
func NewSQLStore(db *gorm.DB) *SQLStore { return &SQLStore{db: db} }

// AutoMigrate applies the POS schema.
func (s *SQLStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&domain.MilkTea{},
		&domain.Topping{},
		&domain.SweetnessLevel{},
		&domain.IceLevel{},
		&domain.Size{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.User{},
	)
}

// sqlTxKey carries an open transaction through the context so repository
// calls inside WithTransaction reuse it.
type sqlTxKey struct{}

func (s *SQLStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(sqlTxKey{}).(*gorm.DB); ok {
		return tx
	}
	return s.db.WithContext(ctx)
}

func (s *SQLStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, sqlTxKey{}, tx))
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// CatalogRepository

func (s *SQLStore) CreateMilkTea(ctx context.Context, m *domain.MilkTea) error {
	return s.conn(ctx).Create(m).Error
}

func (s *SQLStore) GetMilkTea(ctx context.Context, id int64) (*domain.MilkTea, error) {
	var m domain.MilkTea
	if err := s.conn(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *SQLStore) UpdateMilkTea(ctx context.Context, m *domain.MilkTea) error {
	res := s.conn(ctx).Model(&domain.MilkTea{}).Where("id = ?", m.ID).
		Updates(map[string]any{"name": m.Name, "base_price": m.BasePrice, "is_active": m.IsActive})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) ListMilkTeas(ctx context.Context, f CatalogFilter) ([]domain.MilkTea, error) {
	q := s.conn(ctx).Model(&domain.MilkTea{})
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []domain.MilkTea
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) CreateTopping(ctx context.Context, t *domain.Topping) error {
	return s.conn(ctx).Create(t).Error
}

func (s *SQLStore) GetTopping(ctx context.Context, id int64) (*domain.Topping, error) {
	var t domain.Topping
	if err := s.conn(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *SQLStore) ListToppings(ctx context.Context, f CatalogFilter) ([]domain.Topping, error) {
	q := s.conn(ctx).Model(&domain.Topping{})
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.SellableOnly {
		q = q.Where("sellable = ?", true)
	}
	var out []domain.Topping
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) CreateSweetnessLevel(ctx context.Context, l *domain.SweetnessLevel) error {
	return s.conn(ctx).Create(l).Error
}

func (s *SQLStore) ListSweetnessLevels(ctx context.Context) ([]domain.SweetnessLevel, error) {
	var out []domain.SweetnessLevel
	if err := s.conn(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) CreateIceLevel(ctx context.Context, l *domain.IceLevel) error {
	return s.conn(ctx).Create(l).Error
}

func (s *SQLStore) ListIceLevels(ctx context.Context) ([]domain.IceLevel, error) {
	var out []domain.IceLevel
	if err := s.conn(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) CreateSize(ctx context.Context, sz *domain.Size) error {
	return s.conn(ctx).Create(sz).Error
}

func (s *SQLStore) GetSize(ctx context.Context, id int64) (*domain.Size, error) {
	var sz domain.Size
	if err := s.conn(ctx).First(&sz, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sz, nil
}

func (s *SQLStore) ListSizes(ctx context.Context) ([]domain.Size, error) {
	var out []domain.Size
	if err := s.conn(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CartRepository

func (s *SQLStore) CreateCartItem(ctx context.Context, item *domain.CartItem) error {
	return s.conn(ctx).Create(item).Error
}

func (s *SQLStore) GetCartItem(ctx context.Context, id int64) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := s.conn(ctx).Preload("Toppings").First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *SQLStore) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := s.conn(ctx).Preload("Toppings").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) AttachCartItemTopping(ctx context.Context, cartItemID int64, t domain.Topping) error {
	var item domain.CartItem
	if err := s.conn(ctx).First(&item, cartItemID).Error; err != nil {
		return translate(err)
	}
	return s.conn(ctx).Model(&item).Association("Toppings").Append(&t)
}

func (s *SQLStore) DeleteCartItem(ctx context.Context, id int64) error {
	res := s.conn(ctx).Delete(&domain.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) ClearCart(ctx context.Context) error {
	return s.conn(ctx).Where("1 = 1").Delete(&domain.CartItem{}).Error
}

// OrderRepository

func (s *SQLStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	return s.conn(ctx).Create(o).Error
}

func (s *SQLStore) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := s.conn(ctx).Preload("Items").Preload("Items.Toppings").First(&o, id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (s *SQLStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := s.conn(ctx).Preload("Items").Preload("Items.Toppings").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) UpdateOrder(ctx context.Context, o *domain.Order) error {
	res := s.conn(ctx).Model(&domain.Order{}).Where("id = ?", o.ID).
		Updates(map[string]any{"is_completed": o.IsCompleted})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) CreateOrderItem(ctx context.Context, item *domain.OrderItem) error {
	var count int64
	if err := s.conn(ctx).Model(&domain.Order{}).Where("id = ?", item.OrderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return s.conn(ctx).Create(item).Error
}

// UserRepository

func (s *SQLStore) CreateUser(ctx context.Context, u *domain.User) error {
	return s.conn(ctx).Create(u).Error
}

func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := s.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
