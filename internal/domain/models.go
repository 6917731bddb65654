package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilkTea is a sellable drink from the menu. Reference data: the POS never
// mutates it outside of admin seeding.
type MilkTea struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:128"`
	BasePrice   int64          `json:"base_price"`
	Description string         `json:"description" gorm:"size:255"`
	ImageURL    string         `json:"image_url" gorm:"size:255"`
	Rating      float64        `json:"rating"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Topping can be attached to a cart line or sold as a standalone line.
type Topping struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:128"`
	Price     int64          `json:"price"`
	IsActive  bool           `json:"is_active"`
	Sellable  bool           `json:"sellable"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// SweetnessLevel is a selectable sugar percentage.
type SweetnessLevel struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Level     int            `json:"level"`
	Label     string         `json:"label" gorm:"size:32"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// IceLevel is a selectable ice amount.
type IceLevel struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Level     int            `json:"level"`
	Label     string         `json:"label" gorm:"size:32"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Size carries the per-unit surcharge added on top of the base price.
type Size struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:32"`
	Price     int64          `json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Cart line kinds.
const (
	ItemTypeProduct = "PRODUCT"
	ItemTypeTopping = "TOPPING"
)

// Payment method ids as the backend stores them.
const (
	PaymentMethodCash     int64 = 1
	PaymentMethodTransfer int64 = 2
)

// MaxNoteLength bounds the free-text note on a cart line.
const MaxNoteLength = 200

// CartItem is one customized line waiting for checkout. Name and price
// fields are snapshots resolved at creation time so the line survives later
// menu edits unchanged.
type CartItem struct {
	ID           int64          `json:"id" gorm:"primaryKey"`
	ItemType     string         `json:"item_type" gorm:"size:16"`
	ProductID    int64          `json:"product_id"`
	ProductName  string         `json:"product_name" gorm:"size:128"`
	ProductPrice int64          `json:"product_price"`
	ToppingID    int64          `json:"topping_id"`
	ToppingName  string         `json:"topping_name" gorm:"size:128"`
	ToppingPrice int64          `json:"topping_price"`
	Quantity     int64          `json:"quantity"`
	SweetnessID  string         `json:"sweetness_id" gorm:"size:8"`
	IceID        string         `json:"ice_id" gorm:"size:8"`
	SizeID       string         `json:"size_id" gorm:"size:8"`
	SizeName     string         `json:"size_name" gorm:"size:32"`
	SizePrice    int64          `json:"size_price"`
	Notes        string         `json:"notes" gorm:"size:200"`
	Toppings     []Topping      `json:"toppings" gorm:"many2many:cart_item_toppings"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Order is an immutable financial record. Only IsCompleted may flip after
// creation.
type Order struct {
	ID              int64          `json:"id" gorm:"primaryKey"`
	ReceiptCode     string         `json:"receipt_code" gorm:"size:36;uniqueIndex"`
	PaymentMethodID int64          `json:"payment_method_id"`
	OrderTime       time.Time      `json:"order_time" gorm:"index"`
	TotalAmount     int64          `json:"total_amount"`
	DiscountAmount  int64          `json:"discount_amount"`
	IsCompleted     bool           `json:"is_completed"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ReceiptCode == "" {
		o.ReceiptCode = uuid.New().String()
	}
	return nil
}

// OrderItem is the value snapshot of a cart line taken at checkout.
type OrderItem struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	OrderID     int64          `json:"order_id" gorm:"index"`
	ProductID   int64          `json:"product_id"`
	ProductName string         `json:"product_name" gorm:"size:128"`
	SizeID      string         `json:"size_id" gorm:"size:8"`
	SweetnessID string         `json:"sweetness_id" gorm:"size:8"`
	IceID       string         `json:"ice_id" gorm:"size:8"`
	Quantity    int64          `json:"quantity"`
	UnitPrice   int64          `json:"unit_price"`
	Notes       string         `json:"notes" gorm:"size:200"`
	Toppings    []Topping      `json:"toppings" gorm:"many2many:order_item_toppings"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// User is a shop operator account.
type User struct {
	ID           int64          `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"size:128;uniqueIndex"`
	Name         string         `json:"name" gorm:"size:128"`
	PasswordHash string         `json:"-" gorm:"size:128"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
