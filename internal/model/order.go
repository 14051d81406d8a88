package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order status state machine. Transitions are provider-initiated:
//
//	pending → confirmed → in_transit → delivered
//	pending → cancelled
//	confirmed → cancelled
//
// delivered and cancelled are terminal.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderInTransit = "in_transit"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Payment status values mirror the store's payment_status column.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Order is a customer purchase from a single Provider. TotalAmount is the sum
// of its items' subtotals at creation time.
type Order struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber       string    `gorm:"uniqueIndex;not null"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ProviderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending'"`
	DeliveryAddress   string    `gorm:"not null"`
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	ScheduledDate     *time.Time
	IsImmediate       bool            `gorm:"not null;default:true"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentStatus     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod     *string
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Customer *Profile    `gorm:"foreignKey:CustomerID"`
	Provider *Provider   `gorm:"foreignKey:ProviderID"`
	Items    []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is an immutable line item. UnitPrice is the product price at the
// moment the order was placed.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string { return "order_items" }
