// internal/domain/order/entity.go
package order

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents order fulfillment status
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents payment status. It moves independently of
// OrderStatus; neither field constrains the other.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodEWallet      PaymentMethod = "e_wallet"
	PaymentMethodCOD          PaymentMethod = "cod"
)

// Order represents the order entity
type Order struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	InvoiceNumber   string         `gorm:"uniqueIndex;not null;size:100" json:"invoice_number"`
	UserID          string         `gorm:"not null;index;size:36" json:"user_id"`
	TotalAmount     int64          `gorm:"not null" json:"total_amount"`
	PaymentMethod   PaymentMethod  `gorm:"not null;size:50" json:"payment_method"`
	PaymentStatus   PaymentStatus  `gorm:"not null;size:50;default:'pending'" json:"payment_status"`
	OrderStatus     OrderStatus    `gorm:"not null;size:50;default:'processing'" json:"order_status"`
	ShippingName    string         `gorm:"not null;size:255" json:"shipping_name"`
	ShippingPhone   string         `gorm:"not null;size:50" json:"shipping_phone"`
	ShippingAddress string         `gorm:"not null;type:text" json:"shipping_address"`
	Notes           string         `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem represents a line item with product fields copied at
// purchase time, so later catalog edits never rewrite order history.
type OrderItem struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OrderID      string    `gorm:"not null;index;size:36" json:"order_id"`
	ProductID    string    `gorm:"size:36" json:"product_id"`
	ProductName  string    `gorm:"not null;size:255" json:"product_name"`
	ProductPrice int64     `gorm:"not null" json:"product_price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	ProductImage string    `gorm:"size:500" json:"product_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LocalOrder is the session-scoped legacy order record kept in the
// order cache container, mirroring what the order history page renders.
type LocalOrder struct {
	ID              string           `json:"id"`
	InvoiceNumber   string           `json:"invoice_number"`
	Date            time.Time        `json:"date"`
	Items           []LocalOrderItem `json:"items"`
	TotalAmount     int64            `json:"total_amount"`
	PaymentMethod   PaymentMethod    `json:"payment_method"`
	PaymentStatus   PaymentStatus    `json:"payment_status"`
	OrderStatus     OrderStatus      `json:"order_status"`
	ShippingName    string           `json:"shipping_name"`
	ShippingPhone   string           `json:"shipping_phone"`
	ShippingAddress string           `json:"shipping_address"`
}

// LocalOrderItem is one line of a cached local order
type LocalOrderItem struct {
	ID           string `json:"id"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	Quantity     int    `json:"quantity"`
	ProductImage string `json:"product_image"`
}

// ToLocal converts a persisted order into its cache representation
func (o *Order) ToLocal() LocalOrder {
	items := make([]LocalOrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = LocalOrderItem{
			ID:           item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			ProductImage: item.ProductImage,
		}
	}
	return LocalOrder{
		ID:              o.ID,
		InvoiceNumber:   o.InvoiceNumber,
		Date:            o.CreatedAt,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		OrderStatus:     o.OrderStatus,
		ShippingName:    o.ShippingName,
		ShippingPhone:   o.ShippingPhone,
		ShippingAddress: o.ShippingAddress,
	}
}
