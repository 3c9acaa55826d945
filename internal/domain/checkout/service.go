// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/domain/cart"
	"github.com/your-org/techstore-backend/internal/domain/order"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/pkg/invoice"
	"gorm.io/gorm"
)

// Service turns a session cart into a persisted order
type Service struct {
	db        *gorm.DB
	config    *config.Config
	products  *product.Service
	orders    *order.Service
	generator *invoice.Generator
	logger    *logrus.Logger
}

// NewService creates a new checkout service
func NewService(db *gorm.DB, cfg *config.Config, products *product.Service, orders *order.Service, generator *invoice.Generator, logger *logrus.Logger) *Service {
	return &Service{
		db:        db,
		config:    cfg,
		products:  products,
		orders:    orders,
		generator: generator,
		logger:    logger,
	}
}

// CheckoutRequest represents checkout form data
type CheckoutRequest struct {
	PaymentMethod   order.PaymentMethod `json:"payment_method" binding:"required,oneof=bank_transfer e_wallet cod"`
	ShippingName    string              `json:"shipping_name" binding:"required,max=255"`
	ShippingPhone   string              `json:"shipping_phone" binding:"required,max=50"`
	ShippingAddress string              `json:"shipping_address" binding:"required"`
	Notes           string              `json:"notes"`
}

// PlaceOrder creates an order from the session cart, mirrors it into
// the session's order cache, and clears the cart. The cache append and
// cart clear run sequentially after the order commits; each is
// best-effort and a failure there never undoes the order.
func (s *Service) PlaceOrder(ctx context.Context, userID string, sessionCart *cart.Container, orderCache *order.Cache, req *CheckoutRequest) (*order.Order, error) {
	var items []order.OrderItem
	var total int64

	// Incomplete snapshots are skipped the same way the totals skip them
	for _, entry := range sessionCart.Items() {
		if !entry.Product.IsComplete() {
			s.logger.WithField("product_id", entry.Product.ID).Warn("Skipping incomplete cart entry at checkout")
			continue
		}
		items = append(items, order.OrderItem{
			ID:           uuid.New().String(),
			ProductID:    entry.Product.ID,
			ProductName:  entry.Product.Name,
			ProductPrice: entry.Product.Price,
			Quantity:     entry.Quantity,
			ProductImage: entry.Product.PrimaryImage(),
		})
		total += entry.Product.Price * int64(entry.Quantity)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	o := &order.Order{
		ID:              uuid.New().String(),
		InvoiceNumber:   s.generator.Next(),
		UserID:          userID,
		TotalAmount:     total,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   order.PaymentStatusPending,
		OrderStatus:     order.OrderStatusProcessing,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		Items:           items,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for _, item := range items {
			if err := s.products.DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit session updates. No cross-container atomicity: a crash
	// between these leaves user-facing staleness, not a broken order.
	orderCache.AddOrder(ctx, o.ToLocal())
	sessionCart.Clear(ctx)

	s.logger.WithFields(logrus.Fields{
		"order_id":       o.ID,
		"invoice_number": o.InvoiceNumber,
		"total_amount":   o.TotalAmount,
	}).Info("Order placed")

	return o, nil
}
