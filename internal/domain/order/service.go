// internal/domain/order/service.go
package order

import (
	"fmt"

	"github.com/your-org/techstore-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page          int    `form:"page,default=1"`
	Limit         int    `form:"limit,default=20"`
	OrderStatus   string `form:"order_status"`
	PaymentStatus string `form:"payment_status"`
}

// OrderListResponse represents a page of orders
type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"total_pages"`
}

// UpdateStatusRequest represents an order status write. Any value may
// replace any other; transition validity is an admin workflow concern,
// not enforced here.
type UpdateStatusRequest struct {
	OrderStatus OrderStatus `json:"order_status" binding:"required,oneof=processing paid shipped completed cancelled"`
}

// UpdatePaymentStatusRequest represents a payment status write
type UpdatePaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required,oneof=pending paid failed"`
}

// DashboardStats represents the admin dashboard summary
type DashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	PendingOrders int64   `json:"pending_orders"`
	TotalRevenue  int64   `json:"total_revenue"`
	RecentOrders  []Order `json:"recent_orders"`
}

// Create persists a new order with its items
func (s *Service) Create(o *Order) error {
	if err := s.db.Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetOrders retrieves a user's orders, newest first
func (s *Service) GetOrders(userID string, req *OrderListRequest) (*OrderListResponse, error) {
	return s.listOrders(s.db.Where("user_id = ?", userID), req)
}

// GetAllOrders retrieves all orders for the admin console, newest first
func (s *Service) GetAllOrders(req *OrderListRequest) (*OrderListResponse, error) {
	return s.listOrders(s.db, req)
}

func (s *Service) listOrders(scope *gorm.DB, req *OrderListRequest) (*OrderListResponse, error) {
	var orders []Order
	var total int64

	query := scope.Model(&Order{}).Preload("Items")

	if req.OrderStatus != "" {
		query = query.Where("order_status = ?", req.OrderStatus)
	}
	if req.PaymentStatus != "" {
		query = query.Where("payment_status = ?", req.PaymentStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	return &OrderListResponse{
		Orders:     orders,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: int((total + int64(req.Limit) - 1) / int64(req.Limit)),
	}, nil
}

// GetOrder retrieves an order by ID scoped to its owner. An empty
// userID skips the ownership check (admin access).
func (s *Service) GetOrder(id, userID string) (*Order, error) {
	query := s.db.Preload("Items").Where("id = ?", id)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var o Order
	if result := query.First(&o); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &o, nil
}

// GetOrderByInvoice retrieves an order by its invoice number, scoped
// to its owner the same way GetOrder is.
func (s *Service) GetOrderByInvoice(invoiceNumber, userID string) (*Order, error) {
	query := s.db.Preload("Items").Where("invoice_number = ?", invoiceNumber)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var o Order
	if result := query.First(&o); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &o, nil
}

// UpdateStatus writes a new order status. No transition table is
// consulted; the previous value does not constrain the new one.
func (s *Service) UpdateStatus(id string, status OrderStatus) (*Order, error) {
	result := s.db.Model(&Order{}).Where("id = ?", id).Update("order_status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("order not found")
	}
	return s.GetOrder(id, "")
}

// UpdatePaymentStatus writes a new payment status independently of the
// order status.
func (s *Service) UpdatePaymentStatus(id string, status PaymentStatus) (*Order, error) {
	result := s.db.Model(&Order{}).Where("id = ?", id).Update("payment_status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("order not found")
	}
	return s.GetOrder(id, "")
}

// GetDashboardStats aggregates the admin dashboard numbers
func (s *Service) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Table("products").Where("deleted_at IS NULL").Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if err := s.db.Model(&Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := s.db.Model(&Order{}).Where("order_status = ?", OrderStatusProcessing).Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	if err := s.db.Model(&Order{}).
		Where("payment_status = ?", PaymentStatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.db.Preload("Items").Order("created_at DESC").Limit(5).Find(&stats.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve recent orders: %w", err)
	}

	return stats, nil
}
