// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/domain/order"
	"github.com/your-org/techstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/techstore-backend/internal/pkg/invoice"
	"github.com/your-org/techstore-backend/internal/statestore"
	"gorm.io/gorm"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *order.Service
	pdfService   *invoice.PDFService
	store        statestore.Store
	config       *config.Config
	logger       *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, store statestore.Store, cfg *config.Config, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: order.NewService(db, cfg),
		pdfService:   invoice.NewPDFService(cfg),
		store:        store,
		config:       cfg,
		logger:       logger,
	}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var req order.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.orderService.GetOrders(c.GetString("user_id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    resp,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orderService.GetOrder(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// GetOrderByInvoice handles GET /invoices/:invoice_number
func (h *OrderHandler) GetOrderByInvoice(c *gin.Context) {
	o, err := h.orderService.GetOrderByInvoice(c.Param("invoice_number"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// DownloadInvoice handles GET /orders/:id/invoice, returning the
// rendered PDF for the owning user.
func (h *OrderHandler) DownloadInvoice(c *gin.Context) {
	o, err := h.orderService.GetOrder(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	pdf, err := h.pdfService.Generate(o)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", o.ID).Error("Invoice PDF generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	filename := fmt.Sprintf("%s.pdf", o.InvoiceNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}

// GetLocalOrders handles GET /local-orders: the session's legacy order
// cache, newest first.
func (h *OrderHandler) GetLocalOrders(c *gin.Context) {
	cache := order.LoadCache(c.Request.Context(), h.store, middleware.GetSessionID(c), h.logger)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cached orders retrieved successfully",
		"data": gin.H{
			"orders": cache.Orders(),
		},
	})
}

// GetLocalOrderByInvoice handles GET /local-orders/:invoice_number,
// the legacy invoice page lookup against the session cache.
func (h *OrderHandler) GetLocalOrderByInvoice(c *gin.Context) {
	cache := order.LoadCache(c.Request.Context(), h.store, middleware.GetSessionID(c), h.logger)

	o := cache.GetOrderByInvoice(c.Param("invoice_number"))
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}
