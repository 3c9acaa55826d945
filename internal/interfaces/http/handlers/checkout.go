// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/domain/cart"
	"github.com/your-org/techstore-backend/internal/domain/checkout"
	"github.com/your-org/techstore-backend/internal/domain/order"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/techstore-backend/internal/pkg/invoice"
	"github.com/your-org/techstore-backend/internal/statestore"
	"gorm.io/gorm"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	store           statestore.Store
	config          *config.Config
	logger          *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, store statestore.Store, cfg *config.Config, generator *invoice.Generator, logger *logrus.Logger) *CheckoutHandler {
	products := product.NewService(db, cfg)
	orders := order.NewService(db, cfg)

	return &CheckoutHandler{
		checkoutService: checkout.NewService(db, cfg, products, orders, generator, logger),
		store:           store,
		config:          cfg,
		logger:          logger,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkout.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetString("user_id")
	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	sessionCart := cart.Load(ctx, h.store, sessionID, h.logger)
	orderCache := order.LoadCache(ctx, h.store, sessionID, h.logger)

	o, err := h.checkoutService.PlaceOrder(ctx, userID, sessionCart, orderCache, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    o,
	})
}
