// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/domain/cart"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/techstore-backend/internal/pkg/currency"
	"github.com/your-org/techstore-backend/internal/statestore"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	productService *product.Service
	store          statestore.Store
	config         *config.Config
	logger         *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, store statestore.Store, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		productService: product.NewService(db, cfg),
		store:          store,
		config:         cfg,
		logger:         logger,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest represents update cart item request. A zero or
// negative quantity removes the entry.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartTotals represents the cart's aggregate queries
type CartTotals struct {
	TotalItems   int    `json:"total_items"`
	TotalPrice   int64  `json:"total_price"`
	TotalDisplay string `json:"total_display"`
}

// CartResponse represents the session cart
type CartResponse struct {
	Items  []cart.Entry `json:"items"`
	Totals CartTotals   `json:"totals"`
}

func (h *CartHandler) loadCart(c *gin.Context) *cart.Container {
	return cart.Load(c.Request.Context(), h.store, middleware.GetSessionID(c), h.logger)
}

func cartResponse(container *cart.Container) CartResponse {
	totalPrice := container.TotalPrice()
	return CartResponse{
		Items: container.Items(),
		Totals: CartTotals{
			TotalItems:   container.TotalItems(),
			TotalPrice:   totalPrice,
			TotalDisplay: currency.FormatIDR(totalPrice),
		},
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	container := h.loadCart(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse(container),
	})
}

// GetTotals handles GET /cart/totals
func (h *CartHandler) GetTotals(c *gin.Context) {
	container := h.loadCart(c)
	totalPrice := container.TotalPrice()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart totals retrieved successfully",
		"data": CartTotals{
			TotalItems:   container.TotalItems(),
			TotalPrice:   totalPrice,
			TotalDisplay: currency.FormatIDR(totalPrice),
		},
	})
}

// AddToCart handles POST /cart/items. The product is snapshotted from
// the catalog at add time. A malformed product id never errors: the
// container treats it as a logged no-op and the cart is returned
// unchanged.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	container := h.loadCart(c)

	if cart.IsStableID(req.ProductID) {
		p, err := h.productService.GetProduct(req.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		container.AddItem(c.Request.Context(), p.ToSnapshot())
	} else {
		// Malformed id: the container logs and ignores it, and the cart
		// is returned unchanged
		container.AddItem(c.Request.Context(), product.Snapshot{ID: req.ProductID})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartResponse(container),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	container := h.loadCart(c)
	container.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartResponse(container),
	})
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	container := h.loadCart(c)
	container.RemoveItem(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartResponse(container),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	container := h.loadCart(c)
	container.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    cartResponse(container),
	})
}
