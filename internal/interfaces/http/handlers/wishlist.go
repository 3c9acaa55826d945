// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/domain/wishlist"
	"github.com/your-org/techstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/techstore-backend/internal/statestore"
	"gorm.io/gorm"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	productService *product.Service
	store          statestore.Store
	config         *config.Config
	logger         *logrus.Logger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(db *gorm.DB, store statestore.Store, cfg *config.Config, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{
		productService: product.NewService(db, cfg),
		store:          store,
		config:         cfg,
		logger:         logger,
	}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (h *WishlistHandler) loadWishlist(c *gin.Context) *wishlist.Container {
	return wishlist.Load(c.Request.Context(), h.store, middleware.GetSessionID(c), h.logger)
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	container := h.loadWishlist(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"items": container.Items(),
		},
	})
}

// AddToWishlist handles POST /wishlist/items. Adding a product already
// on the wishlist is a no-op, not an error.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	p, err := h.productService.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	container := h.loadWishlist(c)
	container.AddItem(c.Request.Context(), p.ToSnapshot())

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated",
		"data": gin.H{
			"items": container.Items(),
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	container := h.loadWishlist(c)
	container.RemoveItem(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated",
		"data": gin.H{
			"items": container.Items(),
		},
	})
}

// Contains handles GET /wishlist/contains/:id
func (h *WishlistHandler) Contains(c *gin.Context) {
	container := h.loadWishlist(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist membership checked",
		"data": gin.H{
			"product_id":  c.Param("id"),
			"in_wishlist": container.Contains(c.Param("id")),
		},
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	container := h.loadWishlist(c)
	container.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared",
		"data": gin.H{
			"items": container.Items(),
		},
	})
}
