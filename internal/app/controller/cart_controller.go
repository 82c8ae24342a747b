package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/service"
	apperrors "github.com/trendybazarr/trendybazarr-backend/internal/errors"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// UpdateQuantityRequest carries the new quantity. Zero and negative values
// are accepted and clamped to one by the service.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the current user's cart with totals
// GET /api/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	summary, err := ctrl.cartService.GetUserCart(userID)
	if err != nil {
		apperrors.InternalError(c, "Failed to load cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       summary.Items,
		"total_items": summary.TotalItems,
		"total_price": summary.TotalPrice,
	})
}

// AddToCart adds a product line to the user's cart. Repeating the same
// product adds another line instead of increasing quantity.
// POST /api/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	item, err := ctrl.cartService.AddToCart(userID, req.ProductID, req.Quantity, req.Color, req.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrInvalidColor):
			apperrors.BadRequest(c, apperrors.CartInvalidColor, "This color is not available for the product")
		case errors.Is(err, service.ErrInvalidSize):
			apperrors.BadRequest(c, apperrors.CartInvalidSize, "This size is not available for the product")
		default:
			apperrors.InternalError(c, "Failed to add item to cart")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart",
		"item":    item,
	})
}

// UpdateQuantity changes a cart line's quantity. Values below one are
// clamped to one, never removed.
// PUT /api/cart/:id
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid cart item ID")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	item, err := ctrl.cartService.UpdateQuantity(userID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
		case errors.Is(err, service.ErrNotCartOwner):
			apperrors.Forbidden(c, "You can only modify your own cart")
		default:
			apperrors.InternalError(c, "Failed to update cart item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
		"item":    item,
	})
}

// RemoveItem deletes a single cart line
// DELETE /api/cart/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid cart item ID")
		return
	}

	if err := ctrl.cartService.RemoveFromCart(userID, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
		case errors.Is(err, service.ErrNotCartOwner):
			apperrors.Forbidden(c, "You can only modify your own cart")
		default:
			apperrors.InternalError(c, "Failed to remove cart item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
	})
}

// ClearCart removes every line from the user's cart
// DELETE /api/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := ctrl.cartService.ClearCart(userID); err != nil {
		apperrors.InternalError(c, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
