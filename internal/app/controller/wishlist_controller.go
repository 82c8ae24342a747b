package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/service"
	apperrors "github.com/trendybazarr/trendybazarr-backend/internal/errors"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
)

type WishlistController struct {
	wishlistService service.WishlistService
}

func NewWishlistController(wishlistService service.WishlistService) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

type ToggleWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist returns the current user's wishlist
// GET /api/wishlist
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	items, err := ctrl.wishlistService.GetUserWishlist(userID)
	if err != nil {
		apperrors.InternalError(c, "Failed to load wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
	})
}

// Toggle adds the product to the wishlist, or removes it when already present
// POST /api/wishlist/toggle
func (ctrl *WishlistController) Toggle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	added, err := ctrl.wishlistService.Toggle(userID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "Failed to update wishlist")
		return
	}

	message := "Product removed from wishlist"
	if added {
		message = "Product added to wishlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"added":   added,
	})
}
