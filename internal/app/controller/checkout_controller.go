package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/service"
	apperrors "github.com/trendybazarr/trendybazarr-backend/internal/errors"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// Checkout records the checkout intent and empties the cart
// POST /api/checkout
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	intent, err := ctrl.checkoutService.Checkout(userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			apperrors.BadRequest(c, apperrors.CartEmpty, "Your cart is empty")
			return
		}
		apperrors.InternalError(c, "Failed to check out")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Checkout completed",
		"item_count":  intent.ItemCount,
		"total_price": intent.TotalPrice,
	})
}
