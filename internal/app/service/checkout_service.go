package service

import (
	"errors"

	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutIntent is what the checkout records before the cart is cleared.
// Order management lives in a separate fulfilment system; this service only
// hands the intent off and destroys the cart line items.
type CheckoutIntent struct {
	UserID     uint    `json:"user_id"`
	ItemCount  int     `json:"item_count"`
	TotalPrice float64 `json:"total_price"`
}

type CheckoutService interface {
	Checkout(userID uint) (*CheckoutIntent, error)
}

type checkoutService struct {
	cartService CartService
}

func NewCheckoutService(cartService CartService) CheckoutService {
	return &checkoutService{cartService: cartService}
}

func (s *checkoutService) Checkout(userID uint) (*CheckoutIntent, error) {
	summary, err := s.cartService.GetUserCart(userID)
	if err != nil {
		return nil, err
	}

	if len(summary.Items) == 0 {
		logger.Warn("Checkout rejected: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	intent := &CheckoutIntent{
		UserID:     userID,
		ItemCount:  summary.TotalItems,
		TotalPrice: summary.TotalPrice,
	}

	logger.Info("Checkout intent recorded", map[string]interface{}{
		"user_id":     intent.UserID,
		"item_count":  intent.ItemCount,
		"total_price": intent.TotalPrice,
	})

	if err := s.cartService.ClearCart(userID); err != nil {
		return nil, err
	}

	return intent, nil
}
