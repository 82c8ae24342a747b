package service

import (
	"errors"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/repository"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrNotCartOwner     = errors.New("cart item belongs to another user")
	ErrInvalidColor     = errors.New("color is not available for this product")
	ErrInvalidSize      = errors.New("size is not available for this product")
)

// CartSummary is a user's cart plus derived totals. The total uses the
// discount price when one is set.
type CartSummary struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"total_items"`
	TotalPrice float64          `json:"total_price"`
}

type CartService interface {
	AddToCart(userID, productID uint, quantity int, color, size string) (*model.CartItem, error)
	GetUserCart(userID uint) (*CartSummary, error)
	UpdateQuantity(userID, cartItemID uint, quantity int) (*model.CartItem, error)
	RemoveFromCart(userID, cartItemID uint) error
	ClearCart(userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart appends a new line item. Repeated adds of the same product and
// variant produce separate line items; quantities are never merged.
func (s *cartService) AddToCart(userID, productID uint, quantity int, color, size string) (*model.CartItem, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
		"color":      color,
		"size":       size,
	})

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if !product.HasColor(color) {
		logger.Warn("Rejected cart add with unavailable color", map[string]interface{}{
			"product_id": productID,
			"color":      color,
		})
		return nil, ErrInvalidColor
	}
	if !product.Size.Contains(size) {
		logger.Warn("Rejected cart add with unavailable size", map[string]interface{}{
			"product_id": productID,
			"size":       size,
		})
		return nil, ErrInvalidSize
	}

	if quantity < 1 {
		quantity = 1
	}

	cartItem := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
	}

	if err := s.cartRepo.Create(cartItem); err != nil {
		return nil, err
	}
	cartItem.Product = *product

	logger.Info("Item added to cart", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"user_id":      userID,
		"product_id":   productID,
	})
	return cartItem, nil
}

func (s *cartService) GetUserCart(userID uint) (*CartSummary, error) {
	logger.Debug("Fetching user cart", map[string]interface{}{
		"user_id": userID,
	})

	items, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{Items: items}
	for _, item := range items {
		summary.TotalItems += item.Quantity

		unit := item.Product.Price
		if item.Product.DiscountPrice != nil {
			unit = *item.Product.DiscountPrice
		}
		summary.TotalPrice += unit * float64(item.Quantity)
	}

	return summary, nil
}

// UpdateQuantity sets a line item's quantity, clamping anything below one
// up to one. Removal happens through RemoveFromCart, never through a zero
// quantity.
func (s *cartService) UpdateQuantity(userID, cartItemID uint, quantity int) (*model.CartItem, error) {
	logger.Info("Updating cart item quantity", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": cartItemID,
		"quantity":     quantity,
	})

	cartItem, err := s.cartRepo.FindByID(cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if cartItem.UserID != userID {
		logger.Warn("Rejected cart update for another user's item", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": cartItemID,
			"owner_id":     cartItem.UserID,
		})
		return nil, ErrNotCartOwner
	}

	if quantity < 1 {
		quantity = 1
	}
	cartItem.Quantity = quantity

	if err := s.cartRepo.Update(cartItem); err != nil {
		return nil, err
	}

	return cartItem, nil
}

func (s *cartService) RemoveFromCart(userID, cartItemID uint) error {
	logger.Info("Removing item from cart", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": cartItemID,
	})

	cartItem, err := s.cartRepo.FindByID(cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}

	if cartItem.UserID != userID {
		logger.Warn("Rejected cart removal for another user's item", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": cartItemID,
			"owner_id":     cartItem.UserID,
		})
		return ErrNotCartOwner
	}

	return s.cartRepo.Delete(cartItemID)
}

func (s *cartService) ClearCart(userID uint) error {
	logger.Info("Clearing cart", map[string]interface{}{
		"user_id": userID,
	})
	return s.cartRepo.DeleteByUserID(userID)
}
