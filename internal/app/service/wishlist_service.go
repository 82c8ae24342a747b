package service

import (
	"errors"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/repository"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
	"gorm.io/gorm"
)

type WishlistService interface {
	Toggle(userID, productID uint) (added bool, err error)
	GetUserWishlist(userID uint) ([]model.WishlistItem, error)
	Contains(userID, productID uint) (bool, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Toggle adds the product to the wishlist when absent and removes it when
// present. The returned bool reports the resulting membership.
func (s *wishlistService) Toggle(userID, productID uint) (bool, error) {
	logger.Info("Toggling wishlist item", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	existing, err := s.wishlistRepo.FindByUserAndProduct(userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if existing != nil {
		if err := s.wishlistRepo.DeleteByUserAndProduct(userID, productID); err != nil {
			return false, err
		}
		logger.Info("Wishlist item removed", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return false, nil
	}

	item := &model.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.wishlistRepo.Create(item); err != nil {
		return false, err
	}

	logger.Info("Wishlist item added", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return true, nil
}

func (s *wishlistService) GetUserWishlist(userID uint) ([]model.WishlistItem, error) {
	logger.Debug("Fetching user wishlist", map[string]interface{}{
		"user_id": userID,
	})
	return s.wishlistRepo.FindByUserID(userID)
}

func (s *wishlistService) Contains(userID, productID uint) (bool, error) {
	_, err := s.wishlistRepo.FindByUserAndProduct(userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
