package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)
	svc := NewCheckoutService(cartService)

	_, err := cartService.AddToCart(user.ID, product.ID, 2, "blue", "M")
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, product.ID, 1, "black", "S")
	require.NoError(t, err)

	intent, err := svc.Checkout(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, intent.UserID)
	assert.Equal(t, 3, intent.ItemCount)
	assert.Equal(t, 360.0, intent.TotalPrice)

	// The cart is cleared once the intent is recorded
	summary, err := cartService.GetUserCart(user.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 0)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	cartService, user, _, _ := setupCartServiceTest(t)
	svc := NewCheckoutService(cartService)

	_, err := svc.Checkout(user.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)
}
