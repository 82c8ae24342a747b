package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/repository"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/service"
	"github.com/trendybazarr/trendybazarr-backend/internal/db"
	"gorm.io/gorm"
)

func setupCartControllerTest(t *testing.T) (*CartController, *gin.Engine, *gorm.DB, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartService := service.NewCartService(cartRepo, productRepo)
	cartController := NewCartController(cartService)

	user := &model.User{
		Email:        "shopper@example.com",
		PasswordHash: "hash",
		Name:         "Test Shopper",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	size, err := model.NewLetterSize([]model.LetterSize{model.LetterS, model.LetterM})
	require.NoError(t, err)

	product := &model.Product{
		Name:        "Denim Jacket",
		Description: "Classic denim jacket",
		Category:    model.CategoryFashion,
		ProductType: "jacket",
		StyleType:   "casual",
		Gender:      model.GenderUnisex,
		Price:       100,
		Stock:       model.StockInStock,
		Size:        size,
		Rating:      4.2,
		Images: []model.ProductImage{
			{ImageURL: "https://cdn.example.com/jacket-blue.jpg", Color: "blue", Position: 0},
		},
	}
	testDB.Create(product)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return cartController, router, testDB, user, product
}

// Helper function to set user ID in context
func setUserIDInContext(c *gin.Context, userID uint) {
	c.Set("user_id", userID)
}

func TestCartController_GetCart_Success(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	cartRepo := repository.NewCartRepository(testDB)
	cartRepo.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	})

	router.GET("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.GetCart(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(2), response["total_items"])
	assert.Equal(t, float64(200), response["total_price"]) // 100 * 2
}

func TestCartController_GetCart_Empty(t *testing.T) {
	controller, router, _, user, _ := setupCartControllerTest(t)

	router.GET("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.GetCart(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(0), response["total_items"])
	assert.Equal(t, float64(0), response["total_price"])
}

func TestCartController_GetCart_Unauthorized(t *testing.T) {
	controller, router, _, _, _ := setupCartControllerTest(t)

	router.GET("/cart", controller.GetCart)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "AUTH_UNAUTHORIZED", response["error"])
}

func TestCartController_AddToCart_Success(t *testing.T) {
	controller, router, _, user, product := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.AddToCart(c)
	})

	reqBody := AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Item added to cart", response["message"])
}

func TestCartController_AddToCart_RepeatCreatesNewLine(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.AddToCart(c)
	})

	reqBody := AddToCartRequest{
		ProductID: product.ID,
		Quantity:  1,
		Color:     "blue",
		Size:      "S",
	}
	jsonBody, _ := json.Marshal(reqBody)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	cartRepo := repository.NewCartRepository(testDB)
	items, err := cartRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCartController_AddToCart_Unauthorized(t *testing.T) {
	controller, router, _, _, product := setupCartControllerTest(t)

	router.POST("/cart", controller.AddToCart)

	reqBody := AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartController_AddToCart_ProductNotFound(t *testing.T) {
	controller, router, _, user, _ := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.AddToCart(c)
	})

	reqBody := AddToCartRequest{
		ProductID: 9999,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Product not found", response["message"])
}

func TestCartController_AddToCart_InvalidVariant(t *testing.T) {
	controller, router, _, user, product := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.AddToCart(c)
	})

	tests := []struct {
		name      string
		color     string
		size      string
		wantError string
	}{
		{
			name:      "Unavailable color",
			color:     "red",
			size:      "M",
			wantError: "CART_INVALID_COLOR",
		},
		{
			name:      "Unavailable size",
			color:     "blue",
			size:      "XXL",
			wantError: "CART_INVALID_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody := AddToCartRequest{
				ProductID: product.ID,
				Quantity:  1,
				Color:     tt.color,
				Size:      tt.size,
			}

			jsonBody, _ := json.Marshal(reqBody)
			req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)

			assert.Equal(t, tt.wantError, response["error"])
		})
	}
}

func TestCartController_AddToCart_MissingProductID(t *testing.T) {
	controller, router, _, user, _ := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.AddToCart(c)
	})

	jsonBody, _ := json.Marshal(map[string]interface{}{"quantity": 2})
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Invalid request data", response["message"])
}

func TestCartController_UpdateQuantity_Success(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	cartRepo := repository.NewCartRepository(testDB)
	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}
	cartRepo.Create(cartItem)

	router.PUT("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.UpdateQuantity(c)
	})

	reqBody := UpdateQuantityRequest{
		Quantity: 5,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/cart/1", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	updated, err := cartRepo.FindByID(cartItem.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
}

func TestCartController_UpdateQuantity_ClampsToOne(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	cartRepo := repository.NewCartRepository(testDB)
	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  3,
		Color:     "blue",
		Size:      "M",
	}
	cartRepo.Create(cartItem)

	router.PUT("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.UpdateQuantity(c)
	})

	reqBody := UpdateQuantityRequest{
		Quantity: -4,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/cart/1", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	updated, err := cartRepo.FindByID(cartItem.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
}

func TestCartController_UpdateQuantity_NotFound(t *testing.T) {
	controller, router, _, user, _ := setupCartControllerTest(t)

	router.PUT("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.UpdateQuantity(c)
	})

	reqBody := UpdateQuantityRequest{
		Quantity: 5,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/cart/9999", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "CART_ITEM_NOT_FOUND", response["error"])
}

func TestCartController_UpdateQuantity_InvalidID(t *testing.T) {
	controller, router, _, user, _ := setupCartControllerTest(t)

	router.PUT("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.UpdateQuantity(c)
	})

	reqBody := UpdateQuantityRequest{
		Quantity: 5,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/cart/invalid", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Invalid cart item ID", response["message"])
}

func TestCartController_UpdateQuantity_WrongOwner(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	other := &model.User{
		Email:        "other@example.com",
		PasswordHash: "hash",
		Name:         "Other User",
		Role:         model.RoleUser,
	}
	testDB.Create(other)

	cartRepo := repository.NewCartRepository(testDB)
	cartItem := &model.CartItem{
		UserID:    other.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}
	cartRepo.Create(cartItem)

	router.PUT("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.UpdateQuantity(c)
	})

	reqBody := UpdateQuantityRequest{
		Quantity: 5,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/cart/1", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCartController_RemoveItem_Success(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	cartRepo := repository.NewCartRepository(testDB)
	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}
	cartRepo.Create(cartItem)

	router.DELETE("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.RemoveItem(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	items, _ := cartRepo.FindByUserID(user.ID)
	assert.Len(t, items, 0)
}

func TestCartController_RemoveItem_NotFound(t *testing.T) {
	controller, router, _, user, _ := setupCartControllerTest(t)

	router.DELETE("/cart/:id", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.RemoveItem(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartController_ClearCart_Success(t *testing.T) {
	controller, router, testDB, user, product := setupCartControllerTest(t)

	cartRepo := repository.NewCartRepository(testDB)
	cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2, Color: "blue", Size: "M"})
	cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 3, Color: "blue", Size: "S"})

	router.DELETE("/cart", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.ClearCart(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Cart cleared", response["message"])

	items, _ := cartRepo.FindByUserID(user.ID)
	assert.Len(t, items, 0)
}

func TestCartController_ClearCart_Unauthorized(t *testing.T) {
	controller, router, _, _, _ := setupCartControllerTest(t)

	router.DELETE("/cart", controller.ClearCart)

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
