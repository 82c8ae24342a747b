package repository

import (
	"testing"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartTest(t *testing.T) (*gorm.DB, CartRepository, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewCartRepository(testDB)

	// Create test user
	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	// Create test product
	size, err := model.NewLetterSize([]model.LetterSize{model.LetterS, model.LetterM})
	require.NoError(t, err)
	product := &model.Product{
		Name:     "Denim Jacket",
		Price:    120,
		Category: model.CategoryFashion,
		Gender:   model.GenderUnisex,
		Stock:    model.StockInStock,
		Size:     size,
		Images: []model.ProductImage{
			{ImageURL: "https://cdn.example.com/denim-blue.jpg", Color: "blue"},
		},
	}
	testDB.Create(product)

	return testDB, repo, user, product
}

func TestCartRepository_Create(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}

	err := repo.Create(cartItem)
	assert.NoError(t, err)
	assert.NotZero(t, cartItem.ID)
}

func TestCartRepository_CreateKeepsDuplicateLines(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	// Same product and variant twice: two separate rows, no merging
	item1 := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1, Color: "blue", Size: "M"}
	item2 := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1, Color: "blue", Size: "M"}

	require.NoError(t, repo.Create(item1))
	require.NoError(t, repo.Create(item2))

	items, err := repo.FindByUserID(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestCartRepository_FindByUserID(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	item1 := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2, Color: "blue", Size: "S"}
	item2 := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1, Color: "blue", Size: "M"}

	repo.Create(item1)
	repo.Create(item2)

	items, err := repo.FindByUserID(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Denim Jacket", items[0].Product.Name)
}

func TestCartRepository_FindByID(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  3,
		Color:     "blue",
		Size:      "M",
	}
	repo.Create(cartItem)

	found, err := repo.FindByID(cartItem.ID)
	require.NoError(t, err)
	assert.Equal(t, cartItem.ID, found.ID)
	assert.Equal(t, 3, found.Quantity)
	assert.Equal(t, "blue", found.Color)
	assert.Equal(t, "M", found.Size)
	assert.NotNil(t, found.Product)
}

func TestCartRepository_Update(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}
	repo.Create(cartItem)

	// Update quantity
	cartItem.Quantity = 5
	err := repo.Update(cartItem)
	assert.NoError(t, err)

	// Verify
	updated, _ := repo.FindByID(cartItem.ID)
	assert.Equal(t, 5, updated.Quantity)
}

func TestCartRepository_Delete(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	cartItem := &model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Color:     "blue",
		Size:      "M",
	}
	repo.Create(cartItem)

	err := repo.Delete(cartItem.ID)
	assert.NoError(t, err)

	// Verify deletion
	_, err = repo.FindByID(cartItem.ID)
	assert.Error(t, err)
}

func TestCartRepository_DeleteByUserID(t *testing.T) {
	testDB, repo, user, product := setupCartTest(t)
	defer db.CleanupTestDB(testDB)

	repo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1, Color: "blue", Size: "S"})
	repo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2, Color: "blue", Size: "M"})

	err := repo.DeleteByUserID(user.ID)
	assert.NoError(t, err)

	// Verify all deleted
	items, _ := repo.FindByUserID(user.ID)
	assert.Len(t, items, 0)
}
