package repository

import (
	"testing"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductTest(t *testing.T) (*gorm.DB, ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewProductRepository(testDB)
	return testDB, repo
}

func newTestProduct(name string, category model.ProductCategory, price float64) *model.Product {
	size, _ := model.NewLetterSize([]model.LetterSize{model.LetterM, model.LetterL})
	return &model.Product{
		Name:        name,
		Description: "test product",
		Category:    category,
		ProductType: "casual",
		StyleType:   "regular",
		Gender:      model.GenderUnisex,
		Price:       price,
		Stock:       model.StockInStock,
		Size:        size,
		Rating:      4.0,
		Images: []model.ProductImage{
			{ImageURL: "https://cdn.example.com/" + name + "-black.jpg", Color: "black"},
			{ImageURL: "https://cdn.example.com/" + name + "-white.jpg", Color: "white", Position: 1},
		},
	}
}

func TestProductRepository_Create(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := newTestProduct("Plain Tee", model.CategoryFashion, 25)

	err := repo.Create(product)
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.NotZero(t, product.Images[0].ID)
}

func TestProductRepository_FindByID(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := newTestProduct("Plain Tee", model.CategoryFashion, 25)
	require.NoError(t, repo.Create(product))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, "Plain Tee", found.Name)
	assert.Len(t, found.Images, 2)
	assert.Equal(t, "black", found.DefaultImage().Color)
	assert.True(t, found.Size.Contains("M"))
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_FindAllOrdersByCreation(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestProduct("First", model.CategoryFashion, 10)))
	require.NoError(t, repo.Create(newTestProduct("Second", model.CategoryPhones, 500)))
	require.NoError(t, repo.Create(newTestProduct("Third", model.CategoryHomeLiving, 80)))

	products, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "First", products[0].Name)
	assert.Equal(t, "Third", products[2].Name)
}

func TestProductRepository_FindByCategory(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestProduct("Tee", model.CategoryFashion, 25)))
	require.NoError(t, repo.Create(newTestProduct("Phone", model.CategoryPhones, 700)))

	products, err := repo.FindByCategory(model.CategoryFashion)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tee", products[0].Name)
}

func TestProductRepository_FindWithFilter_Search(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestProduct("Denim Jacket", model.CategoryFashion, 120)))
	require.NoError(t, repo.Create(newTestProduct("Leather Bag", model.CategoryAccessories, 90)))

	products, err := repo.FindWithFilter(ProductFilter{Search: "Denim"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Denim Jacket", products[0].Name)
}

func TestProductRepository_Update(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := newTestProduct("Plain Tee", model.CategoryFashion, 25)
	require.NoError(t, repo.Create(product))

	product.Price = 30
	product.Name = "Premium Tee"
	err := repo.Update(product)
	assert.NoError(t, err)

	updated, _ := repo.FindByID(product.ID)
	assert.Equal(t, "Premium Tee", updated.Name)
	assert.Equal(t, 30.0, updated.Price)
}

func TestProductRepository_Delete(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := newTestProduct("Plain Tee", model.CategoryFashion, 25)
	require.NoError(t, repo.Create(product))

	err := repo.Delete(product.ID)
	assert.NoError(t, err)

	_, err = repo.FindByID(product.ID)
	assert.Error(t, err)
}

func TestProductRepository_UpdateStockStatus(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := newTestProduct("Plain Tee", model.CategoryFashion, 25)
	require.NoError(t, repo.Create(product))

	err := repo.UpdateStockStatus(product.ID, model.StockOutOfStock)
	assert.NoError(t, err)

	updated, _ := repo.FindByID(product.ID)
	assert.Equal(t, model.StockOutOfStock, updated.Stock)
}
