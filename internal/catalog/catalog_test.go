package catalog

import (
	"fmt"
	"testing"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Denim Jacket", Category: model.CategoryFashion, ProductType: "jacket", StyleType: "casual", Tags: []string{"denim", "winter"}, Price: 120, Rating: 4.5},
		{ID: 2, Name: "Leather Bag", Category: model.CategoryAccessories, ProductType: "bag", StyleType: "formal", Tags: []string{"leather"}, Price: 90, Rating: 4.8},
		{ID: 3, Name: "Smartphone X", Category: model.CategoryPhones, ProductType: "smartphone", StyleType: "tech", Tags: []string{"android"}, Price: 700, Rating: 4.2},
		{ID: 4, Name: "Wool Sweater", Category: model.CategoryFashion, ProductType: "sweater", StyleType: "casual", Tags: []string{"wool", "winter"}, Price: 60, Rating: 3.9},
	}
}

func TestFilter_DefaultReturnsAll(t *testing.T) {
	products := fixtureProducts()

	out := Filter(products, "default")
	assert.Len(t, out, len(products))

	out = Filter(products, "")
	assert.Len(t, out, len(products))
}

func TestFilter_MatchesCategoryCaseInsensitive(t *testing.T) {
	out := Filter(fixtureProducts(), "Fashion")
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(4), out[1].ID)
}

func TestFilter_MatchesNameTypeAndTags(t *testing.T) {
	products := fixtureProducts()

	byName := Filter(products, "denim jacket")
	require.Len(t, byName, 1)
	assert.Equal(t, uint(1), byName[0].ID)

	byType := Filter(products, "smartphone")
	require.Len(t, byType, 1)
	assert.Equal(t, uint(3), byType[0].ID)

	byStyle := Filter(products, "casual")
	assert.Len(t, byStyle, 2)

	byTag := Filter(products, "winter")
	assert.Len(t, byTag, 2)
}

func TestFilter_NoMatchReturnsEmpty(t *testing.T) {
	out := Filter(fixtureProducts(), "spaceship")
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	Filter(products, "fashion")
	assert.Equal(t, uint(1), products[0].ID)
	assert.Len(t, products, 4)
}

func TestSort_PriceLow(t *testing.T) {
	products := []model.Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 50},
		{ID: 3, Price: 200},
	}

	out := Sort(products, SortPriceLow)
	assert.Equal(t, []float64{50, 100, 200}, prices(out))

	// Input untouched
	assert.Equal(t, []float64{100, 50, 200}, prices(products))
}

func TestSort_PriceHigh(t *testing.T) {
	out := Sort(fixtureProducts(), SortPriceHigh)
	assert.Equal(t, []float64{700, 120, 90, 60}, prices(out))
}

func TestSort_Rating(t *testing.T) {
	out := Sort(fixtureProducts(), SortRating)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(4), out[3].ID)
}

func TestSort_FeaturedKeepsOrder(t *testing.T) {
	products := fixtureProducts()
	out := Sort(products, SortFeatured)
	for i := range products {
		assert.Equal(t, products[i].ID, out[i].ID)
	}
}

func TestSort_StableOnTies(t *testing.T) {
	products := []model.Product{
		{ID: 1, Price: 50},
		{ID: 2, Price: 50},
		{ID: 3, Price: 50},
	}

	out := Sort(products, SortPriceLow)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(2), out[1].ID)
	assert.Equal(t, uint(3), out[2].ID)
}

func TestPaginate(t *testing.T) {
	products := makeProducts(30)

	page1 := Paginate(products, 1)
	assert.Len(t, page1.Products, 12)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 30, page1.TotalItems)
	assert.Equal(t, uint(1), page1.Products[0].ID)

	page3 := Paginate(products, 3)
	assert.Len(t, page3.Products, 6)
	assert.Equal(t, uint(25), page3.Products[0].ID)
}

func TestPaginate_OutOfRange(t *testing.T) {
	products := makeProducts(5)

	assert.Len(t, Paginate(products, 0).Products, 0)
	assert.Len(t, Paginate(products, 2).Products, 0)
	assert.Len(t, Paginate(nil, 1).Products, 0)
}

func TestPaginate_ReconstructsWholeList(t *testing.T) {
	products := makeProducts(29)
	total := TotalPages(len(products))
	require.Equal(t, 3, total)

	var rebuilt []model.Product
	for page := 1; page <= total; page++ {
		rebuilt = append(rebuilt, Paginate(products, page).Products...)
	}

	require.Len(t, rebuilt, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, rebuilt[i].ID)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(12))
	assert.Equal(t, 2, TotalPages(13))
	assert.Equal(t, 3, TotalPages(36))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 30))
	assert.Equal(t, 1, ClampPage(-5, 30))
	assert.Equal(t, 2, ClampPage(2, 30))
	assert.Equal(t, 3, ClampPage(99, 30))
	assert.Equal(t, 1, ClampPage(99, 0))
}

func TestBrowse(t *testing.T) {
	products := fixtureProducts()

	page := Browse(products, "fashion", SortPriceLow, 1)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Wool Sweater", page.Products[0].Name)
	assert.Equal(t, "Denim Jacket", page.Products[1].Name)
	assert.Equal(t, 1, page.TotalPages)
}

func prices(products []model.Product) []float64 {
	out := make([]float64, len(products))
	for i, p := range products {
		out[i] = p.Price
	}
	return out
}

func makeProducts(n int) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{
			ID:       uint(i + 1),
			Name:     fmt.Sprintf("Product %d", i+1),
			Category: model.CategoryFashion,
			Price:    float64((i + 1) * 10),
		}
	}
	return out
}
