// Package catalog derives storefront category pages from a product list:
// filter by token, stable sort, fixed-size pagination. All functions are
// pure; input slices are never mutated.
package catalog

import (
	"sort"
	"strings"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
)

// PageSize is the number of products per catalog page.
const PageSize = 12

// DefaultToken returns the whole catalog unfiltered.
const DefaultToken = "default"

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

func IsValidSortKey(k SortKey) bool {
	switch k {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// Filter keeps products whose name, category, product type, style type or
// any tag equals the lower-cased token. The "default" token returns the
// input unchanged; an unmatched token returns an empty slice.
func Filter(products []model.Product, token string) []model.Product {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if normalized == "" || normalized == DefaultToken {
		out := make([]model.Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]model.Product, 0)
	for _, p := range products {
		if matchesToken(p, normalized) {
			out = append(out, p)
		}
	}
	return out
}

func matchesToken(p model.Product, token string) bool {
	if strings.ToLower(p.Name) == token {
		return true
	}
	if strings.ToLower(string(p.Category)) == token {
		return true
	}
	if strings.ToLower(p.ProductType) == token {
		return true
	}
	if strings.ToLower(p.StyleType) == token {
		return true
	}
	for _, tag := range p.Tags {
		if strings.ToLower(tag) == token {
			return true
		}
	}
	return false
}

// Sort orders a copy of the products by the given key. Ties keep their
// incoming relative order; SortFeatured (and unknown keys) return the
// input order untouched.
func Sort(products []model.Product, key SortKey) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}

// Page is one catalog page plus the page arithmetic the storefront needs
// to render its pager.
type Page struct {
	Products   []model.Product `json:"products"`
	PageNumber int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
}

// TotalPages returns how many pages n products occupy.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage forces page into [1, TotalPages(n)]; an empty catalog clamps
// to page 1.
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if total := TotalPages(n); total > 0 && page > total {
		return total
	}
	return page
}

// Paginate slices out the 1-based page of at most PageSize products.
// Out-of-range pages yield an empty product list, never an error.
func Paginate(products []model.Product, page int) Page {
	total := TotalPages(len(products))
	result := Page{
		PageNumber: page,
		TotalPages: total,
		TotalItems: len(products),
		Products:   []model.Product{},
	}

	if page < 1 || page > total {
		return result
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(products) {
		end = len(products)
	}

	result.Products = make([]model.Product, end-start)
	copy(result.Products, products[start:end])
	return result
}

// Browse runs the full pipeline: filter by token, sort, clamp the page
// and paginate.
func Browse(products []model.Product, token string, key SortKey, page int) Page {
	filtered := Filter(products, token)
	sorted := Sort(filtered, key)
	return Paginate(sorted, ClampPage(page, len(sorted)))
}
