// Package storefront is the customer-facing read side. It keeps a
// periodically refreshed snapshot of the catalog fetched from the data API
// and derives category pages from it.
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/catalog"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
)

// Snapshot holds the last successfully fetched catalog. Products are stored
// most-recently-added first, so page 1 of any category shows the newest
// arrivals.
type Snapshot struct {
	client *Client

	mu          sync.RWMutex
	products    []model.Product
	refreshedAt time.Time
	loaded      bool
}

func NewSnapshot(client *Client) *Snapshot {
	return &Snapshot{client: client}
}

// Refresh replaces the snapshot with a fresh fetch. A failed fetch keeps
// the previous snapshot in place.
func (s *Snapshot) Refresh(ctx context.Context) error {
	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		logger.Error("Catalog refresh failed", err, nil)
		return err
	}

	// Newest first
	reversed := make([]model.Product, len(products))
	for i, p := range products {
		reversed[len(products)-1-i] = p
	}

	s.mu.Lock()
	s.products = reversed
	s.refreshedAt = time.Now()
	s.loaded = true
	s.mu.Unlock()

	logger.Info("Catalog snapshot refreshed", map[string]interface{}{
		"products": len(reversed),
	})
	return nil
}

// Loaded reports whether at least one refresh has succeeded.
func (s *Snapshot) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// RefreshedAt returns when the snapshot was last replaced.
func (s *Snapshot) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

// Browse derives one category page: filter by token, stable sort, paginate.
// The page number is clamped into the valid range.
func (s *Snapshot) Browse(token string, key catalog.SortKey, page int) (catalog.Page, bool) {
	s.mu.RLock()
	products := s.products
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		return catalog.Page{}, false
	}

	filtered := catalog.Filter(products, token)
	sorted := catalog.Sort(filtered, key)
	page = catalog.ClampPage(page, len(sorted))
	return catalog.Paginate(sorted, page), true
}

// Product looks a product up by ID in the snapshot.
func (s *Snapshot) Product(id uint) (*model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, false
	}
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}
