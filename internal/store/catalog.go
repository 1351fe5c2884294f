package store

import (
	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/pkg/util"
)

// ReplaceCatalog swaps in a freshly fetched catalog. Failed fetches
// never reach this method, so the previous catalog survives any load
// error untouched.
func (s *Store) ReplaceCatalog(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append([]models.Product(nil), products...)
}

// Catalog returns a copy of the full product list in catalog order.
func (s *Store) Catalog() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.catalog...)
}

// Categories derives the distinct category tokens in first-seen order.
// It is recomputed from the live catalog on every call; the synthetic
// "all" token is not included.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]string, 0, len(s.catalog))
	for _, p := range s.catalog {
		if util.SliceIncludes(categories, p.Category) {
			continue
		}
		categories = append(categories, p.Category)
	}
	return categories
}

// Product looks up a catalog entry by id.
func (s *Store) Product(id int64) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findProduct(id)
}
