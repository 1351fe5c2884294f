package store

import "github.com/tokoku/storefront/internal/models"

// SelectCategory sets the active category. Any token is accepted; a
// token absent from the catalog simply yields an empty visible set,
// which keeps selection decoupled from catalog refresh timing.
func (s *Store) SelectCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCategory = category
}

func (s *Store) ActiveCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCategory
}

// VisibleProducts returns the catalog filtered by the active category,
// preserving catalog order. The result is recomputed on every call so
// it can never go stale against a replaced catalog.
func (s *Store) VisibleProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeCategory == CategoryAll {
		return append([]models.Product(nil), s.catalog...)
	}

	visible := make([]models.Product, 0, len(s.catalog))
	for _, p := range s.catalog {
		if p.Category == s.activeCategory {
			visible = append(visible, p)
		}
	}
	return visible
}
