// Package store holds the storefront client state: the fetched catalog,
// the cart, the active category filter, the view selection and the
// buyer fields. All mutation goes through methods on Store so the
// engine can be exercised without any presentation layer attached.
package store

import (
	"sync"

	"github.com/tokoku/storefront/internal/models"
)

// CategoryAll is the synthetic category token that selects the whole
// catalog. It is never part of the derived category set.
const CategoryAll = "all"

type Store struct {
	mu sync.Mutex

	catalog        []models.Product
	cart           []models.Product
	activeCategory string
	selection      models.Selection
	buyer          models.BuyerInfo

	// rate converts catalog prices to display rupiah.
	rate int64
}

func New(rate int64) *Store {
	return &Store{
		activeCategory: CategoryAll,
		rate:           rate,
	}
}

// Rate returns the fixed source-to-rupiah conversion rate.
func (s *Store) Rate() int64 {
	return s.rate
}

// Buyer returns a copy of the buyer fields.
func (s *Store) Buyer() models.BuyerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buyer
}

// SetBuyer replaces the buyer fields.
func (s *Store) SetBuyer(buyer models.BuyerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buyer = buyer
}

// CompleteOrder applies the post-checkout reset as one step: the cart
// is emptied, the buyer fields are cleared and the cart panel closes.
// Callers rely on this being all-or-nothing.
func (s *Store) CompleteOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.buyer.Reset()
	s.selection.CartPanelOpen = false
}

// locked product lookup, callers must hold mu.
func (s *Store) findProduct(id int64) (models.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
