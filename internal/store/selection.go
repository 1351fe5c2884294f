package store

import (
	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/pkg/util"
)

// OpenDetail marks the product with the given id as open in the detail
// view. Unknown ids are a no-op; the caller is expected to guard, but
// the engine must not fail.
func (s *Store) OpenDetail(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findProduct(id); !ok {
		return
	}
	s.selection.OpenProductID = util.Ptr(id)
}

func (s *Store) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.OpenProductID = nil
}

func (s *Store) OpenCartPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.CartPanelOpen = true
}

func (s *Store) CloseCartPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.CartPanelOpen = false
}

// Selection returns a copy of the current view flags.
func (s *Store) Selection() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.selection
	if s.selection.OpenProductID != nil {
		sel.OpenProductID = util.Ptr(*s.selection.OpenProductID)
	}
	return sel
}

// OpenProduct returns the product currently shown in the detail view.
func (s *Store) OpenProduct() (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection.OpenProductID == nil {
		return models.Product{}, false
	}
	return s.findProduct(*s.selection.OpenProductID)
}
