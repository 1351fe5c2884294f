package store

import (
	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/pkg/rupiah"
)

// AddToCart appends the catalog product with the given id to the cart.
// The cart is a multiset: adding the same id twice yields two entries.
// An id absent from the catalog returns ErrProductNotFound and leaves
// the cart unchanged.
func (s *Store) AddToCart(id int64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(id)
	if !ok {
		return models.Product{}, models.ErrProductNotFound
	}
	s.cart = append(s.cart, product)
	return product, nil
}

// RemoveFromCart removes the entry at the given position. Removal is
// position-based on purpose: duplicates are disambiguated by index,
// and switching to id-based removal would silently change which
// duplicate goes.
func (s *Store) RemoveFromCart(index int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.cart) {
		return models.Product{}, models.ErrIndexOutOfRange
	}
	removed := s.cart[index]
	s.cart = append(s.cart[:index], s.cart[index+1:]...)
	return removed, nil
}

// CartItems returns the cart entries in insertion order.
func (s *Store) CartItems() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.cart...)
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// CartTotal sums the per-entry converted prices. Each line is rounded
// independently before summing; the aggregate is never rounded.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	prices := make([]float64, len(s.cart))
	for i, p := range s.cart {
		prices[i] = p.Price
	}
	return rupiah.Sum(prices, s.rate)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}
