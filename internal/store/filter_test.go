package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoku/storefront/internal/models"
)

func TestVisibleProducts(t *testing.T) {
	t.Parallel()

	t.Run("all returns catalog order", func(t *testing.T) {
		s := newTestStore()
		visible := s.VisibleProducts()
		require.Len(t, visible, 4)
		assert.Equal(t, []int64{1, 2, 3, 4}, productIDs(visible))
	})

	t.Run("category subset preserves order", func(t *testing.T) {
		s := newTestStore()
		s.SelectCategory("clothing")

		visible := s.VisibleProducts()
		assert.Equal(t, []int64{1, 4}, productIDs(visible))
	})

	t.Run("two categories one selected", func(t *testing.T) {
		s := New(15000)
		s.ReplaceCatalog([]models.Product{
			{ID: 1, Title: "Shirt", Category: "clothing", Price: 10},
			{ID: 2, Title: "Ring", Category: "jewelery", Price: 20},
		})
		s.SelectCategory("clothing")

		visible := s.VisibleProducts()
		require.Len(t, visible, 1)
		assert.Equal(t, int64(1), visible[0].ID)
	})

	t.Run("unknown category yields empty set, not error", func(t *testing.T) {
		s := newTestStore()
		s.SelectCategory("furniture")
		assert.Empty(t, s.VisibleProducts())
	})

	t.Run("selecting all twice is idempotent", func(t *testing.T) {
		s := newTestStore()
		s.SelectCategory(CategoryAll)
		once := s.VisibleProducts()
		s.SelectCategory(CategoryAll)
		twice := s.VisibleProducts()
		assert.Equal(t, once, twice)
	})

	t.Run("reflects replaced catalog", func(t *testing.T) {
		s := newTestStore()
		s.SelectCategory("clothing")
		s.ReplaceCatalog([]models.Product{
			{ID: 7, Title: "Scarf", Category: "clothing", Price: 4},
		})
		assert.Equal(t, []int64{7}, productIDs(s.VisibleProducts()))
	})
}

func productIDs(products []models.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
