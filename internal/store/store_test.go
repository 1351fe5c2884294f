package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoku/storefront/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Shirt", Category: "clothing", Price: 10},
		{ID: 2, Title: "Ring", Category: "jewelery", Price: 20},
		{ID: 3, Title: "Laptop", Category: "electronics", Price: 109.95},
		{ID: 4, Title: "Jacket", Category: "clothing", Price: 55.5},
	}
}

func newTestStore() *Store {
	s := New(15000)
	s.ReplaceCatalog(testCatalog())
	return s
}

func TestCategories(t *testing.T) {
	t.Parallel()

	t.Run("distinct in first-seen order", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, []string{"clothing", "jewelery", "electronics"}, s.Categories())
	})

	t.Run("empty catalog", func(t *testing.T) {
		s := New(15000)
		assert.Empty(t, s.Categories())
	})

	t.Run("recomputed after replace", func(t *testing.T) {
		s := newTestStore()
		s.ReplaceCatalog([]models.Product{
			{ID: 9, Title: "Mug", Category: "kitchen", Price: 3},
		})
		assert.Equal(t, []string{"kitchen"}, s.Categories())
	})
}

func TestCatalogReplaceIsWholesale(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	require.Len(t, s.Catalog(), 4)

	s.ReplaceCatalog([]models.Product{{ID: 10, Title: "Hat", Category: "clothing", Price: 5}})
	catalog := s.Catalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, int64(10), catalog[0].ID)
}

func TestSelection(t *testing.T) {
	t.Parallel()

	t.Run("open detail for known product", func(t *testing.T) {
		s := newTestStore()
		s.OpenDetail(2)

		product, ok := s.OpenProduct()
		require.True(t, ok)
		assert.Equal(t, "Ring", product.Title)
	})

	t.Run("open detail for unknown product is a no-op", func(t *testing.T) {
		s := newTestStore()
		s.OpenDetail(999)

		_, ok := s.OpenProduct()
		assert.False(t, ok)
		assert.Nil(t, s.Selection().OpenProductID)
	})

	t.Run("close detail", func(t *testing.T) {
		s := newTestStore()
		s.OpenDetail(1)
		s.CloseDetail()

		_, ok := s.OpenProduct()
		assert.False(t, ok)
	})

	t.Run("cart panel flags are independent of detail", func(t *testing.T) {
		s := newTestStore()
		s.OpenDetail(1)
		s.OpenCartPanel()

		sel := s.Selection()
		assert.True(t, sel.CartPanelOpen)
		require.NotNil(t, sel.OpenProductID)
		assert.Equal(t, int64(1), *sel.OpenProductID)

		s.CloseCartPanel()
		assert.False(t, s.Selection().CartPanelOpen)
	})
}

func TestCompleteOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	_, err := s.AddToCart(1)
	require.NoError(t, err)
	s.SetBuyer(models.BuyerInfo{Name: "Budi", Address: "Jl. Sudirman 1", Phone: "0812"})
	s.OpenCartPanel()

	s.CompleteOrder()

	assert.Zero(t, s.CartCount())
	assert.Equal(t, models.BuyerInfo{}, s.Buyer())
	assert.False(t, s.Selection().CartPanelOpen)
}
