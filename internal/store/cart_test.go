package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoku/storefront/internal/models"
)

func TestAddToCart(t *testing.T) {
	t.Parallel()

	t.Run("known product", func(t *testing.T) {
		s := newTestStore()
		product, err := s.AddToCart(1)
		require.NoError(t, err)
		assert.Equal(t, "Shirt", product.Title)
		assert.Equal(t, 1, s.CartCount())
	})

	t.Run("unknown product leaves cart unchanged", func(t *testing.T) {
		s := newTestStore()
		_, err := s.AddToCart(999)
		assert.ErrorIs(t, err, models.ErrProductNotFound)
		assert.Zero(t, s.CartCount())
	})

	t.Run("duplicates allowed", func(t *testing.T) {
		s := newTestStore()
		for i := 0; i < 3; i++ {
			_, err := s.AddToCart(1)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, s.CartCount())
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()

	t.Run("removes by position", func(t *testing.T) {
		s := newTestStore()
		for _, id := range []int64{1, 2, 1} {
			_, err := s.AddToCart(id)
			require.NoError(t, err)
		}

		removed, err := s.RemoveFromCart(1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed.ID)

		items := s.CartItems()
		require.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, int64(1), items[1].ID)
	})

	t.Run("out of range", func(t *testing.T) {
		s := newTestStore()
		_, err := s.RemoveFromCart(0)
		assert.ErrorIs(t, err, models.ErrIndexOutOfRange)

		_, err = s.RemoveFromCart(-1)
		assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
	})
}

func TestCartTotal(t *testing.T) {
	t.Parallel()

	t.Run("duplicates count separately", func(t *testing.T) {
		s := newTestStore()
		for _, id := range []int64{1, 2, 1} {
			_, err := s.AddToCart(id)
			require.NoError(t, err)
		}
		// round(10*15000) + round(20*15000) + round(10*15000)
		assert.Equal(t, 3, s.CartCount())
		assert.Equal(t, int64(600000), s.CartTotal())

		_, err := s.RemoveFromCart(1)
		require.NoError(t, err)
		assert.Equal(t, 2, s.CartCount())
		assert.Equal(t, int64(300000), s.CartTotal())
	})

	t.Run("rounds per line before summing", func(t *testing.T) {
		s := New(15000)
		s.ReplaceCatalog([]models.Product{
			{ID: 1, Title: "Sticker", Category: "misc", Price: 0.00004},
		})
		_, err := s.AddToCart(1)
		require.NoError(t, err)
		_, err = s.AddToCart(1)
		require.NoError(t, err)

		// 0.00004*15000 = 0.6 -> 1 per line, so 2 not round(1.2)=1
		assert.Equal(t, int64(2), s.CartTotal())
	})

	t.Run("empty cart", func(t *testing.T) {
		s := newTestStore()
		assert.Zero(t, s.CartTotal())
	})
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	_, err := s.AddToCart(1)
	require.NoError(t, err)
	s.ClearCart()
	assert.Zero(t, s.CartCount())
	assert.Empty(t, s.CartItems())
}
