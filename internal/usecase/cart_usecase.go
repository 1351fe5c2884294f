package usecase

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/internal/store"
)

type cartUsecase struct {
	store    *store.Store
	notifier Notifier
}

func NewCartUsecase(s *store.Store, notifier Notifier) CartUsecase {
	return &cartUsecase{
		store:    s,
		notifier: notifier,
	}
}

func (u *cartUsecase) Add(ctx context.Context, productID int64) {
	product, err := u.store.AddToCart(productID)
	if err != nil {
		// unknown product ids fail silently, no toast
		log.Debugw(ctx, "add to cart skipped", "product_id", productID, "error", err)
		return
	}

	u.notifier.Enqueue(product.ShortTitle() + " ditambahkan ke keranjang!")
	log.Infow(ctx, "product added to cart", "product_id", productID, "cart_count", u.store.CartCount())
}

func (u *cartUsecase) RemoveAt(ctx context.Context, index int) error {
	removed, err := u.store.RemoveFromCart(index)
	if err != nil {
		return err
	}

	u.notifier.Enqueue(removed.ShortTitle() + " dihapus dari keranjang")
	log.Infow(ctx, "product removed from cart", "index", index, "product_id", removed.ID)
	return nil
}

func (u *cartUsecase) Items(ctx context.Context) []models.Product {
	return u.store.CartItems()
}

func (u *cartUsecase) Count(ctx context.Context) int {
	return u.store.CartCount()
}

func (u *cartUsecase) Total(ctx context.Context) int64 {
	return u.store.CartTotal()
}
