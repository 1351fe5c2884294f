package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/internal/store"
)

type catalogUsecase struct {
	store   *store.Store
	fetcher CatalogFetcher
}

func NewCatalogUsecase(s *store.Store, fetcher CatalogFetcher) CatalogUsecase {
	return &catalogUsecase{
		store:   s,
		fetcher: fetcher,
	}
}

func (u *catalogUsecase) Load(ctx context.Context) error {
	products, err := u.fetcher.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	u.store.ReplaceCatalog(products)
	log.Infow(ctx, "catalog replaced",
		"products", len(products),
		"categories", len(u.store.Categories()),
	)
	return nil
}

func (u *catalogUsecase) Categories(ctx context.Context) []string {
	return u.store.Categories()
}

func (u *catalogUsecase) VisibleProducts(ctx context.Context) []models.Product {
	return u.store.VisibleProducts()
}

func (u *catalogUsecase) SelectCategory(ctx context.Context, category string) {
	u.store.SelectCategory(category)
}
