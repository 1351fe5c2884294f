package usecase

import (
	"context"
	"fmt"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/internal/store"
)

type commandDispatcher struct {
	store    *store.Store
	catalog  CatalogUsecase
	cart     CartUsecase
	checkout CheckoutUsecase
}

func NewCommandDispatcher(
	s *store.Store,
	catalog CatalogUsecase,
	cart CartUsecase,
	checkout CheckoutUsecase,
) CommandDispatcher {
	return &commandDispatcher{
		store:    s,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
	}
}

// Dispatch routes a tagged command to the corresponding engine
// operation. Ordering between two commands is simply call order; there
// is no queueing.
func (d *commandDispatcher) Dispatch(ctx context.Context, cmd models.Command) (any, error) {
	switch c := cmd.(type) {
	case models.SelectCategoryCommand:
		d.catalog.SelectCategory(ctx, c.Category)
	case models.AddToCartCommand:
		d.cart.Add(ctx, c.ProductID)
	case models.RemoveFromCartCommand:
		return nil, d.cart.RemoveAt(ctx, c.Index)
	case models.OpenDetailCommand:
		d.store.OpenDetail(c.ProductID)
	case models.CloseDetailCommand:
		d.store.CloseDetail()
	case models.OpenCartPanelCommand:
		d.store.OpenCartPanel()
	case models.CloseCartPanelCommand:
		d.store.CloseCartPanel()
	case models.SetBuyerInfoCommand:
		d.store.SetBuyer(c.Buyer)
	case models.CheckoutCommand:
		return d.checkout.Checkout(ctx)
	default:
		return nil, fmt.Errorf("unknown command %T", cmd)
	}
	return nil, nil
}
