package usecase

import (
	"context"

	"github.com/tokoku/storefront/internal/models"
)

// CatalogFetcher is the external catalog source: a read-only fetch that
// returns the full product list or fails.
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
}

// OrderChannel hands a composed order message to the external messaging
// application. Dispatch returns the handoff URL; it is fire-and-forget,
// a nil error means "request dispatched", not "order confirmed".
type OrderChannel interface {
	Dispatch(ctx context.Context, message string) (string, error)
}

// Notifier enqueues a user-visible toast.
type Notifier interface {
	Enqueue(text string) models.Toast
}

type CatalogUsecase interface {
	// Load fetches the catalog and replaces the store's copy. On error
	// the previous catalog is left untouched; callers may re-invoke.
	Load(ctx context.Context) error
	Categories(ctx context.Context) []string
	VisibleProducts(ctx context.Context) []models.Product
	SelectCategory(ctx context.Context, category string)
}

type CartUsecase interface {
	// Add appends the product to the cart and emits a toast. Unknown
	// ids fail silently: no state change and no notification.
	Add(ctx context.Context, productID int64)
	// RemoveAt removes the entry at the given position and emits a
	// toast; out-of-range indices return ErrIndexOutOfRange.
	RemoveAt(ctx context.Context, index int) error
	Items(ctx context.Context) []models.Product
	Count(ctx context.Context) int
	Total(ctx context.Context) int64
}

type CheckoutUsecase interface {
	Checkout(ctx context.Context) (*CheckoutResult, error)
}

// CommandDispatcher routes tagged user-action commands to the engine.
// The presentation layer builds commands and never touches state
// directly.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, cmd models.Command) (any, error)
}
