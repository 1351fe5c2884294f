package app

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.uber.org/fx"

	"github.com/tokoku/storefront/internal/config"
	"github.com/tokoku/storefront/internal/repo/fakestore"
	"github.com/tokoku/storefront/internal/repo/whatsapp"
	"github.com/tokoku/storefront/internal/store"
	"github.com/tokoku/storefront/internal/toast"
	"github.com/tokoku/storefront/internal/usecase"
)

func newStore(conf *config.Config) *store.Store {
	return store.New(conf.Currency.Rate)
}

func newToastQueue(conf *config.Config) *toast.Queue {
	return toast.NewQueue(toast.NewClock(), conf.Toast.Dwell, conf.Toast.Fade)
}

func newNotifier(q *toast.Queue) usecase.Notifier {
	return q
}

func newCatalogFetcher(client fakestore.Client) usecase.CatalogFetcher {
	return client
}

func newOrderChannel(ch whatsapp.Channel) usecase.OrderChannel {
	return ch
}

// WarmUpCatalog fetches the catalog once on startup. A failed fetch is
// logged but does not block the server: the catalog stays empty until a
// reload succeeds.
func WarmUpCatalog(lc fx.Lifecycle, catalog usecase.CatalogUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := catalog.Load(ctx); err != nil {
				log.Warnw(ctx, "initial catalog load failed", "error", err)
			}
			return nil
		},
	})
}
