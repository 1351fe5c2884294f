package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/tokoku/storefront/internal/config"
	"github.com/tokoku/storefront/internal/repo/fakestore"
	"github.com/tokoku/storefront/internal/repo/whatsapp"
	"github.com/tokoku/storefront/internal/server"
	"github.com/tokoku/storefront/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newStore,
			newToastQueue,
			newNotifier,
			newCatalogFetcher,
			newOrderChannel,

			fakestore.NewClient,
			whatsapp.NewChannel,

			usecase.NewCatalogUsecase,
			usecase.NewCartUsecase,
			usecase.NewCheckoutUsecase,
			usecase.NewCommandDispatcher,

			server.NewController,
		),
		fx.Supply(conf),
		fx.Invoke(WarmUpCatalog),
		fx.Invoke(funcs...),
	)
}
