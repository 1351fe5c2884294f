package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/tokoku/storefront/internal/config"
	pkgmdw "github.com/tokoku/storefront/internal/server/middleware"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) {
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(logger.MustNamed("http"))

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	registerRoutes(e, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func registerRoutes(e *echo.Echo, handler Controller) {
	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")
	api.GET("/products", handler.ListProducts)
	api.GET("/categories", handler.ListCategories)
	api.POST("/category", handler.SelectCategory)
	api.POST("/catalog/reload", handler.ReloadCatalog)

	api.GET("/cart", handler.GetCart)
	api.POST("/cart/items", handler.AddCartItem)
	api.DELETE("/cart/items/:index", handler.RemoveCartItem)
	api.POST("/cart/open", handler.OpenCartPanel)
	api.POST("/cart/close", handler.CloseCartPanel)

	api.GET("/detail", handler.GetDetail)
	api.POST("/detail/:id", handler.OpenDetail)
	api.DELETE("/detail", handler.CloseDetail)

	api.PUT("/buyer", handler.SetBuyer)
	api.POST("/checkout", handler.Checkout)
	api.GET("/toasts", handler.ListToasts)
}
