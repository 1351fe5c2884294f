package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/storefront/internal/store"
	"github.com/tokoku/storefront/internal/toast"
	"github.com/tokoku/storefront/internal/usecase"
)

// Controller is the presentation adapter: it renders engine state and
// routes discrete user actions to the dispatcher as tagged commands.
type Controller interface {
	Health(c echo.Context) error

	ListProducts(c echo.Context) error
	ListCategories(c echo.Context) error
	SelectCategory(c echo.Context) error
	ReloadCatalog(c echo.Context) error

	GetCart(c echo.Context) error
	AddCartItem(c echo.Context) error
	RemoveCartItem(c echo.Context) error
	OpenCartPanel(c echo.Context) error
	CloseCartPanel(c echo.Context) error

	GetDetail(c echo.Context) error
	OpenDetail(c echo.Context) error
	CloseDetail(c echo.Context) error

	SetBuyer(c echo.Context) error
	Checkout(c echo.Context) error

	ListToasts(c echo.Context) error
}

type controller struct {
	store      *store.Store
	toasts     *toast.Queue
	catalog    usecase.CatalogUsecase
	dispatcher usecase.CommandDispatcher
}

func NewController(
	s *store.Store,
	toasts *toast.Queue,
	catalog usecase.CatalogUsecase,
	dispatcher usecase.CommandDispatcher,
) Controller {
	return &controller{
		store:      s,
		toasts:     toasts,
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

func (ct *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
