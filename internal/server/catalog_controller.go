package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/internal/store"
	"github.com/tokoku/storefront/pkg/rupiah"
	"github.com/tokoku/storefront/pkg/util"
)

// ProductView is a catalog product with its display price attached.
type ProductView struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Image        string `json:"image"`
	Description  string `json:"description,omitempty"`
}

func (ct *controller) productView(p models.Product) ProductView {
	rate := ct.store.Rate()
	return ProductView{
		ID:           p.ID,
		Title:        p.Title,
		Category:     p.Category,
		Price:        rupiah.Convert(p.Price, rate),
		PriceDisplay: rupiah.FormatPrice(p.Price, rate),
		Image:        p.Image,
		Description:  p.Description,
	}
}

func (ct *controller) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	visible := ct.catalog.VisibleProducts(ctx)

	return c.JSON(http.StatusOK, map[string]any{
		"products":        util.ConvertList(visible, ct.productView),
		"count":           len(visible),
		"active_category": ct.store.ActiveCategory(),
	})
}

func (ct *controller) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	categories := append([]string{store.CategoryAll}, ct.catalog.Categories(ctx)...)

	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
		"active":     ct.store.ActiveCategory(),
	})
}

func (ct *controller) SelectCategory(c echo.Context) error {
	var cmd models.SelectCategoryCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), cmd); err != nil {
		return err
	}
	return ct.ListProducts(c)
}

func (ct *controller) ReloadCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	if err := ct.catalog.Load(ctx); err != nil {
		// previous catalog stays; the client may simply retry
		return echo.NewHTTPError(http.StatusBadGateway, "failed to load catalog")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"products": len(ct.store.Catalog()),
	})
}

func (ct *controller) GetDetail(c echo.Context) error {
	product, ok := ct.store.OpenProduct()
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"open": false, "product": nil})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"open":    true,
		"product": ct.productView(product),
	})
}

func (ct *controller) OpenDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), models.OpenDetailCommand{ProductID: id}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *controller) CloseDetail(c echo.Context) error {
	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), models.CloseDetailCommand{}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
