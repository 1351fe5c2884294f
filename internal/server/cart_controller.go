package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/pkg/rupiah"
)

type CartItemView struct {
	Index        int    `json:"index"`
	ProductID    int64  `json:"product_id"`
	Title        string `json:"title"`
	Image        string `json:"image"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
}

func (ct *controller) GetCart(c echo.Context) error {
	items := ct.store.CartItems()
	rate := ct.store.Rate()

	views := make([]CartItemView, len(items))
	for i, p := range items {
		views[i] = CartItemView{
			Index:        i,
			ProductID:    p.ID,
			Title:        p.Title,
			Image:        p.Image,
			Price:        rupiah.Convert(p.Price, rate),
			PriceDisplay: rupiah.FormatPrice(p.Price, rate),
		}
	}

	total := ct.store.CartTotal()
	return c.JSON(http.StatusOK, map[string]any{
		"items":         views,
		"count":         len(items),
		"total":         total,
		"total_display": "Rp " + rupiah.Format(total),
		"panel_open":    ct.store.Selection().CartPanelOpen,
	})
}

func (ct *controller) AddCartItem(c echo.Context) error {
	var cmd models.AddToCartCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// unknown product ids are a silent no-op, still 204
	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *controller) RemoveCartItem(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart index")
	}

	_, err = ct.dispatcher.Dispatch(c.Request().Context(), models.RemoveFromCartCommand{Index: index})
	if errors.Is(err, models.ErrIndexOutOfRange) {
		return echo.NewHTTPError(http.StatusBadRequest, "cart index out of range")
	}
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *controller) OpenCartPanel(c echo.Context) error {
	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), models.OpenCartPanelCommand{}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *controller) CloseCartPanel(c echo.Context) error {
	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), models.CloseCartPanelCommand{}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *controller) SetBuyer(c echo.Context) error {
	var buyer models.BuyerInfo
	if err := c.Bind(&buyer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// fields may be filled one at a time; completeness is checked at
	// checkout, not here
	if _, err := ct.dispatcher.Dispatch(c.Request().Context(), models.SetBuyerInfoCommand{Buyer: buyer}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *controller) Checkout(c echo.Context) error {
	result, err := ct.dispatcher.Dispatch(c.Request().Context(), models.CheckoutCommand{})
	if errors.Is(err, models.ErrEmptyCart) || errors.Is(err, models.ErrMissingBuyerInfo) {
		// recovered locally: a toast was already enqueued
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (ct *controller) ListToasts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"toasts": ct.toasts.Active(),
	})
}
