package usecase

import (
	"context"
	"fmt"
	"sync"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-playground/validator/v10"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/internal/store"
	"github.com/tokoku/storefront/pkg/rupiah"
	"github.com/tokoku/storefront/pkg/tmplx"
)

// Phase is the checkout state machine position. The walk is synchronous
// and always ends back at PhaseIdle; intermediate phases exist so the
// flow reads as the explicit machine it is.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseComposing  Phase = "composing"
	PhaseSubmitted  Phase = "submitted"
)

// orderMessageTemplate mirrors the outbound WhatsApp order message:
// greeting, one block per cart entry, total, then the buyer block.
const orderMessageTemplate = `Halo, saya ingin membeli produk berikut:

{{range .Items}}- {{.Title}}
  Harga: {{rupiah .Price}}

{{end}}Total: {{rupiah .Total}}

Informasi Pembeli:
Nama: {{.Buyer.Name}}
Alamat: {{.Buyer.Address}}
No. HP: {{.Buyer.Phone}}`

type CheckoutResult struct {
	// URL is the messaging handoff the presentation layer opens in a
	// new browsing context.
	URL     string `json:"url"`
	Message string `json:"message"`
}

type orderLine struct {
	Title string
	Price int64
}

type orderData struct {
	Items []orderLine
	Total int64
	Buyer models.BuyerInfo
}

type checkoutUsecase struct {
	store    *store.Store
	notifier Notifier
	channel  OrderChannel
	validate *validator.Validate
	tmpl     *tmplx.Template

	phaseMu sync.Mutex
	phase   Phase
}

func NewCheckoutUsecase(s *store.Store, notifier Notifier, channel OrderChannel) CheckoutUsecase {
	return &checkoutUsecase{
		store:    s,
		notifier: notifier,
		channel:  channel,
		validate: validator.New(),
		tmpl:     tmplx.MustParse("order_message", orderMessageTemplate),
		phase:    PhaseIdle,
	}
}

// Checkout validates the cart and buyer fields, composes the order
// message and hands it off. On success the cart and buyer fields are
// cleared and the cart panel closes as one step; every failure path
// leaves all state untouched.
func (u *checkoutUsecase) Checkout(ctx context.Context) (*CheckoutResult, error) {
	defer u.setPhase(PhaseIdle)

	u.setPhase(PhaseValidating)
	items := u.store.CartItems()
	if len(items) == 0 {
		u.notifier.Enqueue("Keranjang belanja kosong")
		return nil, models.ErrEmptyCart
	}

	buyer := u.store.Buyer()
	if err := u.validate.Struct(buyer); err != nil {
		// one generic message regardless of which field is missing
		u.notifier.Enqueue("Harap isi semua data pembeli!")
		return nil, models.ErrMissingBuyerInfo
	}

	u.setPhase(PhaseComposing)
	data := orderData{
		Items: make([]orderLine, 0, len(items)),
		Buyer: buyer,
	}
	for _, p := range items {
		line := orderLine{
			Title: p.Title,
			Price: rupiah.Convert(p.Price, u.store.Rate()),
		}
		// summing the same per-line rounded values keeps the message
		// total equal to CartTotal
		data.Total += line.Price
		data.Items = append(data.Items, line)
	}

	buf, err := u.tmpl.Render(data)
	if err != nil {
		return nil, fmt.Errorf("compose order message: %w", err)
	}
	message := buf.String()

	u.setPhase(PhaseSubmitted)
	url, err := u.channel.Dispatch(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("dispatch order: %w", err)
	}

	u.store.CompleteOrder()
	u.notifier.Enqueue("Terima kasih! Pesanan Anda telah dikirim via WhatsApp.")
	log.Infow(ctx, "order dispatched", "items", len(items), "total", data.Total)

	return &CheckoutResult{URL: url, Message: message}, nil
}

func (u *checkoutUsecase) setPhase(p Phase) {
	u.phaseMu.Lock()
	u.phase = p
	u.phaseMu.Unlock()
}

// CurrentPhase reports the state machine position; PhaseIdle between
// checkout calls.
func (u *checkoutUsecase) CurrentPhase() Phase {
	u.phaseMu.Lock()
	defer u.phaseMu.Unlock()
	return u.phase
}
