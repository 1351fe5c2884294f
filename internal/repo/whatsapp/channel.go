// Package whatsapp composes the messaging handoff for outbound orders.
// The handoff is fire-and-forget: a successful dispatch means the URL
// was built for the user to open, not that the order was confirmed.
package whatsapp

import (
	"context"
	"fmt"
	"net/url"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/tokoku/storefront/internal/config"
)

type Channel interface {
	Dispatch(ctx context.Context, message string) (string, error)
}

type channel struct {
	baseURL string
	phone   string
}

func NewChannel(conf *config.Config) Channel {
	return &channel{
		baseURL: conf.WhatsApp.BaseURL,
		phone:   conf.WhatsApp.Phone,
	}
}

// Dispatch builds `<base>/<phone>?text=<url-encoded message>`. The
// destination number comes from configuration, never from user input.
func (c *channel) Dispatch(ctx context.Context, message string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse whatsapp base url: %w", err)
	}
	base = base.JoinPath(c.phone)

	query := url.Values{}
	query.Set("text", message)
	base.RawQuery = query.Encode()

	handoff := base.String()
	log.Infow(ctx, "order handoff composed", "phone", c.phone, "message_bytes", len(message))
	return handoff, nil
}
