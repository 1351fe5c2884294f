// Package fakestore talks to the remote product catalog API.
package fakestore

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/tokoku/storefront/internal/config"
	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/pkg/util"
)

type Client interface {
	// FetchProducts returns the full catalog or fails. There is no
	// pagination; the source serves the list wholesale.
	FetchProducts(ctx context.Context) ([]models.Product, error)
}

type client struct {
	httpClient *resty.Client
	url        string
}

func NewClient(conf *config.Config) Client {
	return &client{
		httpClient: util.NewRestyClient(),
		url:        conf.Catalog.URL,
	}
}

func (c *client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&products).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog API returned status %d", resp.StatusCode())
	}

	return products, nil
}
