package usecase

import (
	"context"
	"errors"

	"github.com/tokoku/storefront/internal/models"
	"github.com/tokoku/storefront/internal/store"
)

// shared fakes for the usecase tests

type fakeFetcher struct {
	products []models.Product
	err      error
	calls    int
}

func (f *fakeFetcher) FetchProducts(ctx context.Context) ([]models.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeNotifier struct {
	texts []string
}

func (f *fakeNotifier) Enqueue(text string) models.Toast {
	f.texts = append(f.texts, text)
	return models.Toast{ID: int64(len(f.texts)), Text: text, State: models.ToastVisible}
}

type fakeChannel struct {
	messages []string
	url      string
	err      error
}

func (f *fakeChannel) Dispatch(ctx context.Context, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, message)
	return f.url, nil
}

var errFetchDown = errors.New("connection refused")

func storefrontCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Shirt", Category: "clothing", Price: 10},
		{ID: 2, Title: "Ring", Category: "jewelery", Price: 20},
	}
}

func newLoadedStore() *store.Store {
	s := store.New(15000)
	s.ReplaceCatalog(storefrontCatalog())
	return s
}
