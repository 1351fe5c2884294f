package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Catalog  CatalogConfig  `envPrefix:"CATALOG_"`
	WhatsApp WhatsAppConfig `envPrefix:"WHATSAPP_"`
	Currency CurrencyConfig `envPrefix:"CURRENCY_"`
	Toast    ToastConfig    `envPrefix:"TOAST_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type CatalogConfig struct {
	URL string `env:"URL" envDefault:"https://fakestoreapi.com/products"`
}

type WhatsAppConfig struct {
	// Phone is the fixed destination number; it is configuration,
	// never user input.
	Phone   string `env:"PHONE" envDefault:"6281217471492"`
	BaseURL string `env:"BASE_URL" envDefault:"https://wa.me"`
}

type CurrencyConfig struct {
	// Rate converts the catalog's source currency to display rupiah.
	Rate int64 `env:"RATE" envDefault:"15000"`
}

type ToastConfig struct {
	// Dwell is how long a toast stays fully visible, Fade how long the
	// fade-out lasts before the toast is evicted.
	Dwell time.Duration `env:"DWELL" envDefault:"3s"`
	Fade  time.Duration `env:"FADE" envDefault:"500ms"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
