// Package config defines the application's configuration structs and their
// environment bindings.
package config

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Log configures the structured logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fige]"`
}

// Server configures the HTTP listener.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// RateLimit configures the per-IP request limiter.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Stripe holds the payment-provider credentials.
type Stripe struct {
	ApiKey         string `envconfig:"API_KEY"`
	PublishableKey string `envconfig:"PUBLISHABLE_KEY"`
}

// Checkout configures the checkout round trip: redirect targets and the
// cookie that carries the encrypted session handle.
type Checkout struct {
	BaseURL       string        `envconfig:"BASE_URL" default:"http://localhost:3000"`
	EncryptionKey string        `envconfig:"ENCRYPTION_KEY"`
	CookieMaxAge  time.Duration `envconfig:"COOKIE_MAX_AGE" default:"1h"`
}

// Key decodes the configured encryption key into 32 raw bytes. It accepts
// either a base64 encoding of 32 bytes or a raw 32-byte string. Returns nil
// when no key is configured; the caller then falls back to an ephemeral key.
func (c *Checkout) Key() ([]byte, error) {
	if c.EncryptionKey == "" {
		return nil, nil
	}
	if raw, err := base64.StdEncoding.DecodeString(c.EncryptionKey); err == nil && len(raw) == 32 {
		return raw, nil
	}
	if len(c.EncryptionKey) == 32 {
		return []byte(c.EncryptionKey), nil
	}
	return nil, fmt.Errorf("config: encryption key must be 32 bytes, raw or base64-encoded")
}

// App is the root configuration, populated from the environment.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Stripe    *Stripe    `envconfig:"STRIPE"`
	Checkout  *Checkout  `envconfig:"CHECKOUT"`
}

// IsProduction reports whether the app runs with production hardening
// (secure cookies).
func (a *App) IsProduction() bool {
	return a.Env == "production"
}
