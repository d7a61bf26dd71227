// Package testutils provides shared helpers for webapi handler tests: a
// fully wired Fiber app over a fake payment provider.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/fige/storefront/pkg/app"
	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/provider/payment"
	"github.com/fige/storefront/pkg/sealbox"
	"github.com/fige/storefront/webapi"
	"github.com/gofiber/fiber/v2"
)

// FakeProvider is an in-memory payment.CheckoutProvider for handler tests.
// Result fields are returned as-is; call arguments are recorded.
type FakeProvider struct {
	CreateParams *payment.CreateSessionParams
	CreateResult *payment.Session
	CreateErr    error

	RetrievedID    string
	RetrieveResult *payment.Session
	RetrieveErr    error

	FindRef    string
	FindResult *payment.Session
	FindErr    error
}

func (f *FakeProvider) CreateSession(
	_ context.Context,
	params *payment.CreateSessionParams,
) (*payment.Session, error) {
	f.CreateParams = params
	return f.CreateResult, f.CreateErr
}

func (f *FakeProvider) RetrieveSession(
	_ context.Context,
	sessionID string,
) (*payment.Session, error) {
	f.RetrievedID = sessionID
	return f.RetrieveResult, f.RetrieveErr
}

func (f *FakeProvider) FindSessionByReference(
	_ context.Context,
	ref string,
	_ int64,
) (*payment.Session, error) {
	f.FindRef = ref
	return f.FindResult, f.FindErr
}

// TestApp bundles the wired Fiber app with the fakes behind it.
type TestApp struct {
	App      *fiber.App
	Provider *FakeProvider
	Sealbox  *sealbox.Box
	Config   *config.App
}

// NewTestApp wires a Fiber app over a FakeProvider with test configuration.
func NewTestApp() *TestApp {
	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 3000},
		Log:       &config.Log{},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Stripe:    &config.Stripe{ApiKey: "sk_test_fake", PublishableKey: "pk_test_fake"},
		Checkout:  &config.Checkout{BaseURL: "http://localhost:3000", CookieMaxAge: time.Hour},
	}

	box, err := sealbox.NewRandom()
	if err != nil {
		panic(err)
	}

	provider := &FakeProvider{}
	deps := &app.Deps{
		PaymentProvider: provider,
		Sealbox:         box,
		Logger:          slog.New(slog.DiscardHandler),
	}

	return &TestApp{
		App:      webapi.SetupApp(app.New(deps, cfg)),
		Provider: provider,
		Sealbox:  box,
		Config:   cfg,
	}
}

// MakeRequest performs a request against the app and returns the response.
func (ta *TestApp) MakeRequest(method, target, body string, cookies ...*http.Cookie) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := ta.App.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}
