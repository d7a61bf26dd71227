// Operator CLI for exercising the checkout round trip against Stripe test
// mode without a browser: create a session for a unit, or verify a returned
// identifier.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/fige/storefront/infra/initializer"
	"github.com/fige/storefront/pkg/app"
	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/service/checkout"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: create <unitId>, verify <session_id|ref>")
		os.Exit(2)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if cfg.Stripe.ApiKey == "" {
		key, err := promptSecretKey()
		if err != nil {
			color.Red("Failed to read Stripe secret key: %v", err)
			os.Exit(1)
		}
		cfg.Stripe.ApiKey = key
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}
	svc := app.New(deps, cfg).CheckoutService
	ctx := context.Background()

	switch cmd, arg := os.Args[1], os.Args[2]; cmd {
	case "create":
		created, err := svc.Create(ctx, arg)
		if err != nil {
			color.Red("Error creating session: %v", err)
			os.Exit(1)
		}
		color.Green("Session created: %s", created.ID)
		fmt.Println("Checkout URL:", created.URL)
		fmt.Println("Client reference:", created.ClientReference)
	case "verify":
		lookup := checkout.Lookup{SessionID: arg}
		// Session handles are prefixed by the provider; anything else is
		// treated as a client reference.
		if len(arg) < 3 || arg[:3] != "cs_" {
			lookup = checkout.Lookup{Ref: arg}
		}
		order, err := svc.Verify(ctx, lookup)
		if err != nil {
			color.Red("Verification failed: %v", err)
			os.Exit(1)
		}
		color.Green("Payment verified")
		fmt.Println("Email:  ", order.Email)
		fmt.Println("Product:", order.Product)
		fmt.Printf("Amount:  %.2f %s\n", float64(order.Amount)/100, strings.ToUpper(order.Currency))
	default:
		fmt.Println("Unknown command:", cmd)
		os.Exit(2)
	}
}

func promptSecretKey() (string, error) {
	fmt.Fprint(os.Stderr, "Stripe secret key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(key), nil
}
