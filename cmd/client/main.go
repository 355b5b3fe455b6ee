// Command client runs a small end-to-end flow against a food-court
// deployment: sign in, browse the menu, fill a cart, and place an order.
// It doubles as a smoke test for a freshly deployed backend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"food-court/internal/api"
	"food-court/internal/checkout"
	"food-court/internal/config"
	"food-court/internal/menu"
	"food-court/internal/notify"
	"food-court/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("base_url", cfg.API.BaseURL).Msg("starting food-court client")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize remote API client
	client := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout(), logger)

	// Initialize notification dispatcher
	var dispatcher notify.Dispatcher = notify.NopDispatcher{}
	if cfg.Push.Enabled {
		dispatcher = notify.NewPushDispatcher(cfg.Push.GatewayURL, cfg.Push.ServerKey, cfg.Push.RequestTimeout(), logger)
	} else {
		logger.Info().Msg("push notifications disabled")
	}

	// Sign in and establish the session
	userID := os.Getenv("DEMO_USER_ID")
	password := os.Getenv("DEMO_PASSWORD")
	if userID == "" || password == "" {
		return fmt.Errorf("DEMO_USER_ID and DEMO_PASSWORD are required")
	}

	profile, err := client.Login(ctx, userID, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	sess := session.New(profile)

	// Browse the menu
	menuService := menu.NewService(client, logger)

	restaurants, err := menuService.Restaurants(ctx)
	if err != nil {
		return err
	}
	for _, r := range restaurants {
		fmt.Printf("%s (%s)\n", r.Name, r.Location)
	}

	items, err := menuService.AvailableItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no food items available to order")
	}

	// Fill the cart with one of the first available item
	sess.Cart().Add(items[0].LineItem(1))
	fmt.Printf("Cart total: %.2f\n", sess.Cart().Total())

	// Place the order
	checkoutService := checkout.NewService(client, dispatcher, logger)
	order, err := checkoutService.PlaceOrder(ctx, sess)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	fmt.Printf("Order %d placed: %s (total %s, status %s)\n",
		order.ID, order.Items, order.TotalAmount, order.Status)

	return nil
}
