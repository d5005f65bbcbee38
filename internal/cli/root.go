// Package cli implements the shopctl command tree. Commands are thin views
// over the state stores: they dispatch one intent, let the store talk to
// the commerce API, and render whatever slice of state comes back.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/config"
	"github.com/Ahmed-As3ad/e-commerce/internal/store"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Storefront client for the Route commerce API",
	Long: `shopctl browses the product catalog, manages your cart, wishlist and
addresses, and hands checkout off to the hosted payment page.

Examples:
  shopctl products list
  shopctl auth login --email you@example.com
  shopctl cart add 6428ebc6dc1175abc65ca0b9
  shopctl cart checkout --address-id 64c9...`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <user-config-dir>/shopctl/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every request")
}

// app wires the config, keyring, API client and stores for one invocation.
type app struct {
	cfg       *config.Config
	keyring   *token.Keyring
	client    *commerce.Client
	gate      store.Gate
	session   *store.Session
	catalog   *store.Catalog
	cart      *store.Cart
	addresses *store.Addresses
}

// getApp builds the store graph. Stores are per-invocation instances; no
// ambient singletons.
func getApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	keyring, err := token.NewKeyring(cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := commerce.NewClient(keyring,
		commerce.WithBaseURL(cfg.BaseURL),
		commerce.WithTimeout(cfg.Timeout),
		commerce.WithLogger(logger),
	)

	return &app{
		cfg:       cfg,
		keyring:   keyring,
		client:    client,
		gate:      store.NewGate(keyring),
		session:   store.NewSession(client, keyring, logger),
		catalog:   store.NewCatalog(client, keyring),
		cart:      store.NewCart(client, keyring),
		addresses: store.NewAddresses(client, keyring),
	}, nil
}

// requireLogin is the access gate for commands whose content is gated.
// Denial happens before any network call for the gated data.
func (a *app) requireLogin() error {
	if err := a.gate.Require(); err != nil {
		fmt.Fprintf(os.Stderr, "%s Please login first: shopctl auth login\n", colorYellow("!"))
		return err
	}
	return nil
}
