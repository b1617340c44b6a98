package commands

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mamahiam-storefront/internal/cart"
	"mamahiam-storefront/internal/shopapi"
	"mamahiam-storefront/internal/storage"
)

var (
	apiURL   string
	cartFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "shopctl - Mama Hiam storefront from the terminal",
	Long: `shopctl is a terminal client for the Mama Hiam children's clothing shop.

Browse the catalog, keep a locally persisted shopping cart, and place orders
against the same backend the web storefront uses. The cart lives in a local
file and expires 12 hours after its last change, matching the web client.`,
	SilenceUsage: true,
}

// Execute runs the CLI. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "https://backend.mama-hieam.shop/api/v1", "Base URL of the storefront API")
	rootCmd.PersistentFlags().StringVar(&cartFile, "cart-file", "", "Path of the cart file (default: user config dir)")
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "[shopctl] ", 0)
}

func newClient(logger *log.Logger) *shopapi.Client {
	return shopapi.New(apiURL, shopapi.DefaultTimeout, logger)
}

func cartPath() (string, error) {
	if cartFile != "" {
		return cartFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shopctl", "cart.json"), nil
}

// openCart hydrates the local cart and attaches its persister, so every
// mutation the command performs lands back in the cart file.
func openCart(ctx context.Context, logger *log.Logger) (*cart.Engine, error) {
	path, err := cartPath()
	if err != nil {
		return nil, err
	}
	store := storage.NewFile(path, logger)
	keys := cart.DefaultKeys()
	engine := cart.NewFrom(cart.Hydrate(ctx, store, keys, cart.DefaultTTL, logger))
	cart.NewPersister(store, keys, logger).Attach(engine)
	return engine, nil
}
