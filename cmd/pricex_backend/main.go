package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/pricex_locale/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title PriceX Locale API
// @version 1.0
// @description Region, country and currency preferences with exchange-rate conversion for the PriceX storefront.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "pricex_backend",
		Short:         "PriceX locale preference and conversion service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCommand(cfg, logger),
		migrateCommand(cfg, logger),
		convertCommand(cfg, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
