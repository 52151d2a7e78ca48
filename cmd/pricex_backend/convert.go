package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/services"
	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/SscSPs/pricex_locale/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func convertCommand(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Converts an amount between currencies and prints it formatted",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			from, to := strings.ToUpper(args[1]), strings.ToUpper(args[2])

			ctx := middleware.WithLogger(cmd.Context(), logger)
			rates := services.NewRateSource(nil)
			if !offline && cfg.FXRatesURL != "" {
				deps, err := openDependencies(ctx, cfg, logger)
				if err != nil {
					return err
				}
				defer deps.Close()
				rates = services.NewRateSource(deps.repos.RateProvider,
					services.WithFetchTimeout(cfg.FXRequestTimeout),
					services.WithRateCache(deps.repos.RateCache, cfg.FXCacheTTL))
				rates.Warm(ctx)
				rates.Refresh(ctx)
			}

			converter := services.NewPriceConverter(rates, services.NewCatalog())
			price, err := converter.Display(amount, from, to)
			if err != nil && !(errors.Is(err, apperrors.ErrCurrencyUnsupported) && price.FellBack) {
				return err
			}
			if price.FellBack {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s is not supported, showing %s\n", to, price.Currency)
			}
			fmt.Fprintln(cmd.OutOrStdout(), price.Formatted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "use the built-in fallback rates without fetching")
	return cmd
}
