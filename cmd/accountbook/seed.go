package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/accountbook_service/internal/apperrors"
	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/SscSPs/accountbook_service/internal/core/services"
	"github.com/SscSPs/accountbook_service/internal/platform/config"
	"github.com/SscSPs/accountbook_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/accountbook_service/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		companyID string
		system    string
		strategy  string
		migrate   bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a company's account book from a stored chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if system == "" {
				system = cfg.DefaultAccountingSystem
			}
			s := cfg.SeedStrategy
			if strategy != "" {
				if s, err = chart.ParseStrategy(strategy); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer pool.Close()

			if migrate {
				if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slog.Default()); err != nil {
					return err
				}
			}

			svc := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
			nodes, err := svc.Chart.SeedCompany(ctx, companyID, system, s)
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("company %s is already seeded", companyID)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d accounts for company %s from %s (%s)\n", len(nodes), companyID, system, s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&companyID, "company", "c", "", "company id (required)")
	cmd.Flags().StringVar(&system, "system", "", "accounting system, defaults to DEFAULT_ACCOUNTING_SYSTEM")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "traversal strategy: bfs or dfs, defaults to SEED_STRATEGY")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations first")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}
