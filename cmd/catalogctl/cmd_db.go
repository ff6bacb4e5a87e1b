package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/ecommlabs/gocatalog/internal/config"
	"github.com/ecommlabs/gocatalog/internal/product"
	"github.com/ecommlabs/gocatalog/internal/service"
	"github.com/ecommlabs/gocatalog/pkg/bootstrap"
	"github.com/ecommlabs/gocatalog/pkg/config/configloader"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const migrationsSource = "file://migrations"

// catalogctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply all pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := configloader.Load[*config.Config](serviceName)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := bootstrap.ApplyMigrations(migrationsSource, cfg.Database.URL); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

// catalogctl seed [--count N]
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the catalog with generated demo products",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}
		if count == 0 {
			count = env.cfg.Seed.Count
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(8)
		for range count {
			g.Go(func() error {
				dto := randomProduct()
				created, err := env.service.Create(ctx, dto)
				if err != nil {
					return fmt.Errorf("failed to seed product %q: %w", dto.Name, err)
				}
				env.logger.Debug("seeded product", "id", created.ID, "name", created.Name)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		env.logger.Info("seeding complete", "count", count)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("count", 0, "number of products to generate (default from config)")
}

// randomProduct generates one demo product. The uuid suffix keeps names
// unique across repeated seed runs.
func randomProduct() service.ProductCreateDto {
	categories := product.Categories()
	category := categories[1+rand.IntN(len(categories)-1)]
	available := rand.IntN(2) == 0
	// Prices between 0.01 and 100.00 with two decimal places.
	price := decimal.New(int64(1+rand.IntN(10000)), -2)

	return service.ProductCreateDto{
		Name:        "demo-" + uuid.NewString()[:8],
		Description: "generated demo product",
		Price:       price.String(),
		Available:   &available,
		Category:    category.String(),
	}
}
