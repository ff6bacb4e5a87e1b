// Package main implements catalogctl, the admin CLI for the product catalog.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecommlabs/gocatalog/internal/config"
	"github.com/ecommlabs/gocatalog/internal/service"
	"github.com/ecommlabs/gocatalog/internal/store"
	"github.com/ecommlabs/gocatalog/pkg/bootstrap"
	"github.com/ecommlabs/gocatalog/pkg/config/configloader"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

const serviceName = "catalog"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Admin CLI for the product catalog database",
}

func init() {
	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)

	// Products
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
}

// appEnv holds the booted process resources shared by the commands.
type appEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	service service.ProductService
}

// boot loads the configuration and opens the database connection.
func boot(ctx context.Context) (*appEnv, error) {
	cfg, err := configloader.Load[*config.Config](serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	pool, err := bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &appEnv{
		cfg:     cfg,
		logger:  logger,
		pool:    pool,
		service: service.NewService(store.NewPgStore(pool)),
	}, nil
}

func (a *appEnv) close() {
	a.pool.Close()
}
