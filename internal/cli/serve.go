package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/conclusiv/conclusiv/internal/server"
	"github.com/conclusiv/conclusiv/pkg/cache"
	"github.com/conclusiv/conclusiv/pkg/config"
	"github.com/conclusiv/conclusiv/pkg/pipeline"
	"github.com/conclusiv/conclusiv/pkg/store"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve starts the HTTP API for building plans, storing narratives, and
resolving share links. Backends are selected via a TOML config file;
without one it runs with an in-memory store and a file cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe wires the configured backends and runs the server until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg *config.Config) error {
	logger := loggerFromContext(ctx)

	cch, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	runner := pipeline.NewRunner(cch, nil, logger)
	defer runner.Close()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(shutdownCtx); err != nil {
			logger.Warnf("Store close: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(runner, st, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// openCache builds the configured cache backend.
func openCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "null":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	default: // "file" or ""
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// openStore builds the configured store backend.
func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database)
	default: // "memory" or ""
		return store.NewMemStore(), nil
	}
}
