package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/api"
	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/config"
	"github.com/aslearntocode/financial-health-sub000/internal/session"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		configPath string
		addr       string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Settings come from an optional YAML file and FINHEALTH_* environment variables,
for example FINHEALTH_SESSION_BACKEND=redis and FINHEALTH_SESSION_REDIS_ADDR.

Examples:
  finhealth serve --addr :9090
  finhealth serve --config server.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, opts.logger(cmd))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "server config file (YAML)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config file")
	return cmd
}

func runServe(ctx context.Context, cfg *config.ServerConfig, logger calculation.Logger) error {
	store, closeStore, err := openSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter := api.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer limiter.Stop()

	server := api.NewServer(session.NewManager(store, logger), limiter, logger)
	return server.Serve(ctx, cfg)
}

// openSessionStore builds the configured session backend. For the in-memory
// store a background sweep drops expired sessions until ctx is done.
func openSessionStore(ctx context.Context, cfg *config.ServerConfig, logger calculation.Logger) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		store := session.NewRedisStore(cfg.Session.RedisAddr, cfg.Session.TTL)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Session.RedisAddr, err)
		}
		logger.Infof("sessions stored in redis at %s", cfg.Session.RedisAddr)
		return store, func() { _ = store.Close() }, nil
	default:
		store := session.NewMemoryStore(cfg.Session.TTL)
		go func() {
			ticker := time.NewTicker(cfg.Session.TTL)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if n := store.Sweep(); n > 0 {
						logger.Debugf("swept %d expired sessions", n)
					}
				case <-ctx.Done():
					return
				}
			}
		}()
		logger.Infof("sessions stored in memory")
		return store, func() {}, nil
	}
}
