package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// Run boots the whole application: config, Redis, services, and the HTTP
// server. It blocks until SIGINT/SIGTERM or a fatal server error.
func Run() error {
	logger := InitLogger()

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.IsDev {
		logger.Info("running in development mode")
	}

	redisClient, err := ConnectRedis(cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			logger.Warn("close redis client", "error", closeErr)
		}
	}()

	services, err := NewServices(&ServiceDeps{
		Config:      &cfg,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}

	server, err := BuildHTTPServer(&HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", serveErr)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(context.Background(), server, logger)
	})

	return g.Wait()
}
