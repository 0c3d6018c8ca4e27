package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/suilance/suilance-ui-api/config"
	httpx "github.com/suilance/suilance-ui-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPServer assembles the HTTP server without starting it. The caller
// owns the listen/shutdown lifecycle.
func BuildHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, fmt.Errorf("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	services := httpx.RouterServices{
		Lifecycle:    cfg.Services.Lifecycle,
		Reputation:   cfg.Services.Reputation,
		Auth:         cfg.Services.Auth,
		Wallet:       cfg.Services.Wallet,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		PollInterval: cfg.Config.UI.PollInterval,
		IsDev:        cfg.Config.IsDev,
		Logger:       logger,
	}

	handler, err := buildHTTPHandler(httpHandlerConfig{
		Logger:   logger,
		Services: services,
		HTTP:     cfg.Config.HTTP,
	})
	if err != nil {
		return nil, err
	}

	return newServer(handler, cfg.Config.HTTP.Addr), nil
}

type httpHandlerConfig struct {
	Logger   *slog.Logger
	Services httpx.RouterServices
	HTTP     config.HTTPConfig
}

func buildHTTPHandler(cfg httpHandlerConfig) (http.Handler, error) {
	router, err := httpx.NewRouter(cfg.Services)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	// Order: Recover -> Logging -> BrowserDetection -> Compression -> Router
	h := router
	if cfg.HTTP.CompressionEnabled {
		cfg.Logger.Info("HTTP compression enabled")
		h = httpx.Compression()(h)
	}
	h = httpx.BrowserDetection()(h)
	h = httpx.Logging(cfg.Logger)(h)
	h = httpx.Recover(cfg.Logger)(h)

	return h, nil
}

func newServer(handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}

	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}

	return nil
}
