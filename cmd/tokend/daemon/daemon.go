// Package daemon provides tokend startup and lifecycle management.
//
// The daemon runs a single service: the HTTP tokenize API backed by the
// external tokenization proxy. There is no local state and no coordination
// with other instances, so the lifecycle is start, serve, and shut down
// gracefully on SIGINT/SIGTERM.
package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaultline-dev/tokenbridge/cmd/tokend/config"
	"github.com/vaultline-dev/tokenbridge/internal/api"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/vgs"
)

// buildAPIConfig converts daemon config to API server config
func buildAPIConfig() *api.Config {
	apiConfig := api.DefaultConfig()

	apiConfig.BindAddr = config.Global.BindHost
	apiConfig.BindPort = config.Global.BindPort

	return apiConfig
}

// Run starts the tokenize API server and blocks until a shutdown signal
// arrives, then shuts the server down gracefully.
func Run() error {
	// net/http and other third-party code write to the standard library
	// logger; route those lines into the structured output.
	logging.RedirectStandardLog(logging.NewLevelWriter("DEBUG", "stdlog"))
	logging.Info("Starting tokend v%s", config.Version)

	apiConfig := buildAPIConfig()
	if err := apiConfig.Validate(); err != nil {
		return err
	}

	// Proxy configuration is read per tokenize call, so a missing variable
	// is not fatal here, but operators should learn about it at startup
	// rather than from the first 500 response.
	if os.Getenv(vgs.EnvProxyURL) == "" {
		logging.Warn("%s is not set - /tokenize will fail until it is exported", vgs.EnvProxyURL)
	}

	apiServer := api.NewServer(apiConfig)
	if err := apiServer.Start(); err != nil {
		return err
	}

	// Set up graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Success("tokend started successfully")
	logging.Info("Daemon running... Press Ctrl+C to shutdown")
	logging.Info("  - Tokenize API: http://%s:%d/tokenize", config.Global.BindHost, config.Global.BindPort)
	logging.Info("  - Health check: http://%s:%d/health", config.Global.BindHost, config.Global.BindPort)

	// Wait for shutdown signal
	sig := <-sigCh
	logging.Info("Received signal: %v", sig)

	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
	}

	logging.Success("tokend shutdown completed")
	return nil
}
