// Package api provides the HTTP server for the tokenization service.
// The server exposes a health check and a single tokenize operation that
// delegates to the external proxy client, with no local state.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaultline-dev/tokenbridge/internal/api/handlers"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
)

// Represents the tokenization API server
type Server struct {
	clientFactory handlers.ClientFactory
	httpServer    *http.Server
	bindAddr      string
	bindPort      int
}

// NewServer creates a new tokenization API server instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		clientFactory: config.ClientFactory,
		bindAddr:      config.BindAddr,
		bindPort:      config.BindPort,
	}
}

// Start starts the tokenization API server
func (s *Server) Start() error {
	logging.Info("Starting HTTP API server on %s:%d", s.bindAddr, s.bindPort)

	// Create Gin router
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Add middleware
	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())

	// Setup routes
	s.setupRoutes(router)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.bindAddr, s.bindPort),
		Handler: router,
		// Timeouts for production; write timeout must cover a full proxy
		// call, which is itself bounded by the client timeout
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Test binding first to catch errors immediately
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}
	listener.Close() // Close the test listener

	// Start server in goroutine now that we know binding works
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server started successfully")
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// handleHealth delegates to handlers.HandleHealth
func (s *Server) handleHealth(c *gin.Context) {
	handler := handlers.HandleHealth()
	handler(c)
}

// handleTokenize delegates to handlers.HandleTokenize with the configured
// client factory
func (s *Server) handleTokenize(c *gin.Context) {
	handler := handlers.HandleTokenize(s.clientFactory)
	handler(c)
}
