package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// Health check endpoint; makes no downstream call
	router.GET("/health", s.handleHealth)

	// Tokenization endpoint
	router.POST("/tokenize", s.handleTokenize)
}
