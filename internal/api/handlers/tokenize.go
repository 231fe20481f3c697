// Package handlers provides HTTP endpoint handlers for the tokenization
// service. Handlers are constructed through factories that receive their
// dependencies explicitly, keeping them testable without a running daemon.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaultline-dev/tokenbridge/internal/vgs"
)

// Tokenizer is the subset of the proxy client the tokenize endpoint uses.
type Tokenizer interface {
	TokenizeRecords(records []vgs.Record, shape vgs.Shape) ([]vgs.Record, error)
}

// ClientFactory constructs a Tokenizer from current process configuration.
// Called once per tokenize request so environment changes apply immediately.
type ClientFactory func() (Tokenizer, error)

// EnvClientFactory is the production factory: a proxy client built from the
// VGS_* environment variables.
func EnvClientFactory() (Tokenizer, error) {
	return vgs.FromEnv()
}

// TokenizeRequest is the /tokenize request body. BatchKey is optional; when
// set, the records are nested under that key on the way to the proxy and the
// proxy's response is expected to mirror the nesting.
type TokenizeRequest struct {
	Records  []vgs.Record `json:"records"`
	BatchKey string       `json:"batch_key"`
}

// TokenizeResponse is the /tokenize success body. Records are returned in
// the order the proxy produced them, which is not guaranteed to match the
// input order.
type TokenizeResponse struct {
	Records []vgs.Record `json:"records"`
}

// ErrorResponse carries a human-readable failure description.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HandleTokenize forwards a batch of records to the tokenization proxy and
// echoes back the transformed records.
//
// Failure mapping: a request body that does not parse is a 400; a client
// that cannot be constructed (server-side misconfiguration) is a 500; any
// failure of the delegated tokenize call (upstream dependency) is a 502.
// Every failure body carries the underlying error text.
func HandleTokenize(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Detail: fmt.Sprintf("invalid request body: %v", err),
			})
			return
		}
		if req.Records == nil {
			req.Records = []vgs.Record{}
		}

		client, err := factory()
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, vgs.ErrConfig) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, ErrorResponse{
				Detail: fmt.Sprintf("tokenization client init failed: %v", err),
			})
			return
		}

		out, err := client.TokenizeRecords(req.Records, vgs.ShapeFor(req.BatchKey))
		if err != nil {
			c.JSON(http.StatusBadGateway, ErrorResponse{
				Detail: fmt.Sprintf("tokenization failed: %v", err),
			})
			return
		}
		if out == nil {
			out = []vgs.Record{}
		}

		c.JSON(http.StatusOK, TokenizeResponse{Records: out})
	}
}
