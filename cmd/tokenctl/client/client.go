// Package client provides the HTTP client for talking to the tokend API.
//
// Wraps the Resty HTTP client with the request/response types of the
// /tokenize endpoint and structured logging for request diagnostics. The
// client issues no retries: a failed or timed-out call is fatal to the
// batch run by contract, so retry policy belongs to the operator, not here.
//
// Implements the batch.Tokenizer interface so the batch runner drives it
// directly.
package client

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/config"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/utils"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/vgs"
)

// TokenizeRequest mirrors the tokend /tokenize request body.
type TokenizeRequest struct {
	Records  []vgs.Record `json:"records"`
	BatchKey string       `json:"batch_key,omitempty"`
}

// TokenizeResponse mirrors the tokend /tokenize success body.
type TokenizeResponse struct {
	Records []vgs.Record `json:"records"`
}

// APIError mirrors the tokend error body.
type APIError struct {
	Detail string `json:"detail"`
}

// TokenizeAPIClient talks to one tokend /tokenize endpoint.
type TokenizeAPIClient struct {
	client *resty.Client
	apiURL string
}

// NewTokenizeAPIClient creates a client for the given tokenize API URL with
// a per-call timeout in seconds.
func NewTokenizeAPIClient(apiURL string, timeout int) *TokenizeAPIClient {
	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	// Configure client with timeout and headers
	client.
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("tokenctl/%s", config.Version))

	// No retries: a failed batch aborts the run with no partial output
	client.SetRetryCount(0)

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &TokenizeAPIClient{
		client: client,
		apiURL: apiURL,
	}
}

// Tokenize submits one batch of records to the tokenize API and returns the
// transformed records in the order the API produced them. Satisfies
// batch.Tokenizer.
func (api *TokenizeAPIClient) Tokenize(records []vgs.Record, batchKey string) ([]vgs.Record, error) {
	if records == nil {
		records = []vgs.Record{}
	}

	var response TokenizeResponse
	var apiErr APIError

	resp, err := api.client.R().
		SetBody(TokenizeRequest{Records: records, BatchKey: batchKey}).
		SetResult(&response).
		SetError(&apiErr).
		Post(api.apiURL)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to tokenize API at %s: %w", api.apiURL, err)
	}

	if !resp.IsSuccess() {
		detail := apiErr.Detail
		if detail == "" {
			detail = resp.String()
		}
		return nil, fmt.Errorf("tokenize API request failed with status %d: %s", resp.StatusCode(), detail)
	}

	return response.Records, nil
}
