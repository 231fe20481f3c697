package vgs

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
)

// rawBodyPreview limits how much of a non-JSON proxy response is echoed into
// error messages for diagnostics.
const rawBodyPreview = 200

// Record is one JSON-object-shaped unit of data being tokenized, mapping
// field names to arbitrary JSON-compatible values. Schema-agnostic: the
// client forwards whatever fields are present and returns whatever the
// proxy produced, with no fixed field set.
type Record map[string]any

// Client posts JSON payloads to the tokenization proxy route and returns the
// transformed JSON. Each call opens and closes its own connection, bounded by
// the configured timeout; there is no retry logic at this layer because a
// failed or timed-out call is fatal to the whole run.
type Client struct {
	client   *resty.Client
	endpoint string
}

// restyLogger implements resty.Logger and routes the client library's
// internal logs through structured logging.
type restyLogger struct{}

// Errorf routes error messages through structured logging.
func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// New creates a proxy client from the given configuration. The configuration
// is validated and normalized first; construction fails with ErrConfig when
// it is unusable.
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(restyLogger{})

	// Content-Type first so a configured header of the same name wins
	client.
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	for name, value := range cfg.Headers {
		client.SetHeader(name, value)
	}

	// No retries at any layer: the timeout is the only failure bound
	client.SetRetryCount(0)

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Posting to tokenization proxy: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Proxy response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Proxy request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{
		client:   client,
		endpoint: cfg.Endpoint(),
	}, nil
}

// FromEnv constructs a proxy client from process environment variables.
// See ConfigFromEnv for the variable set and failure modes.
func FromEnv() (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// TokenizeJSON sends an arbitrary JSON payload to the proxy route and returns
// the decoded JSON response unchanged. The client performs no interpretation
// of field names.
//
// Fails with ErrNetwork when the connection cannot be established or the
// proxy answers with a non-2xx status, and with ErrDecode when the response
// body is not valid JSON; the decode error message includes a prefix of the
// raw body for diagnostics.
func (c *Client) TokenizeJSON(payload any) (any, error) {
	resp, err := c.client.R().
		SetBody(payload).
		Post(c.endpoint)

	if err != nil {
		return nil, fmt.Errorf("%w: failed to reach proxy at %s: %v", ErrNetwork, c.endpoint, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: proxy returned status %d: %s",
			ErrNetwork, resp.StatusCode(), bodyPreview(resp.Body()))
	}

	var decoded any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("%w: proxy response was not JSON: %s",
			ErrDecode, bodyPreview(resp.Body()))
	}

	return decoded, nil
}

// TokenizeRecords tokenizes a batch of records using the given request shape.
//
// For KeyedObject the records are nested under the shape's key and the
// response must be an object containing that key; for BareArray the records
// are sent and received as a bare array. Either way the unwrapped value must
// be an array of JSON objects, else the call fails with ErrShape.
//
// The returned records are whatever the proxy produced, in the proxy's
// order. Record-level ordering within a batch is NOT guaranteed to match
// input order, and length equality against the input is the caller's
// invariant to enforce, not this method's.
func (c *Client) TokenizeRecords(records []Record, shape Shape) ([]Record, error) {
	var payload any
	switch shape.Mode {
	case KeyedObject:
		payload = map[string]any{shape.Key: records}
	default:
		payload = records
	}

	transformed, err := c.TokenizeJSON(payload)
	if err != nil {
		return nil, err
	}

	var unwrapped any
	switch shape.Mode {
	case KeyedObject:
		obj, ok := transformed.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w for batch_key mode: response is not an object", ErrShape)
		}
		value, ok := obj[shape.Key]
		if !ok {
			return nil, fmt.Errorf("%w for batch_key mode: response has no %q key", ErrShape, shape.Key)
		}
		unwrapped = value
	default:
		unwrapped = transformed
	}

	list, ok := unwrapped.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: proxy response is not a list of records", ErrShape)
	}

	out := make([]Record, 0, len(list))
	for i, element := range list {
		obj, ok := element.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d of proxy response is not an object", ErrShape, i)
		}
		out = append(out, Record(obj))
	}

	return out, nil
}

// bodyPreview returns the first rawBodyPreview bytes of a response body for
// inclusion in error messages.
func bodyPreview(body []byte) string {
	if len(body) > rawBodyPreview {
		return string(body[:rawBodyPreview])
	}
	return string(body)
}
