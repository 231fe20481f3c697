package vgs

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vaultline-dev/tokenbridge/internal/validate"
)

const (
	// DefaultRoutePath is the default proxy route where aliasing rules apply.
	DefaultRoutePath = "/post"

	// DefaultTimeout bounds each proxy call when no timeout is configured.
	DefaultTimeout = 30 * time.Second
)

// Environment variable names for client construction. The proxy URL carries
// the tenant identity; headers typically carry auth and must never be
// hardcoded, which is why they only enter through the environment.
const (
	EnvProxyURL    = "VGS_PROXY_URL"
	EnvRoutePath   = "VGS_ROUTE_PATH"
	EnvHeadersJSON = "VGS_HEADERS_JSON"
	EnvTimeout     = "VGS_TIMEOUT"
)

// Config holds all parameters required to construct a proxy client.
//
// A Config is built once per call (from the environment or explicit values)
// and is immutable afterwards; it owns no persistent resources beyond the
// transient connection each call opens and closes.
type Config struct {
	ProxyURL  string            `validate:"required,url"` // Base proxy URL, e.g. https://tntXXX.sandbox.verygoodproxy.com
	RoutePath string            // Proxy route with aliasing rules, e.g. /post or /tokenize
	Headers   map[string]string // Extra headers (e.g. auth) sent with each request
	Timeout   time.Duration     // Per-call timeout
}

// DefaultConfig returns a Config with default route path and timeout.
// The proxy URL must still be set by the caller before use.
func DefaultConfig() *Config {
	return &Config{
		RoutePath: DefaultRoutePath,
		Headers:   map[string]string{},
		Timeout:   DefaultTimeout,
	}
}

// Validate checks the configuration and normalizes the URL components.
// The proxy URL loses any trailing slash and the route path gains a leading
// one, so Endpoint always joins cleanly. All failures wrap ErrConfig.
func (c *Config) Validate() error {
	c.ProxyURL = strings.TrimRight(c.ProxyURL, "/")
	if c.ProxyURL == "" {
		return fmt.Errorf("%w: proxy URL is not set", ErrConfig)
	}
	if err := validate.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: invalid proxy URL '%s': %v", ErrConfig, c.ProxyURL, err)
	}
	if c.RoutePath == "" {
		c.RoutePath = DefaultRoutePath
	}
	if !strings.HasPrefix(c.RoutePath, "/") {
		c.RoutePath = "/" + c.RoutePath
	}
	// A zero timeout means unset and gets the default; a negative one is a
	// caller mistake and fails instead of silently becoming 30s.
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if err := validate.ValidatePositiveTimeout(c.Timeout, "proxy timeout"); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}

// Endpoint returns the full URL that tokenize calls are posted to.
func (c *Config) Endpoint() string {
	return c.ProxyURL + c.RoutePath
}

// ConfigFromEnv constructs a Config from process environment variables.
//
// VGS_PROXY_URL is required; VGS_ROUTE_PATH, VGS_HEADERS_JSON (a JSON object
// of header name to value), and VGS_TIMEOUT (seconds, fractional allowed,
// must be positive) are optional. Malformed values fail with ErrConfig
// rather than being silently defaulted, since a half-applied configuration
// would send records to the wrong place or without auth.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	cfg.ProxyURL = os.Getenv(EnvProxyURL)
	if cfg.ProxyURL == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrConfig, EnvProxyURL)
	}

	if route := os.Getenv(EnvRoutePath); route != "" {
		cfg.RoutePath = route
	}

	if raw := os.Getenv(EnvHeadersJSON); raw != "" {
		headers := map[string]string{}
		if err := json.Unmarshal([]byte(raw), &headers); err != nil {
			return nil, fmt.Errorf("%w: malformed %s: %v", ErrConfig, EnvHeadersJSON, err)
		}
		cfg.Headers = headers
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed %s '%s': %v", ErrConfig, EnvTimeout, raw, err)
		}
		if seconds <= 0 {
			return nil, fmt.Errorf("%w: %s must be positive, got '%s'", ErrConfig, EnvTimeout, raw)
		}
		cfg.Timeout = time.Duration(seconds * float64(time.Second))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
