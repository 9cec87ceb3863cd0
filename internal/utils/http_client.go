package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const bearerScheme = "Bearer"

// BearerHeader returns the Authorization header value for credential.
func BearerHeader(credential string) string {
	return bearerScheme + " " + credential
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/events")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client pointed at baseURL with the given
// per-request timeout and JSON as the default content type.
//
// A baseURL without a scheme ("localhost:8080") gets "http://". A zero
// timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL adds the http scheme when none is present and then trims
// trailing slashes. An address that is only a scheme ("http://") comes back
// without a host, so callers must still check the parsed host.
func NormalizeBaseURL(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return address
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return strings.TrimRight(address, "/")
}
