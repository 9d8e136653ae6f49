package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// clientUserAgent identifies requests of the notes command-line client.
const clientUserAgent = "go-notes-keeper-client"

// HTTPClient embeds *resty.Client so callers use resty's request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends the notes client
// User-Agent and accepts JSON.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", clientUserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// NewHTTPClientWithTimeout returns an HTTPClient whose requests are bounded
// by timeout. A non-positive timeout leaves resty's default in place.
func NewHTTPClientWithTimeout(timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}
