// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(utils.WithTimeout(5 * time.Second))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL relative request paths are resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) { c.SetBaseURL(baseURL) }
}

// WithTimeout bounds every request. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool, applying opts in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
