package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-user-directory-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Every request carries the client's User-Agent.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
