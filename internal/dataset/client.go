// Package dataset retrieves and filters the remote student dataset. The
// remote endpoint returns a JSON envelope whose DATA field holds a
// pipe-delimited text table; parsing and filtering happen entirely in memory,
// once per request.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUnavailable is returned for any fetch failure: network errors,
// non-success HTTP status, or a malformed payload. Callers treat all of them
// as "data unavailable".
var ErrUnavailable = errors.New("dataset unavailable")

type payload struct {
	Data string `json:"DATA"`
}

// Client fetches the raw dataset text from a fixed remote URL.
type Client struct {
	url    string
	client *resty.Client
}

// NewClient creates a dataset Client for the given URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: resty.New().
			SetTimeout(10 * time.Second),
	}
}

// Fetch performs a single GET and returns the raw delimited text. There is no
// retry and no caching: every call hits the remote endpoint.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	var body payload
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode())
	}
	if body.Data == "" {
		return "", fmt.Errorf("%w: missing DATA field", ErrUnavailable)
	}

	return body.Data, nil
}
