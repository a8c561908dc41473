// Package probe implements the one-shot registration client used for
// manual verification against an external auth service. Nothing in this
// repository serves the endpoint it calls.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yemaster/vtix-ng/internal/models"
)

const registerPath = "/auth/register"

// Client posts registration requests to a remote auth service.
type Client struct {
	client *resty.Client
	origin string
}

// Option customizes New.
type Option func(*Client)

// WithTimeout bounds each request. Without it the probe blocks until
// the transport gives up on its own.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.SetTimeout(timeout)
	}
}

// New returns a Client targeting baseURL and sending origin as the
// Origin header on every call.
func New(baseURL, origin string, optionsProto ...Option) *Client {
	theClient := &Client{
		client: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		origin: origin,
	}
	for _, protoOption := range optionsProto {
		protoOption(theClient)
	}

	return theClient
}

// AddUser posts {username, password} to /auth/register and returns the
// response body decoded as JSON. The body is decoded regardless of the
// HTTP status; transport and decode failures are returned unretried.
func (c *Client) AddUser(ctx context.Context, username, password string) (map[string]interface{}, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Origin", c.origin).
		SetBody(models.RegisterRequest{
			Username: username,
			Password: password,
		}).
		Post(registerPath)
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}

	return result, nil
}
