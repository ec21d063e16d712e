package custom

import (
	"net/http"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithDevice forwards a device hint (e.g. cpu, cuda:0) to the service.
func WithDevice(device string) Option {
	return func(c *Client) {
		c.device = device
	}
}
