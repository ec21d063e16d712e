package client

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/lector/server/api"
)

type Client struct {
	Health HealthService

	Recognitions RecognitionService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Health: NewHealthService(opts...),

		Recognitions: NewRecognitionService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func convertError(resp *http.Response) error {
	var envelope api.Response

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		return errors.New(envelope.Message)
	}

	return errors.New(resp.Status)
}

func Ptr[T any](v T) *T {
	return &v
}
