package custom

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"io"
	"net/http"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"
)

var _ recognizer.Provider = &Client{}

// Client calls a user-provided recognition service. The service
// receives a base64-encoded PNG of a single region and returns its
// text and an optional confidence score.
type Client struct {
	client *http.Client

	url    string
	token  string
	device string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	data, err := imaging.EncodePNG(img)

	if err != nil {
		return nil, err
	}

	body, _ := json.Marshal(RecognizeRequest{
		Image:    base64.StdEncoding.EncodeToString(data),
		Language: options.Language,
		Device:   c.device,
	})

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result RecognizeResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &recognizer.Recognition{
		Text:       result.Text,
		Confidence: result.Confidence,
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
