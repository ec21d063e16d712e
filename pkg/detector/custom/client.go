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

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/imaging"
)

var _ detector.Provider = &Client{}

// Client calls a user-provided detection service. The service receives
// a base64-encoded PNG and returns the outline polygons of all text
// regions it found.
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

func (c *Client) Detect(ctx context.Context, img image.Image, options *detector.DetectOptions) ([]detector.Polygon, error) {
	if options == nil {
		options = new(detector.DetectOptions)
	}

	data, err := imaging.EncodePNG(img)

	if err != nil {
		return nil, err
	}

	body, _ := json.Marshal(DetectRequest{
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

	var result DetectResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	polygons := make([]detector.Polygon, 0, len(result.Polygons))

	for _, points := range result.Polygons {
		polygon := make(detector.Polygon, 0, len(points))

		for _, point := range points {
			polygon = append(polygon, detector.Point{
				X: point[0],
				Y: point[1],
			})
		}

		if len(polygon) == 0 {
			continue
		}

		polygons = append(polygons, polygon)
	}

	return polygons, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
