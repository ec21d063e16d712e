package paddle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"io"
	"net/http"
	"strings"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/imaging"
)

var _ detector.Provider = &Client{}

// defaultModule is the detection route of the PaddleOCR hubserving
// deployment. Registry-style deployments serve their module name
// instead (e.g. ch_pp-ocrv3_det).
const defaultModule = "ocr_det"

// Client talks to a PaddleOCR hub-serving deployment running a text
// detection module.
type Client struct {
	client *http.Client

	url    string
	token  string
	module string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url:    url,
		module: defaultModule,
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
		Images: []string{base64.StdEncoding.EncodeToString(data)},
	})

	u := strings.TrimRight(c.url, "/") + "/predict/" + c.module

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
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

	if result.Status != "" && result.Status != "000" {
		return nil, errors.New("detection failed: " + result.Message)
	}

	var polygons []detector.Polygon

	for _, regions := range result.Results {
		for _, region := range regions {
			polygon := make(detector.Polygon, 0, len(region.TextRegion))

			for _, point := range region.TextRegion {
				polygon = append(polygon, detector.Point{
					X: int(point[0]),
					Y: int(point[1]),
				})
			}

			if len(polygon) == 0 {
				continue
			}

			polygons = append(polygons, polygon)
		}
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
