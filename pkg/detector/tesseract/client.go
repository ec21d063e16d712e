package tesseract

import (
	"context"
	"image"
	"strings"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/imaging"

	"github.com/otiai10/gosseract/v2"
)

var _ detector.Provider = &Client{}

// Client detects text lines using a local Tesseract installation.
type Client struct {
	language string
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		language: "eng",
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

	language := c.language

	if options.Language != "" {
		language = options.Language
	}

	data, err := imaging.EncodePNG(img)

	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(strings.Split(language, "+")...); err != nil {
		return nil, err
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, err
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)

	if err != nil {
		return nil, err
	}

	polygons := make([]detector.Polygon, 0, len(boxes))

	for _, box := range boxes {
		if box.Box.Empty() {
			continue
		}

		polygons = append(polygons, detector.FromRectangle(box.Box))
	}

	return polygons, nil
}
