package tesseract

import (
	"context"
	"image"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"

	"github.com/otiai10/gosseract/v2"
)

var _ recognizer.Provider = &Client{}

// minHeight is the crop height below which the image is upscaled.
// Tesseract degrades noticeably on very small glyphs.
const minHeight = 32

// Client recognizes text using a local Tesseract installation.
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

func (c *Client) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	language := c.language

	if options.Language != "" {
		language = options.Language
	}

	if height := img.Bounds().Dy(); height > 0 && height < minHeight {
		img = imaging.Resize(img, 0, minHeight)
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

	// crops are single text lines
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return nil, err
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, err
	}

	text, err := client.Text()

	if err != nil {
		return nil, err
	}

	result := &recognizer.Recognition{
		Text: strings.TrimSpace(text),
	}

	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		var sum float64

		for _, box := range boxes {
			sum += box.Confidence
		}

		confidence := sum / float64(len(boxes)) / 100

		result.Confidence = &confidence
	}

	return result, nil
}
