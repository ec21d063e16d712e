package replicate

import (
	"context"
	"encoding/base64"
	"image"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"

	"github.com/replicate/replicate-go"
)

var _ recognizer.Provider = (*Client)(nil)

// TextExtractOCR is the default hosted OCR model.
const TextExtractOCR = "abiruyt/text-extract-ocr"

// Client recognizes text using a model hosted on Replicate.
type Client struct {
	*Config
	client *replicate.Client
}

func New(model string, options ...Option) (*Client, error) {
	if model == "" {
		model = TextExtractOCR
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	client, err := replicate.NewClient(cfg.Options()...)

	if err != nil {
		return nil, err
	}

	return &Client{
		Config: cfg,
		client: client,
	}, nil
}

func (c *Client) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	data, err := imaging.EncodePNG(img)

	if err != nil {
		return nil, err
	}

	input := replicate.PredictionInput{
		"image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	}

	output, err := c.client.RunWithOptions(ctx, c.model, input, nil, replicate.WithBlockUntilDone())

	if err != nil {
		return nil, err
	}

	return &recognizer.Recognition{
		Text: strings.TrimSpace(convertOutput(output)),
	}, nil
}

func convertOutput(output replicate.PredictionOutput) string {
	switch output := output.(type) {
	case string:
		return output

	case []any:
		var text strings.Builder

		for _, item := range output {
			if s, ok := item.(string); ok {
				text.WriteString(s)
			}
		}

		return text.String()
	}

	return ""
}
