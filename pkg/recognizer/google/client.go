package google

import (
	"context"
	"errors"
	"image"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"
	"github.com/adrianliechti/lector/pkg/text"

	"google.golang.org/genai"
)

var _ recognizer.Provider = (*Client)(nil)

const prompt = "Transcribe the text in this image exactly as written. Respond with the transcribed text only, without quotes or commentary. If there is no legible text, respond with an empty string."

// Client recognizes text using a Gemini vision model.
type Client struct {
	*Config
}

func New(model string, options ...Option) (*Client, error) {
	if model == "" {
		return nil, errors.New("invalid model")
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Client{
		Config: cfg,
	}, nil
}

func (c *Client) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	data, err := imaging.EncodePNG(img)

	if err != nil {
		return nil, err
	}

	instructions := prompt

	if options.Language != "" {
		instructions += " The text is written in " + options.Language + "."
	}

	parts := []*genai.Part{
		genai.NewPartFromText(instructions),

		{
			InlineData: &genai.Blob{
				MIMEType: "image/png",
				Data:     data,
			},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, nil)

	if err != nil {
		return nil, err
	}

	return &recognizer.Recognition{
		Text: text.Clean(resp.Text()),
	}, nil
}
