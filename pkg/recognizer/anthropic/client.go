package anthropic

import (
	"context"
	"encoding/base64"
	"errors"
	"image"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"
	"github.com/adrianliechti/lector/pkg/text"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ recognizer.Provider = (*Client)(nil)

const prompt = "Transcribe the text in this image exactly as written. Respond with the transcribed text only, without quotes or commentary. If there is no legible text, respond with an empty string."

// Client recognizes text using an Anthropic vision model.
type Client struct {
	*Config
	messages anthropic.MessageService
}

func New(url, model string, options ...Option) (*Client, error) {
	if model == "" {
		return nil, errors.New("invalid model")
	}

	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Client{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
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

	instructions := prompt

	if options.Language != "" {
		instructions += " The text is written in " + options.Language + "."
	}

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewImageBlock(anthropic.Base64ImageSourceParam{
			Data:      base64.StdEncoding.EncodeToString(data),
			MediaType: anthropic.Base64ImageSourceMediaTypeImagePNG,
		}),

		anthropic.NewTextBlock(instructions),
	}

	message, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 4096,

		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})

	if err != nil {
		return nil, err
	}

	var content strings.Builder

	for _, block := range message.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			content.WriteString(block.Text)
		}
	}

	return &recognizer.Recognition{
		Text: text.Clean(content.String()),
	}, nil
}
