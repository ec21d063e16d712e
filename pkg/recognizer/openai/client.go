package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"image"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"
	"github.com/adrianliechti/lector/pkg/text"

	"github.com/openai/openai-go/v3"
)

var _ recognizer.Provider = (*Client)(nil)

const prompt = "Transcribe the text in this image exactly as written. Respond with the transcribed text only, without quotes or commentary. If there is no legible text, respond with an empty string."

// Client recognizes text using an OpenAI (or compatible) vision model.
type Client struct {
	*Config
	completions openai.ChatCompletionService
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
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
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

	imageURL := openai.ChatCompletionContentPartImageImageURLParam{
		URL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(instructions),
		openai.ImageContentPart(imageURL),
	}

	completion, err := c.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),

		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
	})

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices")
	}

	return &recognizer.Recognition{
		Text: text.Clean(completion.Choices[0].Message.Content),
	}, nil
}
