package bedrock

import (
	"context"
	"errors"
	"image"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"
	"github.com/adrianliechti/lector/pkg/text"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

var _ recognizer.Provider = (*Client)(nil)

const prompt = "Transcribe the text in this image exactly as written. Respond with the transcribed text only, without quotes or commentary. If there is no legible text, respond with an empty string."

// Client recognizes text using a vision model hosted on Amazon
// Bedrock. Credentials and region come from the default AWS config.
type Client struct {
	*Config

	client *bedrockruntime.Client
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

	var loadOptions []func(*config.LoadOptions) error

	if cfg.client != nil {
		loadOptions = append(loadOptions, config.WithHTTPClient(cfg.client))
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background(), loadOptions...)

	if err != nil {
		return nil, err
	}

	return &Client{
		Config: cfg,

		client: bedrockruntime.NewFromConfig(awsConfig),
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

	req := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.model),

		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,

				Content: []types.ContentBlock{
					&types.ContentBlockMemberImage{
						Value: types.ImageBlock{
							Format: types.ImageFormatPng,

							Source: &types.ImageSourceMemberBytes{
								Value: data,
							},
						},
					},

					&types.ContentBlockMemberText{
						Value: instructions,
					},
				},
			},
		},
	}

	resp, err := c.client.Converse(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	message, ok := resp.Output.(*types.ConverseOutputMemberMessage)

	if !ok {
		return nil, errors.New("unexpected converse output")
	}

	var content strings.Builder

	for _, b := range message.Value.Content {
		switch block := b.(type) {
		case *types.ContentBlockMemberText:
			content.WriteString(block.Value)
		}
	}

	return &recognizer.Recognition{
		Text: text.Clean(content.String()),
	}, nil
}
