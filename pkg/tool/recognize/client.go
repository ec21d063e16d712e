package recognize

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/pipeline"
	"github.com/adrianliechti/lector/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	pipeline *pipeline.Pipeline
}

func New(pipeline *pipeline.Pipeline) (*Client, error) {
	if pipeline == nil {
		return nil, errors.New("pipeline not configured")
	}

	return &Client{
		pipeline: pipeline,
	}, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "recognize_text",
			Description: "Read the text in an image (OCR). Returns the recognized text and the bounding box of each text region",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"image": map[string]any{
						"type":        "string",
						"description": "the image to read, as base64 data or data URL",
					},

					"language": map[string]any{
						"type":        "string",
						"description": "optional language hint (e.g. eng, deu)",
					},
				},

				"required": []string{"image"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "recognize_text" {
		return nil, tool.ErrInvalidTool
	}

	input, ok := parameters["image"].(string)

	if !ok {
		return nil, errors.New("missing image parameter")
	}

	data, err := imaging.FromBase64(input)

	if err != nil {
		return nil, err
	}

	options := &pipeline.RunOptions{}

	if language, ok := parameters["language"].(string); ok {
		options.Language = language
	}

	result, err := c.pipeline.Run(ctx, data, options)

	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(result.Regions))
	regions := make([]Region, 0, len(result.Regions))

	for _, r := range result.Regions {
		bounds := r.Polygon.Bounds()

		texts = append(texts, r.Text)

		regions = append(regions, Region{
			Coordinates: [2][2]int{
				{bounds.Min.X, bounds.Min.Y},
				{bounds.Max.X, bounds.Max.Y},
			},

			Text:       r.Text,
			Confidence: r.Confidence,
		})
	}

	return Result{
		Text:    strings.Join(texts, "\n"),
		Regions: regions,
	}, nil
}
