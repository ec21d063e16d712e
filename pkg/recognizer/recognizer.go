package recognizer

import (
	"context"
	"image"
)

// Provider reads the text of a single, already cropped image region.
type Provider interface {
	Recognize(ctx context.Context, img image.Image, options *RecognizeOptions) (*Recognition, error)
}

type RecognizeOptions struct {
	Language string
}

type Recognition struct {
	Text string

	// Confidence is a score between 0 and 1, or nil if the backend
	// does not report one.
	Confidence *float64
}
