package limiter

import (
	"context"
	"image"

	"github.com/adrianliechti/lector/pkg/recognizer"

	"golang.org/x/time/rate"
)

type Recognizer interface {
	Limiter
	recognizer.Provider
}

type limitedRecognizer struct {
	limiter  *rate.Limiter
	provider recognizer.Provider
}

func NewRecognizer(l *rate.Limiter, p recognizer.Provider) Recognizer {
	return &limitedRecognizer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedRecognizer) limiterSetup() {
}

func (p *limitedRecognizer) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Recognize(ctx, img, options)
}
