package limiter

import (
	"context"
	"image"

	"github.com/adrianliechti/lector/pkg/detector"

	"golang.org/x/time/rate"
)

type Detector interface {
	Limiter
	detector.Provider
}

type limitedDetector struct {
	limiter  *rate.Limiter
	provider detector.Provider
}

func NewDetector(l *rate.Limiter, p detector.Provider) Detector {
	return &limitedDetector{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedDetector) limiterSetup() {
}

func (p *limitedDetector) Detect(ctx context.Context, img image.Image, options *detector.DetectOptions) ([]detector.Polygon, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Detect(ctx, img, options)
}
