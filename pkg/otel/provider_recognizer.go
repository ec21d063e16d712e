package otel

import (
	"context"
	"image"
	"time"

	"github.com/adrianliechti/lector/pkg/recognizer"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Recognizer interface {
	Observable
	recognizer.Provider
}

type observableRecognizer struct {
	model    string
	provider string

	recognizer recognizer.Provider

	durationMetric metric.Float64Histogram
}

func NewRecognizer(provider, model string, p recognizer.Provider) Recognizer {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("recognizer.duration", metric.WithUnit("s"))

	return &observableRecognizer{
		recognizer: p,

		model:    model,
		provider: provider,

		durationMetric: durationMetric,
	}
}

func (p *observableRecognizer) otelSetup() {
}

func (p *observableRecognizer) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "recognize "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.recognizer.Recognize(ctx, img, options)

	if err == nil {
		attrs := KeyValues([]KeyValue{
			String("provider", p.provider),
			String("model", p.model),
		}, EndUserAttrs(ctx))

		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	return result, err
}
