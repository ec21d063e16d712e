package otel

import (
	"context"
	"image"
	"time"

	"github.com/adrianliechti/lector/pkg/detector"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Detector interface {
	Observable
	detector.Provider
}

type observableDetector struct {
	model    string
	provider string

	detector detector.Provider

	regionsMetric  metric.Int64Histogram
	durationMetric metric.Float64Histogram
}

func NewDetector(provider, model string, p detector.Provider) Detector {
	meter := otel.Meter(instrumentationName)

	regionsMetric, _ := meter.Int64Histogram("detector.regions")
	durationMetric, _ := meter.Float64Histogram("detector.duration", metric.WithUnit("s"))

	return &observableDetector{
		detector: p,

		model:    model,
		provider: provider,

		regionsMetric:  regionsMetric,
		durationMetric: durationMetric,
	}
}

func (p *observableDetector) otelSetup() {
}

func (p *observableDetector) Detect(ctx context.Context, img image.Image, options *detector.DetectOptions) ([]detector.Polygon, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "detect "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.detector.Detect(ctx, img, options)

	if err == nil {
		attrs := KeyValues([]KeyValue{
			String("provider", p.provider),
			String("model", p.model),
		}, EndUserAttrs(ctx))

		p.regionsMetric.Record(ctx, int64(len(result)), metric.WithAttributes(attrs...))
		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	return result, err
}
