package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/lector/pkg/tool"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Tool interface {
	Observable
	tool.Provider
}

type observableTool struct {
	provider string

	tool tool.Provider

	durationMetric metric.Float64Histogram
}

func NewTool(provider string, p tool.Provider) Tool {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("tool.duration", metric.WithUnit("s"))

	return &observableTool{
		tool: p,

		provider: provider,

		durationMetric: durationMetric,
	}
}

func (p *observableTool) otelSetup() {
}

func (p *observableTool) Tools(ctx context.Context) ([]tool.Tool, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "tools")
	defer span.End()

	return p.tool.Tools(ctx)
}

func (p *observableTool) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "execute_tool "+name)
	defer span.End()

	timestamp := time.Now()

	result, err := p.tool.Execute(ctx, name, parameters)

	if err == nil {
		attrs := KeyValues([]KeyValue{
			String("provider", p.provider),
			String("tool", name),
		}, EndUserAttrs(ctx))

		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	return result, err
}
