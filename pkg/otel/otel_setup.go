package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
)

// Setup configures the global logger, tracer and meter providers.
// Without TELEMETRY set, everything stays on the default providers.
func Setup(name, version string) error {
	if !EnableTelemetry {
		return nil
	}

	ctx := context.Background()

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewSchemaless(
			attribute.String("service.name", name),
			attribute.String("service.version", version),
		),
	)

	if err != nil {
		return err
	}

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	return nil
}

// otlpProtocol resolves the exporter protocol for a signal. The
// signal-specific variable takes precedence over the generic one.
func otlpProtocol(signal string) string {
	if val := os.Getenv("OTEL_EXPORTER_OTLP_" + signal + "_PROTOCOL"); val != "" {
		return strings.ToLower(val)
	}

	return strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"))
}
