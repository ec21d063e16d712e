package otel

import (
	"os"
)

const instrumentationName = "github.com/adrianliechti/lector"

// DEBUG lowers the log level, TELEMETRY enables the OTLP exporters.
var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

// Observable marks providers already wrapped for instrumentation.
type Observable interface {
	otelSetup()
}
