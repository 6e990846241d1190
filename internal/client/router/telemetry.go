package router

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer resolves the tracer on every call so a provider installed after client construction is honoured.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
