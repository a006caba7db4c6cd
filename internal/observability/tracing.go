package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationPrefix = "netprofile/"

// Tracer returns a tracer from the global provider. Without a configured
// provider spans are no-ops.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(instrumentationPrefix + component)
}
