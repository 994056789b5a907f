package middleware

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/xraph/frankie"
)

// TracingConfig defines configuration for tracing middleware
type TracingConfig struct {
	// TracerName names the tracer obtained from the global provider
	TracerName string

	// TracerProvider overrides the global provider when set
	TracerProvider oteltrace.TracerProvider
}

// DefaultTracingConfig returns default tracing configuration
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{TracerName: "github.com/xraph/frankie"}
}

// Tracing middleware opens an OpenTelemetry span per request.
func Tracing() frankie.Middleware {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig middleware opens a span per request with custom
// configuration. The span covers the rest of the chain including the
// matched handler; handler failures mark the span as errored.
func TracingWithConfig(config TracingConfig) frankie.Middleware {
	provider := config.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(config.TracerName)

	return func(next frankie.Handler) frankie.Handler {
		return func(c *frankie.Context) error {
			ctx, span := tracer.Start(c.Context(), c.Method()+" "+c.Path(),
				oteltrace.WithSpanKind(oteltrace.SpanKindServer),
				oteltrace.WithAttributes(
					attribute.String("http.method", c.Method()),
					attribute.String("http.target", c.Path()),
				),
			)
			defer span.End()

			c.WithContext(ctx)

			err := next(c)

			span.SetAttributes(attribute.Int("http.status_code", c.Status()))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return err
		}
	}
}
