package support

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"google.golang.org/grpc/credentials"

	"github.com/pkg/errors"
)

// ConsoleExporter prints spans to w. The entry points pass stderr because
// one-shot responses are written to stdout.
func ConsoleExporter(w io.Writer) (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint(), stdouttrace.WithoutTimestamps())
}

func HoneycombExporter(ctx context.Context, team string, dataset string) (*otlptrace.Exporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint("api.honeycomb.io:443"),
		otlptracegrpc.WithHeaders(map[string]string{
			"x-honeycomb-team":    team,
			"x-honeycomb-dataset": dataset,
		}),
		otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")),
	}

	client := otlptracegrpc.NewClient(opts...)
	return otlptrace.New(ctx, client)
}

func JaegerExporter() (*jaeger.Exporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint("http://localhost:14268/api/traces")))
}

// Tracing installs the exporter selected by cfg as the global tracer
// provider. The returned function flushes and shuts it down.
func Tracing(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	var exporter trace.SpanExporter
	var err error

	switch cfg.Trace {
	case "", "none":
		return func(context.Context) error { return nil }, nil
	case "console":
		exporter, err = ConsoleExporter(os.Stderr)
	case "jaeger":
		exporter, err = JaegerExporter()
	case "honeycomb":
		exporter, err = HoneycombExporter(ctx, cfg.HoneycombTeam, cfg.HoneycombDataset)
	default:
		return nil, errors.Errorf("unknown trace exporter %q", cfg.Trace)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s exporter", cfg.Trace)
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewSchemaless(semconv.ServiceNameKey.String("wee-void"))),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
