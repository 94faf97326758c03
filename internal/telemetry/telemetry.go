// Package telemetry installs an OTLP trace exporter when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Without it the global tracer stays a
// no-op and nothing is exported.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the tracer provider installed by Setup.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup returns nil when tracing is not configured.
func Setup(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	opts, err := endpointOptions(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "portfolio"
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}, nil
}

const tracesPath = "/v1/traces"

// endpointOptions accepts either a base URL ("http://collector:4318", the
// usual form of OTEL_EXPORTER_OTLP_ENDPOINT) or a bare host:port. A URL gets
// the traces path appended and its scheme decides TLS; a bare host is plain
// HTTP unless OTEL_EXPORTER_OTLP_INSECURE=false.
func endpointOptions(endpoint string) ([]otlptracehttp.Option, error) {
	if !strings.Contains(endpoint, "://") {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "false" {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return opts, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT: invalid URL %q", endpoint)
	}
	if !strings.HasSuffix(u.Path, tracesPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + tracesPath
	}
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}

// Shutdown flushes pending spans. Safe on a nil Provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
