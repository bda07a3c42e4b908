// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry installs the OpenTelemetry tracer provider that
// the API client's otelhttp transport reports to.
//
// Exporter settings beyond the endpoint come from the standard
// OTEL_EXPORTER_OTLP_* environment variables. When telemetry is
// disabled, a provider with no exporter is installed so instrumented
// code runs unchanged.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config selects whether and where spans are exported.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string

	// Endpoint is the collector host:port. Empty defers to the
	// exporter's environment handling.
	Endpoint string
}

// Shutdown flushes pending spans and releases the exporter.
type Shutdown func(context.Context) error

// Init builds a tracer provider for config and installs it as the
// global provider along with W3C trace-context propagation.
func Init(ctx context.Context, config Config) (*sdktrace.TracerProvider, Shutdown, error) {
	if !config.Enabled {
		provider := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(provider)
		return provider, provider.Shutdown, nil
	}

	res, err := newResource(ctx, config.ServiceName, config.ServiceVersion)
	if err != nil {
		return nil, nil, err
	}

	options := []otlptracegrpc.Option{
		otlptracegrpc.WithTimeout(10 * time.Second),
	}
	if config.Endpoint != "" {
		options = append(options, otlptracegrpc.WithEndpoint(config.Endpoint))
	}

	// The exporter outlives ctx, which only bounds startup.
	exporter, err := otlptracegrpc.New(context.Background(), options...)
	if err != nil {
		return nil, nil, fmt.Errorf("telemetry: creating trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider, provider.Shutdown, nil
}

// newResource merges the service attributes over the SDK defaults.
// OTEL_RESOURCE_ATTRIBUTES and OTEL_SERVICE_NAME are honored.
func newResource(ctx context.Context, serviceName, serviceVersion string) (*resource.Resource, error) {
	if serviceVersion == "" {
		serviceVersion = "dev"
	}
	service, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
		resource.WithSchemaURL(semconv.SchemaURL),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating resource: %w", err)
	}

	merged, err := resource.Merge(resource.Default(), service)
	if err != nil {
		if errors.Is(err, resource.ErrPartialResource) || errors.Is(err, resource.ErrSchemaURLConflict) {
			return merged, nil
		}
		return nil, fmt.Errorf("telemetry: merging resources: %w", err)
	}
	return merged, nil
}
