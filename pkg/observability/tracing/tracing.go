/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

var logger = log.New("tracing")

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"
	tracerName                    = "https://github.com/trustbloc/vp-verifier"
)

// IsExporterSupported reports whether Initialize accepts the exporter type.
func IsExporterSupported(exporter SpanExporterType) bool {
	switch exporter {
	case None, Jaeger, Stdout:
		return true
	default:
		return false
	}
}

// Initialize registers a global tracer provider exporting spans with the given exporter. The returned
// function flushes and shuts the provider down. With no exporter, a noop tracer is returned and nothing
// is registered.
func Initialize(exporter SpanExporterType, serviceName string) (func(), trace.TracerProvider, trace.Tracer, error) {
	if exporter == None {
		tp := noop.NewTracerProvider()

		return func() {}, tp, tp.Tracer(""), nil
	}

	spanExporter, err := newSpanExporter(exporter)
	if err != nil {
		return nil, nil, nil, err
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ProcessPIDKey.Int(os.Getpid()),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Tracing enabled", logfields.WithAdditionalMessage(exporter))

	shutdown := func() {
		if shutdownErr := tp.Shutdown(context.Background()); shutdownErr != nil {
			logger.Warn("Error shutting down tracer provider", log.WithError(shutdownErr))
		}
	}

	return shutdown, tp, tp.Tracer(tracerName), nil
}

func newSpanExporter(exporter SpanExporterType) (tracesdk.SpanExporter, error) {
	switch exporter {
	case Jaeger:
		var endpoint jaeger.EndpointOption

		switch {
		case os.Getenv(JaegerAgentEndpointEnvKey) != "":
			endpoint = jaeger.WithAgentEndpoint()
		case os.Getenv(JaegerCollectorEndpointEnvKey) != "":
			endpoint = jaeger.WithCollectorEndpoint()
		default:
			return nil, fmt.Errorf("jaeger exporter requires %s or %s",
				JaegerAgentEndpointEnvKey, JaegerCollectorEndpointEnvKey)
		}

		exp, err := jaeger.New(endpoint)
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}

		return exp, nil
	case Stdout:
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}

		return exp, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}
}
