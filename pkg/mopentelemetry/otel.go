// Package mopentelemetry wires the span-per-step tracing used across the
// validation chain, upsert engine, bootstrap and query planner.
package mopentelemetry

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry wires a tracer provider exporting spans over OTLP/gRPC.
type Telemetry struct {
	ServiceName               string
	ServiceVersion            string
	DeploymentEnv             string
	CollectorExporterEndpoint string
	TracerProvider            *sdktrace.TracerProvider
	shutdown                  func()
}

func (tl *Telemetry) newResource() (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(tl.ServiceName),
			semconv.ServiceVersion(tl.ServiceVersion),
			semconv.DeploymentEnvironment(tl.DeploymentEnv)),
	)
}

func (tl *Telemetry) newTracerExporter(ctx context.Context) (*otlptrace.Exporter, error) {
	endpoint := tl.CollectorExporterEndpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}

	return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
}

func (tl *Telemetry) newTracerProvider(rsc *sdkresource.Resource, exp *otlptrace.Exporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(rsc),
	)
}

// ShutdownTelemetry flushes and stops the tracer provider.
func (tl *Telemetry) ShutdownTelemetry() {
	if tl.shutdown != nil {
		tl.shutdown()
	}
}

// InitializeTelemetry sets up the global tracer provider and propagator.
func (tl *Telemetry) InitializeTelemetry() *Telemetry {
	ctx := context.Background()

	r, err := tl.newResource()
	if err != nil {
		log.Fatalf("can't initialize resource: %v", err)
	}

	tExp, err := tl.newTracerExporter(ctx)
	if err != nil {
		log.Fatalf("can't initialize tracer exporter: %v", err)
	}

	tp := tl.newTracerProvider(r, tExp)
	otel.SetTracerProvider(tp)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	shutdown := func() {
		if err := tExp.Shutdown(ctx); err != nil {
			log.Printf("can't shutdown tracer exporter: %v", err)
		}

		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("can't shutdown tracer provider: %v", err)
		}
	}

	return &Telemetry{
		ServiceName:    tl.ServiceName,
		TracerProvider: tp,
		shutdown:       shutdown,
	}
}

// SetSpanAttributesFromStruct marshals valueStruct to JSON and attaches it to span under key.
func SetSpanAttributesFromStruct(span *trace.Span, key string, valueStruct any) error {
	vBytes, err := json.Marshal(valueStruct)
	if err != nil {
		return err
	}

	(*span).SetAttributes(attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(string(vBytes)),
	})

	return nil
}

// HandleSpanError records err on span and marks the span's status as an error.
func HandleSpanError(span *trace.Span, message string, err error) {
	(*span).SetStatus(codes.Error, message+": "+err.Error())
	(*span).RecordError(err)
}
