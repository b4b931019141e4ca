package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultEndpoint = "localhost:4318"

// Shutdown — остановка провайдера с досылкой накопленных спанов.
type Shutdown func(context.Context) error

// SetupTracing — OTLP/HTTP экспорт, семплинг по доле трасс и глобальные пропагаторы.
// Решение о семплинге наследуется от родительского спана: страница и бэкенд видят одну трассу.
func SetupTracing(ctx context.Context, serviceName, endpoint string, sampleRatio float64) (Shutdown, error) {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := NewProvider(serviceName, sampleRatio, sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(Propagator())

	return tp.Shutdown, nil
}

// NewProvider — провайдер с ресурсом сервиса и сэмплером; экспорт задаётся через opts.
func NewProvider(serviceName string, sampleRatio float64, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(Sampler(sampleRatio)),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			attribute.String("storefront.component", "edge"),
		)),
	}
	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

// Sampler — ParentBased(TraceIDRatio); доля зажимается в [0..1].
func Sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Propagator — W3C TraceContext + Baggage.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}
