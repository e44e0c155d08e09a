package trace

import (
	"context"
	"time"

	"github.com/labworks/labman/pkg/middleware/logger"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type InitConfig struct {
	ServiceName     string
	Version         string
	TraceEndpoint   string
	MetricEndpoint  string
	TraceProject    string
	TraceInstanceID string
	TraceAK         string
	TraceSK         string
}

var (
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
)

// InitTrace wires the global tracer and meter providers. Without
// collector endpoints both fall back to stdout exporters, which is the
// local development setup.
func InitTrace(ctx context.Context, conf *InitConfig) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(conf.ServiceName),
			semconv.ServiceVersionKey.String(conf.Version),
		),
	)
	if err != nil {
		logger.Errorf(ctx, "build otel resource err: %+v", err)
		return
	}

	traceExp, err := newTraceExporter(ctx, conf)
	if err != nil {
		logger.Errorf(ctx, "build trace exporter err: %+v", err)
		return
	}
	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	metricExp, interval, err := newMetricExporter(ctx, conf)
	if err != nil {
		logger.Errorf(ctx, "build metric exporter err: %+v", err)
		return
	}
	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(meterProvider)

	if err := host.Start(host.WithMeterProvider(meterProvider)); err != nil {
		logger.Errorf(ctx, "start host instrumentation err: %+v", err)
	}
	if err := runtime.Start(
		runtime.WithMeterProvider(meterProvider),
		runtime.WithMinimumReadMemStatsInterval(10*time.Second),
	); err != nil {
		logger.Errorf(ctx, "start runtime instrumentation err: %+v", err)
	}
}

func newTraceExporter(ctx context.Context, conf *InitConfig) (sdktrace.SpanExporter, error) {
	if conf.TraceEndpoint == "" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(conf.TraceEndpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithHeaders(authHeaders(conf)),
	)
}

func newMetricExporter(ctx context.Context, conf *InitConfig) (sdkmetric.Exporter, time.Duration, error) {
	if conf.MetricEndpoint == "" {
		exp, err := stdoutmetric.New()
		return exp, time.Minute, err
	}
	exp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(conf.MetricEndpoint),
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithHeaders(authHeaders(conf)),
	)
	return exp, 30 * time.Second, err
}

// authHeaders carries the collector project and credential headers when
// a managed backend is configured.
func authHeaders(conf *InitConfig) map[string]string {
	headers := map[string]string{}
	if conf.TraceProject != "" {
		headers["x-otel-project"] = conf.TraceProject
	}
	if conf.TraceInstanceID != "" {
		headers["x-otel-instance-id"] = conf.TraceInstanceID
	}
	if conf.TraceAK != "" {
		headers["x-otel-ak"] = conf.TraceAK
	}
	if conf.TraceSK != "" {
		headers["x-otel-sk"] = conf.TraceSK
	}
	return headers
}

func CloseTrace() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if tracerProvider != nil {
		_ = tracerProvider.Shutdown(ctx)
	}
	if meterProvider != nil {
		_ = meterProvider.Shutdown(ctx)
	}
}
