package trace

import (
	"context"
	"fmt"

	"github.com/hupe1980/roundtable/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTLPOptions configure the OTLP recorder.
type OTLPOptions struct {
	// ServiceName identifies this process in the collector UI.
	ServiceName string
	// Insecure disables transport security (plaintext gRPC). Typical for a
	// collector on localhost.
	Insecure bool
	// Logger receives best-effort diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// OTLPRecorder exports agent invocation spans to a collector over OTLP gRPC.
// The collector reference is held explicitly by the recorder rather than via
// ambient global tracer state; lifetime is bounded by NewOTLPRecorder /
// Shutdown. Export runs on the SDK's batch processor, so Record never blocks
// a run on collector availability.
type OTLPRecorder struct {
	tp     *sdktrace.TracerProvider
	tracer oteltrace.Tracer
	logger logging.Logger
}

// NewOTLPRecorder connects a span exporter to the collector at endpoint
// (host:port) and returns a Recorder backed by a batching tracer provider.
func NewOTLPRecorder(ctx context.Context, endpoint string, optFns ...func(o *OTLPOptions)) (*OTLPRecorder, error) {
	opts := OTLPOptions{
		ServiceName: "roundtable",
		Insecure:    true,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	exporterOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if opts.Insecure {
		exporterOpts = append(exporterOpts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(opts.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &OTLPRecorder{
		tp:     tp,
		tracer: tp.Tracer("github.com/hupe1980/roundtable/trace"),
		logger: opts.Logger,
	}, nil
}

// Record implements Recorder. The finished Span is replayed onto an OTEL span
// with its original start / end timestamps and attached as attributes.
func (r *OTLPRecorder) Record(ctx context.Context, span Span) {
	_, otelSpan := r.tracer.Start(ctx, "agent.produce",
		oteltrace.WithTimestamp(span.StartTime),
		oteltrace.WithAttributes(
			attribute.String("roundtable.span.id", span.ID),
			attribute.String("roundtable.run.id", span.RunID),
			attribute.String("roundtable.agent", span.Agent),
			attribute.Int("roundtable.turn", span.Turn),
			attribute.String("roundtable.input", span.Input),
			attribute.String("roundtable.output", span.Output),
		),
	)

	if span.Status == StatusError {
		otelSpan.SetStatus(codes.Error, span.Error)
	} else {
		otelSpan.SetStatus(codes.Ok, "")
	}

	otelSpan.End(oteltrace.WithTimestamp(span.EndTime))
}

// Shutdown flushes pending spans and closes the exporter.
func (r *OTLPRecorder) Shutdown(ctx context.Context) error {
	if err := r.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}
