package observability

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with parse-specific span creation
// methods.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{
		tracer:      tp.Tracer(TracerName),
		serviceName: serviceName,
	}
}

// StartParseFilter starts a span for parsing one filter expression.
func (t *Tracer) StartParseFilter(ctx context.Context, model string, exprLen int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "roaquery.parse_filter", trace.WithAttributes(
		OperationAttr(OpParseFilter),
		ModelAttr(model),
		ExpressionLengthAttr(exprLen),
	))
}

// StartParseSort starts a span for parsing an ordered list of sort
// expressions.
func (t *Tracer) StartParseSort(ctx context.Context, model string, count int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "roaquery.parse_sort", trace.WithAttributes(
		OperationAttr(OpParseSort),
		ModelAttr(model),
		SortCountAttr(count),
	))
}

// EndSpan records the outcome on the span and ends it.
func (t *Tracer) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
