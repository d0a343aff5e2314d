package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the parse-specific metric instruments.
type Metrics struct {
	parseDuration metric.Float64Histogram
	parseCount    metric.Int64Counter
	errorCount    metric.Int64Counter
	cacheHitCount metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Instrument creation only fails on invalid parameters; on error we fall
	// back to an undescribed instrument and carry on with partial metrics.
	var err error

	m.parseDuration, err = meter.Float64Histogram(
		"roaquery.parse.duration",
		metric.WithDescription("Duration of query expression parses in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.parseDuration, _ = meter.Float64Histogram("roaquery.parse.duration")
	}

	m.parseCount, err = meter.Int64Counter(
		"roaquery.parse.count",
		metric.WithDescription("Total number of query expression parses"),
		metric.WithUnit("{parse}"),
	)
	if err != nil {
		m.parseCount, _ = meter.Int64Counter("roaquery.parse.count")
	}

	m.errorCount, err = meter.Int64Counter(
		"roaquery.parse.error.count",
		metric.WithDescription("Total number of failed query expression parses"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("roaquery.parse.error.count")
	}

	m.cacheHitCount, err = meter.Int64Counter(
		"roaquery.parse.cache.hits",
		metric.WithDescription("Total number of parses served from the parse cache"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		m.cacheHitCount, _ = meter.Int64Counter("roaquery.parse.cache.hits")
	}

	return m
}

// RecordParse records the duration and outcome of one parse operation.
func (m *Metrics) RecordParse(ctx context.Context, operation string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(OperationAttr(operation))
	m.parseDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.parseCount.Add(ctx, 1, attrs)
	if err != nil {
		m.errorCount.Add(ctx, 1, attrs)
	}
}

// RecordCacheHit records a parse served from the cache.
func (m *Metrics) RecordCacheHit(ctx context.Context) {
	m.cacheHitCount.Add(ctx, 1)
}
