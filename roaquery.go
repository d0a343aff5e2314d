// Package roaquery parses ROA resource query expressions such as
// eq(name,"John"), and(gt(id,1),lt(id,5)) or asc(name) into filter and sort
// trees that a downstream query builder consumes. Expressions are validated
// against a resource model analyzed from a Go struct, so unknown attributes
// fail the parse instead of reaching the data layer.
package roaquery

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-roaquery/internal/observability"
	"github.com/nlstn/go-roaquery/internal/query"
	"github.com/nlstn/go-roaquery/internal/schema"
)

// Parser is the entry point for parsing query expressions. A Parser is
// immutable after construction and safe for concurrent use; every parse call
// runs with its own freshly allocated state.
type Parser struct {
	inner  *query.Parser
	logger *slog.Logger
	obs    *observability.Config
	cache  *query.Cache
}

// Registration describes a custom operation added to the parser's registry
// at construction time.
type Registration struct {
	// Token is the grammar keyword selecting the operation.
	Token string
	// Grammar is the operation's argument shape.
	Grammar Grammar
	// New creates a fresh operation instance for one parse.
	New Factory
}

type parserConfig struct {
	logger    *slog.Logger
	obsOpts   []observability.Option
	cacheSize int
	useCache  bool
	custom    []Registration
}

// Option configures a Parser.
type Option func(*parserConfig)

// WithLogger sets the structured logger used for parse diagnostics.
// When unset, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *parserConfig) {
		c.logger = logger
	}
}

// WithTracerProvider enables OpenTelemetry tracing of parse calls.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithTracerProvider(tp))
	}
}

// WithMeterProvider enables OpenTelemetry metrics for parse calls.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithMeterProvider(mp))
	}
}

// WithServiceName identifies the embedding service in traces and metrics.
func WithServiceName(name string) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithServiceName(name))
	}
}

// WithParseCache enables a bounded cache of parsed filter trees keyed by
// model and expression. Cached trees are immutable and shared between
// callers; size <= 0 selects the default capacity. The cache is off by
// default so repeated parses of identical input yield independent trees.
func WithParseCache(size int) Option {
	return func(c *parserConfig) {
		c.useCache = true
		c.cacheSize = size
	}
}

// WithOperations registers custom operations alongside the built-in set.
// A token clashing with a built-in or another custom operation fails
// NewParser; this is a startup error, never a per-parse one.
func WithOperations(registrations ...Registration) Option {
	return func(c *parserConfig) {
		c.custom = append(c.custom, registrations...)
	}
}

// NewParser creates a parser with the built-in operation set (eq, gt, ge,
// lt, le, like, in, and, or, asc, desc) and any custom operations supplied
// through options.
func NewParser(opts ...Option) (*Parser, error) {
	cfg := &parserConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	inner, err := query.NewParser(cfg.logger)
	if err != nil {
		return nil, err
	}
	for _, reg := range cfg.custom {
		if err := inner.Register(reg.Token, reg.Grammar, reg.New); err != nil {
			return nil, err
		}
	}

	p := &Parser{
		inner:  inner,
		logger: cfg.logger,
		obs:    observability.NewConfig(cfg.obsOpts...),
	}
	if cfg.useCache {
		p.cache = query.NewCache(cfg.cacheSize)
	}
	return p, nil
}

// AnalyzeModel extracts the queryable schema from a model struct. The
// returned model is read-only and safe to share between parses. Analysis
// follows gorm conventions for column naming, so downstream query builders
// see the identifiers gorm would generate.
func AnalyzeModel(model any) (*Model, error) {
	return schema.Analyze(model)
}

// ParseFilter parses one filter expression against the model. An empty
// expression yields a nil node without error. The context is used for
// tracing and metrics only; parsing itself is synchronous CPU-bound work
// with no suspension points.
func (p *Parser) ParseFilter(ctx context.Context, expr string, model *Model) (Node, error) {
	ctx, span := p.obs.Tracer().StartParseFilter(ctx, modelName(model), len(expr))
	start := time.Now()

	node, hit, err := p.parseFilter(expr, model)

	if hit {
		span.SetAttributes(observability.CacheHitAttr(true))
		p.obs.Metrics().RecordCacheHit(ctx)
	}
	p.obs.Metrics().RecordParse(ctx, observability.OpParseFilter, time.Since(start), err)
	p.obs.Tracer().EndSpan(span, err)

	return node, err
}

func (p *Parser) parseFilter(expr string, model *Model) (Node, bool, error) {
	if p.cache == nil || model == nil {
		node, err := p.inner.ParseFilter(expr, model)
		return node, false, err
	}

	key := query.CacheKey(model, expr)
	if node, ok := p.cache.Get(key); ok {
		return node, true, nil
	}

	node, err := p.inner.ParseFilter(expr, model)
	if err == nil {
		p.cache.Put(key, node)
	}
	return node, false, err
}

// ParseSort parses an ordered list of sort expressions such as asc(name) or
// desc(id). The result preserves input order, which defines sort precedence
// when the query builder applies multiple keys.
func (p *Parser) ParseSort(ctx context.Context, exprs []string, model *Model) ([]*Sort, error) {
	ctx, span := p.obs.Tracer().StartParseSort(ctx, modelName(model), len(exprs))
	start := time.Now()

	sorts, err := p.inner.ParseSort(exprs, model)

	p.obs.Metrics().RecordParse(ctx, observability.OpParseSort, time.Since(start), err)
	p.obs.Tracer().EndSpan(span, err)

	return sorts, err
}

func modelName(model *Model) string {
	if model == nil {
		return ""
	}
	return model.Name
}

// QueryBuilder is the downstream capability that turns parsed trees into
// data-retrieval constraints. Implementations belong to the data layer; this
// package only defines the contract it parses for.
type QueryBuilder interface {
	// ApplyFilter applies a parsed filter tree as a retrieval constraint.
	ApplyFilter(node Node) error
	// ApplySort applies sort keys in precedence order.
	ApplySort(sorts []*Sort) error
}

// Apply feeds a parsed filter tree and sort list to a query builder, filter
// first, then sorts in precedence order. A nil node and an empty sort list
// are both allowed and skipped.
func Apply(builder QueryBuilder, node Node, sorts []*Sort) error {
	if node != nil {
		if err := builder.ApplyFilter(node); err != nil {
			return err
		}
	}
	if len(sorts) > 0 {
		return builder.ApplySort(sorts)
	}
	return nil
}
