package observability

import "go.opentelemetry.io/otel/attribute"

// TracerName identifies this library's tracer.
const TracerName = "github.com/nlstn/go-roaquery"

// MeterName identifies this library's meter.
const MeterName = "github.com/nlstn/go-roaquery"

// Operation names recorded on spans and metrics.
const (
	OpParseFilter = "parse_filter"
	OpParseSort   = "parse_sort"
)

// Attribute keys used on spans. Raw expressions are deliberately not recorded
// because their values are unbounded and may contain user data; only lengths
// and counts are.
const (
	AttrOperation        = "roaquery.operation"
	AttrModel            = "roaquery.model"
	AttrExpressionLength = "roaquery.expression.length"
	AttrSortCount        = "roaquery.sort.count"
	AttrCacheHit         = "roaquery.cache.hit"
)

// OperationAttr creates an attribute for the parse operation name.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// ModelAttr creates an attribute for the resource model name.
func ModelAttr(name string) attribute.KeyValue {
	return attribute.String(AttrModel, name)
}

// ExpressionLengthAttr creates an attribute for the expression length.
func ExpressionLengthAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrExpressionLength, n)
}

// SortCountAttr creates an attribute for the number of sort expressions.
func SortCountAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrSortCount, n)
}

// CacheHitAttr creates an attribute recording whether the parse was served
// from the cache.
func CacheHitAttr(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}
