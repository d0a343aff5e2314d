package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nlstn/go-roaquery/internal/filter"
)

// decodeLiteral decodes the raw textual value of a comparison argument as a
// JSON scalar (quoted string, number, boolean, null) or a JSON array of
// scalars for membership comparisons. Numbers are kept as arbitrary precision
// decimals rather than float64 so large identifiers survive the round trip.
func decodeLiteral(raw string) (filter.Value, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return filter.Value{}, fmt.Errorf("value %q is not a valid literal: %w", raw, err)
	}
	if dec.More() {
		return filter.Value{}, fmt.Errorf("value %q has trailing content after the literal", raw)
	}

	return convertLiteral(decoded)
}

func convertLiteral(decoded any) (filter.Value, error) {
	switch v := decoded.(type) {
	case string:
		return filter.String(v), nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return filter.Value{}, fmt.Errorf("number %q is out of range: %w", v, err)
		}
		return filter.Number(d), nil
	case bool:
		return filter.Boolean(v), nil
	case nil:
		return filter.Null(), nil
	case []any:
		items := make([]filter.Value, 0, len(v))
		for _, entry := range v {
			item, err := convertLiteral(entry)
			if err != nil {
				return filter.Value{}, err
			}
			if item.Kind == filter.ValueList {
				return filter.Value{}, fmt.Errorf("nested lists are not supported")
			}
			items = append(items, item)
		}
		return filter.List(items), nil
	default:
		return filter.Value{}, fmt.Errorf("unsupported literal type %T", decoded)
	}
}
