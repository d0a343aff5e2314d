package query

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nlstn/go-roaquery/internal/filter"
)

func TestDecodeLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind filter.ValueKind
	}{
		{"Quoted string", `"John"`, filter.ValueString},
		{"String with spaces", `"John Doe"`, filter.ValueString},
		{"Integer", `1`, filter.ValueNumber},
		{"Negative integer", `-7`, filter.ValueNumber},
		{"Decimal fraction", `9.99`, filter.ValueNumber},
		{"Exponent", `-12e3`, filter.ValueNumber},
		{"True", `true`, filter.ValueBoolean},
		{"False", `false`, filter.ValueBoolean},
		{"Null", `null`, filter.ValueNull},
		{"Number list", `[1,2,3]`, filter.ValueList},
		{"String list", `["a","b"]`, filter.ValueList},
		{"Mixed list", `[1,"a",true]`, filter.ValueList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := decodeLiteral(tt.input)
			if err != nil {
				t.Fatalf("decodeLiteral(%q) failed: %v", tt.input, err)
			}
			if value.Kind != tt.wantKind {
				t.Errorf("decodeLiteral(%q): expected kind %s, got %s", tt.input, tt.wantKind, value.Kind)
			}
		})
	}
}

func TestDecodeLiteralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Bare word", `John`},
		{"Unterminated string", `"John`},
		{"Object", `{"a":1}`},
		{"Nested list", `[[1]]`},
		{"List of objects", `[{"a":1}]`},
		{"Trailing content", `"a" "b"`},
		{"Empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeLiteral(tt.input); err == nil {
				t.Errorf("decodeLiteral(%q): expected error", tt.input)
			}
		})
	}
}

func TestDecodeLiteralPrecision(t *testing.T) {
	// Large identifiers must survive decoding without float64 rounding.
	value, err := decodeLiteral("9007199254740993")
	if err != nil {
		t.Fatalf("decodeLiteral failed: %v", err)
	}
	want := decimal.RequireFromString("9007199254740993")
	if d := value.Data.(decimal.Decimal); !d.Equal(want) {
		t.Errorf("Expected %s, got %s", want, d)
	}
}
