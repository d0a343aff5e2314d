package query

import (
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	return registry
}

func TestTokenizer(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Binary comparison with quoted string",
			input: `eq(name,"John")`,
			expected: []Token{
				{Kind: TokenOperator, Value: "eq"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "name"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: `"John"`},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Quoted string keeps spaces",
			input: `eq(name, "John Doe")`,
			expected: []Token{
				{Kind: TokenOperator, Value: "eq"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "name"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: `"John Doe"`},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Long literal scans to delimiter",
			input: `eq(username,123)`,
			expected: []Token{
				{Kind: TokenOperator, Value: "eq"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "username"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: "123"},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Compound argument is captured raw",
			input: `and(gt(id,1),lt(id,5))`,
			expected: []Token{
				{Kind: TokenOperator, Value: "and"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "gt(id,1),lt(id,5)"},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Nested compound argument stays balanced",
			input: `or(and(gt(id,1),lt(id,5)),eq(name,"x"))`,
			expected: []Token{
				{Kind: TokenOperator, Value: "or"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: `and(gt(id,1),lt(id,5)),eq(name,"x")`},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Membership list is one literal",
			input: `in(id,[1,2,3])`,
			expected: []Token{
				{Kind: TokenOperator, Value: "in"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "id"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: "[1,2,3]"},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Sort expression",
			input: `asc(name)`,
			expected: []Token{
				{Kind: TokenOperator, Value: "asc"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "name"},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Column sharing an operator name is still text",
			input: `eq(like,1)`,
			expected: []Token{
				{Kind: TokenOperator, Value: "eq"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "like"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: "1"},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Quoted literal with embedded symbols",
			input: `eq(name,"a,(b)")`,
			expected: []Token{
				{Kind: TokenOperator, Value: "eq"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "name"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: `"a,(b)"`},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Unquoted whitespace is insignificant",
			input: ` eq ( name , "x" ) `,
			expected: []Token{
				{Kind: TokenOperator, Value: "eq"},
				{Kind: TokenSymbol, Value: "("},
				{Kind: TokenText, Value: "name"},
				{Kind: TokenSymbol, Value: ","},
				{Kind: TokenText, Value: `"x"`},
				{Kind: TokenSymbol, Value: ")"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Bare text",
			input: "name",
			expected: []Token{
				{Kind: TokenText, Value: "name"},
				{Kind: TokenEnd, Value: "$"},
			},
		},
		{
			name:  "Empty input yields only the end marker",
			input: "",
			expected: []Token{
				{Kind: TokenEnd, Value: "$"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewTokenizer(tt.input, registry).Tokenize()

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}
			for i, expected := range tt.expected {
				if tokens[i].Kind != expected.Kind {
					t.Errorf("Token %d: expected kind %v, got %v (%q)", i, expected.Kind, tokens[i].Kind, tokens[i].Value)
				}
				if tokens[i].Value != expected.Value {
					t.Errorf("Token %d: expected value %q, got %q", i, expected.Value, tokens[i].Value)
				}
			}
		})
	}
}

func TestTokenizerUnbalancedCompound(t *testing.T) {
	registry := newTestRegistry(t)

	tokens := NewTokenizer("and(gt(id,1)", registry).Tokenize()

	// The raw capture runs to the end of input and the missing ")" is left
	// for the parser driver to report.
	expected := []Token{
		{Kind: TokenOperator, Value: "and"},
		{Kind: TokenSymbol, Value: "("},
		{Kind: TokenText, Value: "gt(id,1)"},
		{Kind: TokenEnd, Value: "$"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i].Kind != want.Kind || tokens[i].Value != want.Value {
			t.Errorf("Token %d: expected %v %q, got %v %q", i, want.Kind, want.Value, tokens[i].Kind, tokens[i].Value)
		}
	}
}

func TestTokenizerPositions(t *testing.T) {
	registry := newTestRegistry(t)

	tokens := NewTokenizer(`eq(name,"x")`, registry).Tokenize()

	positions := []int{0, 2, 3, 7, 8, 11, 12}
	if len(tokens) != len(positions) {
		t.Fatalf("Expected %d tokens, got %d", len(positions), len(tokens))
	}
	for i, pos := range positions {
		if tokens[i].Pos != pos {
			t.Errorf("Token %d (%q): expected position %d, got %d", i, tokens[i].Value, pos, tokens[i].Pos)
		}
	}
}
