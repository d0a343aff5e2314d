package query

import (
	"reflect"
	"testing"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Two comparisons",
			input:    `gt(id,1),lt(id,5)`,
			expected: []string{"gt(id,1)", "lt(id,5)"},
		},
		{
			name:     "Three comparisons",
			input:    `eq(a,1),eq(b,2),eq(c,3)`,
			expected: []string{"eq(a,1)", "eq(b,2)", "eq(c,3)"},
		},
		{
			name:     "Nested compound stays whole",
			input:    `or(eq(a,1),eq(b,2)),eq(c,3)`,
			expected: []string{"or(eq(a,1),eq(b,2))", "eq(c,3)"},
		},
		{
			name:     "Deeply nested compound",
			input:    `and(or(eq(a,1),eq(b,2)),eq(c,3)),eq(d,4)`,
			expected: []string{"and(or(eq(a,1),eq(b,2)),eq(c,3))", "eq(d,4)"},
		},
		{
			name:     "Commas inside brackets",
			input:    `in(id,[1,2,3]),eq(a,1)`,
			expected: []string{"in(id,[1,2,3])", "eq(a,1)"},
		},
		{
			name:     "Commas inside quotes",
			input:    `eq(a,"x,y"),eq(b,1)`,
			expected: []string{`eq(a,"x,y")`, "eq(b,1)"},
		},
		{
			name:     "Parenthesis inside quotes",
			input:    `eq(a,"(x"),eq(b,1)`,
			expected: []string{`eq(a,"(x")`, "eq(b,1)"},
		},
		{
			name:     "Surrounding whitespace is trimmed",
			input:    ` gt(id,1) , lt(id,5) `,
			expected: []string{"gt(id,1)", "lt(id,5)"},
		},
		{
			name:     "Single segment",
			input:    `eq(a,1)`,
			expected: []string{"eq(a,1)"},
		},
		{
			name:     "Trailing comma drops the empty segment",
			input:    `eq(a,1),`,
			expected: []string{"eq(a,1)"},
		},
		{
			name:     "Empty input",
			input:    ``,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSegments(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitSegments(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
