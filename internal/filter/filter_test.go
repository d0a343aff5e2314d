package filter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueConstructors(t *testing.T) {
	s := String("John")
	assert.Equal(t, ValueString, s.Kind)
	assert.Equal(t, "John", s.Data)

	n := Number(decimal.NewFromInt(42))
	assert.Equal(t, ValueNumber, n.Kind)
	assert.True(t, n.Data.(decimal.Decimal).Equal(decimal.NewFromInt(42)))

	b := Boolean(true)
	assert.Equal(t, ValueBoolean, b.Kind)
	assert.Equal(t, true, b.Data)

	null := Null()
	assert.Equal(t, ValueNull, null.Kind)
	assert.Nil(t, null.Data)

	l := List([]Value{String("a"), String("b")})
	assert.Equal(t, ValueList, l.Kind)
	assert.Len(t, l.Items(), 2)
}

func TestValueItemsOnScalar(t *testing.T) {
	assert.Nil(t, String("a").Items())
	assert.Nil(t, Null().Items())
}

func TestNodeInterface(t *testing.T) {
	// All three tree node types satisfy Node.
	nodes := []Node{
		&Comparison{Op: OpEQ, Value: String("x")},
		&Compound{Kind: KindAnd, Children: []Node{&Comparison{}, &Comparison{}}},
		&Sort{Direction: Ascending},
	}
	assert.Len(t, nodes, 3)
}
