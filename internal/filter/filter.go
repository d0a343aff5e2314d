package filter

import (
	"github.com/shopspring/decimal"

	"github.com/nlstn/go-roaquery/internal/schema"
)

// Node represents a node in the parsed filter tree.
// Nodes are immutable once constructed; a tree may be shared freely between
// goroutines after the parse that produced it returns.
type Node interface {
	filterNode()
}

// CompareOp enumerates the supported comparison operators.
type CompareOp string

const (
	OpEQ   CompareOp = "eq"
	OpGT   CompareOp = "gt"
	OpGE   CompareOp = "ge"
	OpLT   CompareOp = "lt"
	OpLE   CompareOp = "le"
	OpLIKE CompareOp = "like"
	OpIN   CompareOp = "in"
)

// CompoundKind enumerates the supported boolean combinators.
type CompoundKind string

const (
	KindAnd CompoundKind = "and"
	KindOr  CompoundKind = "or"
)

// Direction enumerates the sort directions.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ValueKind classifies a decoded literal value.
type ValueKind string

const (
	ValueString  ValueKind = "string"
	ValueNumber  ValueKind = "number"
	ValueBoolean ValueKind = "boolean"
	ValueNull    ValueKind = "null"
	ValueList    ValueKind = "list"
)

// Value holds a decoded literal. Data is a string, decimal.Decimal, bool,
// nil, or []Value depending on Kind.
type Value struct {
	Kind ValueKind
	Data any
}

// String builds a string value.
func String(s string) Value { return Value{Kind: ValueString, Data: s} }

// Number builds a numeric value.
func Number(d decimal.Decimal) Value { return Value{Kind: ValueNumber, Data: d} }

// Boolean builds a boolean value.
func Boolean(b bool) Value { return Value{Kind: ValueBoolean, Data: b} }

// Null builds a null value.
func Null() Value { return Value{Kind: ValueNull} }

// List builds a list value for membership comparisons.
func List(items []Value) Value { return Value{Kind: ValueList, Data: items} }

// Items returns the element values of a list, or nil for scalar values.
func (v Value) Items() []Value {
	items, _ := v.Data.([]Value)
	return items
}

// Comparison compares a resolved column against a literal value.
type Comparison struct {
	Column schema.Column
	Op     CompareOp
	Value  Value
}

func (*Comparison) filterNode() {}

// Compound combines two or more child filters with a boolean operator.
// A valid Compound always has at least two children, preserved in the
// left-to-right order of the source expression.
type Compound struct {
	Kind     CompoundKind
	Children []Node
}

func (*Compound) filterNode() {}

// Sort orders results by a resolved column.
type Sort struct {
	Column    schema.Column
	Direction Direction
}

func (*Sort) filterNode() {}
