package roaquery

import (
	"github.com/nlstn/go-roaquery/internal/filter"
	"github.com/nlstn/go-roaquery/internal/query"
	"github.com/nlstn/go-roaquery/internal/schema"
)

// Node re-exports the filter tree node interface for external consumers.
type Node = filter.Node

// Comparison re-exports the comparison node type for external consumers.
type Comparison = filter.Comparison

// Compound re-exports the compound node type for external consumers.
type Compound = filter.Compound

// Sort re-exports the sort node type for external consumers.
type Sort = filter.Sort

// Value re-exports the decoded literal value type for external consumers.
type Value = filter.Value

// ValueKind re-exports the literal value kind for external consumers.
type ValueKind = filter.ValueKind

// CompareOp re-exports the comparison operator type for external consumers.
type CompareOp = filter.CompareOp

// CompoundKind re-exports the boolean combinator kind for external consumers.
type CompoundKind = filter.CompoundKind

// Direction re-exports the sort direction type for external consumers.
type Direction = filter.Direction

// Model re-exports the analyzed resource model for external consumers.
type Model = schema.Model

// Column re-exports the resolved column handle for external consumers.
type Column = schema.Column

// ColumnKind re-exports the column type classification for external consumers.
type ColumnKind = schema.ColumnKind

// Error re-exports the structured parse error for external consumers.
type Error = query.Error

// ErrorCode re-exports the parse error classification for external consumers.
type ErrorCode = query.ErrorCode

// Operation re-exports the operation contract for custom registrations.
type Operation = query.Operation

// Factory re-exports the operation factory type for custom registrations.
type Factory = query.Factory

// Grammar re-exports the operation argument shape for custom registrations.
type Grammar = query.Grammar

// Reparser re-exports the recursive parse capability handed to operation
// factories.
type Reparser = query.Reparser

// Comparison operators.
const (
	OpEQ   = filter.OpEQ
	OpGT   = filter.OpGT
	OpGE   = filter.OpGE
	OpLT   = filter.OpLT
	OpLE   = filter.OpLE
	OpLIKE = filter.OpLIKE
	OpIN   = filter.OpIN
)

// Boolean combinators.
const (
	KindAnd = filter.KindAnd
	KindOr  = filter.KindOr
)

// Sort directions.
const (
	Ascending  = filter.Ascending
	Descending = filter.Descending
)

// Literal value kinds.
const (
	ValueString  = filter.ValueString
	ValueNumber  = filter.ValueNumber
	ValueBoolean = filter.ValueBoolean
	ValueNull    = filter.ValueNull
	ValueList    = filter.ValueList
)

// Operation argument shapes.
const (
	GrammarBinary   = query.GrammarBinary
	GrammarCompound = query.GrammarCompound
	GrammarSort     = query.GrammarSort
)

// Parse error codes.
const (
	CodeLexical  = query.CodeLexical
	CodeSyntax   = query.CodeSyntax
	CodeSemantic = query.CodeSemantic
	CodeConfig   = query.CodeConfig
)

// DefaultCacheSize is the parse cache capacity used when WithParseCache is
// given a non-positive size.
const DefaultCacheSize = query.DefaultCacheSize
