package query

import (
	"fmt"
	"strings"

	"github.com/nlstn/go-roaquery/internal/filter"
	"github.com/nlstn/go-roaquery/internal/schema"
)

// Grammar describes the argument shape an operation contributes to the
// grammar.
type Grammar int

const (
	// GrammarBinary takes a column argument and a literal value argument.
	GrammarBinary Grammar = iota
	// GrammarCompound takes one raw sub-expression argument that is
	// segmented and recursively parsed.
	GrammarCompound
	// GrammarSort takes a single column argument.
	GrammarSort
)

// Reparser re-enters the full parse pipeline for a nested sub-expression.
// Compound operations use it to parse their segments recursively.
type Reparser interface {
	ReparseFilter(expr string, model *schema.Model) (filter.Node, error)
}

// Operation is one in-progress operator instantiation. It accumulates raw
// arguments while the driver consumes tokens and turns them into a filter
// node on Build. Instances live for a single parse and must not be shared.
type Operation interface {
	// Token returns the grammar keyword that selects this operation.
	Token() string
	// Grammar returns the operation's argument shape.
	Grammar() Grammar
	// AddArgument appends a raw argument discovered by the driver.
	AddArgument(raw string)
	// Validate checks the accumulated arguments against the model.
	Validate(model *schema.Model) error
	// Build constructs the filter node. Validate must have succeeded first.
	Build(model *schema.Model) (filter.Node, error)
}

// Factory creates a fresh Operation for one parse.
type Factory func(reparser Reparser) Operation

// Registry maps grammar keywords to operation factories. It is populated
// during parser construction, read-only afterwards, and therefore safe for
// unsynchronized concurrent reads from overlapping parses.
type Registry struct {
	factories map[string]Factory
	grammars  map[string]Grammar
	reparser  Reparser
	maxToken  int
}

// NewRegistry creates a registry pre-populated with the built-in operation
// set: the binary comparisons eq, gt, ge, lt, le, like, the membership
// comparison in, the compounds or and and, and the sorts asc and desc.
func NewRegistry(reparser Reparser) (*Registry, error) {
	r := &Registry{
		factories: make(map[string]Factory),
		grammars:  make(map[string]Grammar),
		reparser:  reparser,
	}

	builtins := []struct {
		token   string
		grammar Grammar
		factory Factory
	}{
		{"or", GrammarCompound, newCompoundFactory(filter.KindOr)},
		{"and", GrammarCompound, newCompoundFactory(filter.KindAnd)},
		{"eq", GrammarBinary, newBinaryFactory(filter.OpEQ)},
		{"gt", GrammarBinary, newBinaryFactory(filter.OpGT)},
		{"ge", GrammarBinary, newBinaryFactory(filter.OpGE)},
		{"lt", GrammarBinary, newBinaryFactory(filter.OpLT)},
		{"le", GrammarBinary, newBinaryFactory(filter.OpLE)},
		{"like", GrammarBinary, newBinaryFactory(filter.OpLIKE)},
		{"in", GrammarBinary, newMembershipFactory()},
		{"asc", GrammarSort, newSortFactory("asc", filter.Ascending)},
		{"desc", GrammarSort, newSortFactory("desc", filter.Descending)},
	}

	for _, b := range builtins {
		if err := r.Register(b.token, b.grammar, b.factory); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds an operation factory for a keyword. Registering the same
// keyword twice is a configuration error; registration happens once at
// startup and never per parse.
func (r *Registry) Register(token string, grammar Grammar, factory Factory) error {
	if token == "" {
		return configError("operation token must not be empty")
	}
	if _, exists := r.factories[token]; exists {
		return configError(fmt.Sprintf("operation %s is registered twice", token))
	}
	r.factories[token] = factory
	r.grammars[token] = grammar
	if len(token) > r.maxToken {
		r.maxToken = len(token)
	}
	return nil
}

// Resolve instantiates a fresh operation for the given keyword.
func (r *Registry) Resolve(token string) (Operation, bool) {
	factory, ok := r.factories[token]
	if !ok {
		return nil, false
	}
	return factory(r.reparser), true
}

// Grammar reports the argument shape registered for a keyword.
func (r *Registry) Grammar(token string) (Grammar, bool) {
	g, ok := r.grammars[token]
	return g, ok
}

// MaxTokenLength returns the length of the longest registered keyword. It
// bounds multi-character operator recognition in the tokenizer.
func (r *Registry) MaxTokenLength() int {
	return r.maxToken
}

// binaryOperation implements the two-argument comparison operations.
type binaryOperation struct {
	op       filter.CompareOp
	wantList bool
	args     []string
	column   schema.Column
	value    filter.Value
}

func newBinaryFactory(op filter.CompareOp) Factory {
	return func(Reparser) Operation { return &binaryOperation{op: op} }
}

// newMembershipFactory builds the in operation, a binary comparison whose
// value must be a non-empty list.
func newMembershipFactory() Factory {
	return func(Reparser) Operation { return &binaryOperation{op: filter.OpIN, wantList: true} }
}

func (o *binaryOperation) Token() string    { return string(o.op) }
func (o *binaryOperation) Grammar() Grammar { return GrammarBinary }

func (o *binaryOperation) AddArgument(raw string) {
	o.args = append(o.args, strings.TrimSpace(raw))
}

func (o *binaryOperation) Validate(model *schema.Model) error {
	if len(o.args) != 2 {
		return semanticError(fmt.Sprintf("binary operation %s requires two arguments", o.op), nil)
	}
	if o.args[0] == "" {
		return semanticError(fmt.Sprintf("binary operation %s first argument is empty", o.op), nil)
	}
	if o.args[1] == "" {
		return semanticError(fmt.Sprintf("binary operation %s second argument is empty", o.op), nil)
	}

	column, err := model.Resolve(o.args[0])
	if err != nil {
		return semanticError(fmt.Sprintf("binary operation %s: %v", o.op, err), err)
	}

	value, err := decodeLiteral(o.args[1])
	if err != nil {
		return semanticError(fmt.Sprintf("binary operation %s: %v", o.op, err), err)
	}

	if o.wantList {
		if value.Kind != filter.ValueList {
			return semanticError(fmt.Sprintf("%s operation requires a list value, got a %s", o.op, value.Kind), nil)
		}
		if len(value.Items()) == 0 {
			return semanticError(fmt.Sprintf("%s operation requires a non-empty list value", o.op), nil)
		}
	} else if value.Kind == filter.ValueList {
		return semanticError(fmt.Sprintf("binary operation %s requires a scalar value", o.op), nil)
	}

	o.column = column
	o.value = value
	return nil
}

func (o *binaryOperation) Build(model *schema.Model) (filter.Node, error) {
	return &filter.Comparison{Column: o.column, Op: o.op, Value: o.value}, nil
}

// compoundOperation implements the boolean combinators and and or. Its single
// raw argument holds the nested sub-expressions; Validate segments them and
// re-parses each through the full pipeline.
type compoundOperation struct {
	kind     filter.CompoundKind
	reparser Reparser
	args     []string
	children []filter.Node
}

func newCompoundFactory(kind filter.CompoundKind) Factory {
	return func(reparser Reparser) Operation {
		return &compoundOperation{kind: kind, reparser: reparser}
	}
}

func (o *compoundOperation) Token() string    { return string(o.kind) }
func (o *compoundOperation) Grammar() Grammar { return GrammarCompound }

func (o *compoundOperation) AddArgument(raw string) {
	o.args = append(o.args, raw)
}

func (o *compoundOperation) Validate(model *schema.Model) error {
	raw := ""
	if len(o.args) > 0 {
		raw = o.args[0]
	}

	segments := splitSegments(raw)
	if len(segments) < 2 {
		return semanticError(fmt.Sprintf("%s operation takes at least two arguments", o.kind), nil)
	}

	children := make([]filter.Node, 0, len(segments))
	for _, segment := range segments {
		child, err := o.reparser.ReparseFilter(segment, model)
		if err != nil {
			return err
		}
		if child == nil {
			return semanticError(fmt.Sprintf("%s operation has an empty sub-expression", o.kind), nil)
		}
		children = append(children, child)
	}

	o.children = children
	return nil
}

func (o *compoundOperation) Build(model *schema.Model) (filter.Node, error) {
	return &filter.Compound{Kind: o.kind, Children: o.children}, nil
}

// sortOperation implements asc and desc. The direction is fixed per keyword.
type sortOperation struct {
	token     string
	direction filter.Direction
	args      []string
	column    schema.Column
}

func newSortFactory(token string, direction filter.Direction) Factory {
	return func(Reparser) Operation {
		return &sortOperation{token: token, direction: direction}
	}
}

func (o *sortOperation) Token() string    { return o.token }
func (o *sortOperation) Grammar() Grammar { return GrammarSort }

func (o *sortOperation) AddArgument(raw string) {
	o.args = append(o.args, strings.TrimSpace(raw))
}

func (o *sortOperation) Validate(model *schema.Model) error {
	if len(o.args) != 1 {
		return semanticError(fmt.Sprintf("%s operation takes exactly one argument", o.token), nil)
	}
	if o.args[0] == "" {
		return semanticError(fmt.Sprintf("%s operation attribute argument is empty", o.token), nil)
	}

	column, err := model.Resolve(o.args[0])
	if err != nil {
		return semanticError(fmt.Sprintf("resource attribute %s does not exist", o.args[0]), err)
	}

	o.column = column
	return nil
}

func (o *sortOperation) Build(model *schema.Model) (filter.Node, error) {
	return &filter.Sort{Column: o.column, Direction: o.direction}, nil
}
