package query

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nlstn/go-roaquery/internal/filter"
	"github.com/nlstn/go-roaquery/internal/schema"
)

// Parser drives the query grammar against the operation registry. A Parser
// carries no per-parse state and is safe for concurrent use; every Parse call
// allocates its own parse state.
type Parser struct {
	registry *Registry
	logger   *slog.Logger
}

// NewParser creates a parser with the built-in operation set registered.
func NewParser(logger *slog.Logger) (*Parser, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p := &Parser{logger: logger}
	registry, err := NewRegistry(p)
	if err != nil {
		return nil, err
	}
	p.registry = registry
	return p, nil
}

// Register adds a custom operation to the parser's registry. Registration
// belongs to the startup phase: the registry must not change once parsing has
// begun.
func (p *Parser) Register(token string, grammar Grammar, factory Factory) error {
	return p.registry.Register(token, grammar, factory)
}

// ReparseFilter implements Reparser. Compound operations re-enter the full
// pipeline here for each of their segments.
func (p *Parser) ReparseFilter(expr string, model *schema.Model) (filter.Node, error) {
	return p.ParseFilter(expr, model)
}

// parseState is the mutable scratch of a single parse. It is created fresh
// for every call and never reused; sharing one across overlapping parses is
// not safe.
type parseState struct {
	expr   string
	tokens []Token
	pos    int
}

func (s *parseState) current() Token {
	if s.pos >= len(s.tokens) {
		return Token{Kind: TokenEnd, Value: "$", Pos: len(s.expr)}
	}
	return s.tokens[s.pos]
}

func (s *parseState) advance() Token {
	tok := s.current()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

// ParseFilter parses a filter expression against the model and returns the
// root of the filter tree. An empty or blank expression yields a nil node
// without error. The returned tree is immutable and owned by the caller.
func (p *Parser) ParseFilter(expr string, model *schema.Model) (filter.Node, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, nil
	}
	if model == nil {
		return nil, semanticError("resource model is required", nil)
	}
	if strings.Count(trimmed, `"`)%2 != 0 {
		// The scan cannot recover a literal boundary without the closing
		// quote, so this is the one fatal lexical case.
		return nil, lexicalError("unterminated quoted literal", trimmed)
	}

	state := &parseState{
		expr:   trimmed,
		tokens: NewTokenizer(trimmed, p.registry).Tokenize(),
	}

	node, err := p.parseExpression(state, model)
	if err != nil {
		p.logger.Debug("filter parse failed", "expression", trimmed, "error", err)
		return nil, err
	}

	if tok := state.current(); tok.Kind != TokenEnd {
		return nil, syntaxError("unexpected token after expression", tok, state.expr)
	}

	return node, nil
}

// ParseSort parses an ordered list of sort expressions. The result preserves
// input order, which downstream query builders treat as sort precedence: the
// first expression is the primary key, later ones break ties. Blank
// expressions are skipped.
func (p *Parser) ParseSort(exprs []string, model *schema.Model) ([]*filter.Sort, error) {
	results := make([]*filter.Sort, 0, len(exprs))

	for _, expr := range exprs {
		node, err := p.ParseFilter(expr, model)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		sort, ok := node.(*filter.Sort)
		if !ok {
			return nil, semanticError(fmt.Sprintf("expression %q is not a sort expression", strings.TrimSpace(expr)), nil)
		}
		results = append(results, sort)
	}

	return results, nil
}

// parseExpression consumes one operation call: keyword, opening parenthesis,
// argument list, closing parenthesis. The closing parenthesis triggers
// validation of the accumulated arguments and the build of the filter node.
func (p *Parser) parseExpression(state *parseState, model *schema.Model) (filter.Node, error) {
	tok := state.advance()
	if tok.Kind != TokenOperator {
		return nil, syntaxError("expected operation keyword", tok, state.expr)
	}

	op, ok := p.registry.Resolve(tok.Value)
	if !ok {
		// The tokenizer only marks registered keywords as operators, so this
		// indicates a registry modified between tokenize and parse.
		return nil, syntaxError("unknown operation", tok, state.expr)
	}

	if open := state.advance(); open.Kind != TokenSymbol || open.Value != "(" {
		return nil, syntaxError(fmt.Sprintf("expected ( after %s", op.Token()), open, state.expr)
	}

	if err := p.parseArguments(state, op); err != nil {
		return nil, err
	}

	if err := op.Validate(model); err != nil {
		return nil, err
	}
	return op.Build(model)
}

// parseArguments consumes a comma-separated argument list up to the closing
// parenthesis. Missing arguments are recorded as empty so the operation's
// Validate sees the real arity; arity itself is a semantic concern, not a
// syntactic one.
func (p *Parser) parseArguments(state *parseState, op Operation) error {
	if tok := state.current(); tok.Kind == TokenSymbol && tok.Value == ")" {
		state.advance()
		return nil
	}

	for {
		if tok := state.current(); tok.Kind == TokenText {
			op.AddArgument(tok.Value)
			state.advance()
		} else {
			op.AddArgument("")
		}

		tok := state.advance()
		switch {
		case tok.Kind == TokenSymbol && tok.Value == ",":
			continue
		case tok.Kind == TokenSymbol && tok.Value == ")":
			return nil
		default:
			return syntaxError(fmt.Sprintf("expected , or ) in %s argument list", op.Token()), tok, state.expr)
		}
	}
}
