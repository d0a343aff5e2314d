package query

import "strings"

// TokenKind represents the semantic category of a token.
type TokenKind int

const (
	// TokenEnd is the explicit end-of-input marker, always the final token.
	TokenEnd TokenKind = iota
	// TokenSymbol is a structural symbol: "(", ")" or ",".
	TokenSymbol
	// TokenOperator is a registered operation keyword followed by "(".
	TokenOperator
	// TokenText is a free-text or quoted literal.
	TokenText
)

// Token is a single lexical unit of a query expression.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}

// Tokenizer splits a query expression into tokens. Tokenization is total: it
// never fails and never blocks. Unrecognized characters simply become part of
// a text token; malformed input surfaces later as a syntax error in the
// parser driver.
type Tokenizer struct {
	input    string
	registry *Registry
}

// NewTokenizer creates a tokenizer for one expression. The registry supplies
// the operation keyword set and the maximum keyword length.
func NewTokenizer(input string, registry *Registry) *Tokenizer {
	return &Tokenizer{input: input, registry: registry}
}

// Tokenize scans the whole expression.
//
// Unquoted whitespace is insignificant and skipped. Structural symbols flush
// the pending literal buffer. A keyword is only classified as an operator
// when it is registered and directly followed by "(", so a column that
// happens to share an operator's name still works as an argument. The
// argument of a compound operation is captured raw across its balanced
// parentheses instead of being tokenized character by character; the compound
// resolver re-parses it recursively.
func (t *Tokenizer) Tokenize() []Token {
	input := t.input
	maxLen := t.registry.MaxTokenLength()

	var tokens []Token
	var buf strings.Builder
	bufPos := 0
	inQuote := false
	bracketDepth := 0

	flushText := func() {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenText, Value: buf.String(), Pos: bufPos})
		buf.Reset()
	}

	i := 0
	for i < len(input) {
		ch := input[i]

		if ch == '"' {
			if buf.Len() == 0 {
				bufPos = i
			}
			inQuote = !inQuote
			buf.WriteByte(ch)
			i++
			continue
		}
		if inQuote {
			buf.WriteByte(ch)
			i++
			continue
		}

		switch ch {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		}

		if bracketDepth == 0 {
			switch ch {
			case '(':
				if grammar, ok := t.registry.Grammar(buf.String()); ok {
					tokens = append(tokens, Token{Kind: TokenOperator, Value: buf.String(), Pos: bufPos})
					buf.Reset()
					tokens = append(tokens, Token{Kind: TokenSymbol, Value: "(", Pos: i})
					if grammar == GrammarCompound {
						raw, closing := captureBalanced(input, i+1)
						tokens = append(tokens, Token{Kind: TokenText, Value: raw, Pos: i + 1})
						if closing < len(input) {
							tokens = append(tokens, Token{Kind: TokenSymbol, Value: ")", Pos: closing})
							i = closing + 1
						} else {
							// Unbalanced parentheses; the driver reports the
							// missing ")" against the end marker.
							i = closing
						}
						continue
					}
					i++
					continue
				}
				flushText()
				tokens = append(tokens, Token{Kind: TokenSymbol, Value: "(", Pos: i})
				i++
				continue
			case ')', ',':
				flushText()
				tokens = append(tokens, Token{Kind: TokenSymbol, Value: string(ch), Pos: i})
				i++
				continue
			}
		}

		if buf.Len() == 0 {
			bufPos = i
		}
		buf.WriteByte(ch)
		i++

		if buf.Len() > maxLen {
			// The pending text is longer than any operation keyword, so it
			// can only be a free-text literal. Scan ahead to the next
			// top-level delimiter and keep the text verbatim, including any
			// embedded quoted sections with their own commas and parens.
		scan:
			for i < len(input) {
				c := input[i]
				if c == '"' {
					inQuote = !inQuote
				} else if !inQuote {
					switch c {
					case '[':
						bracketDepth++
					case ']':
						if bracketDepth > 0 {
							bracketDepth--
						}
					case ',', ')':
						if bracketDepth == 0 {
							break scan
						}
					}
				}
				buf.WriteByte(c)
				i++
			}
			flushText()
		}
	}

	flushText()
	tokens = append(tokens, Token{Kind: TokenEnd, Value: "$", Pos: len(input)})
	return tokens
}

// captureBalanced returns the raw text between start and its matching closing
// parenthesis, together with the index of that parenthesis. Quoted sections
// are skipped. When the input ends before the parentheses balance, the rest
// of the input and its length are returned.
func captureBalanced(input string, start int) (string, int) {
	depth := 1
	inQuote := false
	for j := start; j < len(input); j++ {
		switch input[j] {
		case '"':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
				if depth == 0 {
					return input[start:j], j
				}
			}
		}
	}
	return input[start:], len(input)
}
