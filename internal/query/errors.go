package query

import (
	"errors"
	"fmt"
)

// ErrorCode classifies query parse failures: lexical anomalies, syntax
// errors, semantic errors, and registry configuration errors.
type ErrorCode string

const (
	CodeLexical  ErrorCode = "LexicalAnomaly"
	CodeSyntax   ErrorCode = "SyntaxError"
	CodeSemantic ErrorCode = "SemanticError"
	CodeConfig   ErrorCode = "ConfigurationError"
)

// Sentinel errors for each error class. These can be used with errors.Is()
// for error handling.
var (
	ErrLexical  = errors.New("roaquery: lexical anomaly")
	ErrSyntax   = errors.New("roaquery: syntax error")
	ErrSemantic = errors.New("roaquery: semantic error")
	ErrConfig   = errors.New("roaquery: configuration error")
)

// Error is the structured failure reported by the parser. Syntax errors carry
// the offending token and its byte position; semantic errors wrap the causing
// error when one exists. Failures are never retried and never produce a
// partial result.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Token is the offending token, when known.
	Token string

	// Position is the byte offset of the offending token in the expression.
	Position int

	// Expr is a snippet of the expression being parsed.
	Expr string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Token != "" {
		msg += fmt.Sprintf(": token %q at position %d", e.Token, e.Position)
	}
	if e.Expr != "" {
		msg += fmt.Sprintf(" in %q", e.Expr)
	}
	return msg
}

// Unwrap exposes both the class sentinel and the causing error, so that
// errors.Is() matches either.
func (e *Error) Unwrap() []error {
	out := []error{e.sentinel()}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func (e *Error) sentinel() error {
	switch e.Code {
	case CodeLexical:
		return ErrLexical
	case CodeSyntax:
		return ErrSyntax
	case CodeConfig:
		return ErrConfig
	default:
		return ErrSemantic
	}
}

func lexicalError(message string, expr string) *Error {
	return &Error{Code: CodeLexical, Message: message, Expr: snippet(expr)}
}

func syntaxError(message string, tok Token, expr string) *Error {
	return &Error{
		Code:     CodeSyntax,
		Message:  message,
		Token:    tok.Value,
		Position: tok.Pos,
		Expr:     snippet(expr),
	}
}

func semanticError(message string, cause error) *Error {
	return &Error{Code: CodeSemantic, Message: message, Err: cause}
}

func configError(message string) *Error {
	return &Error{Code: CodeConfig, Message: message}
}

func snippet(expr string) string {
	const max = 80
	if len(expr) <= max {
		return expr
	}
	return expr[:max] + "..."
}
