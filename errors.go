package roaquery

import (
	"errors"

	"github.com/nlstn/go-roaquery/internal/query"
	"github.com/nlstn/go-roaquery/internal/schema"
)

// Sentinel errors for the parse failure taxonomy. These can be used with
// errors.Is() for error handling; every structured Error matches exactly one
// of the class sentinels.
var (
	// ErrLexical indicates an unrecoverable lexical scan.
	ErrLexical = query.ErrLexical

	// ErrSyntax indicates a grammar violation: an unexpected token at a
	// known position. Maps to a client-visible 4xx in HTTP layers.
	ErrSyntax = query.ErrSyntax

	// ErrSemantic indicates a well-formed expression with invalid meaning:
	// unknown attribute, wrong arity, scalar value for a membership
	// comparison, or too few compound children.
	ErrSemantic = query.ErrSemantic

	// ErrConfig indicates an invalid registry configuration, such as a
	// duplicate operation token. Configuration errors surface from NewParser
	// at startup, never per parse.
	ErrConfig = query.ErrConfig

	// ErrUnknownAttribute indicates an expression referenced an attribute
	// missing from the resource model. It accompanies ErrSemantic.
	ErrUnknownAttribute = schema.ErrUnknownAttribute
)

// IsSyntaxError returns true if the error is a grammar violation.
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrSyntax)
}

// IsSemanticError returns true if the error is a semantic violation.
func IsSemanticError(err error) bool {
	return errors.Is(err, ErrSemantic)
}

// AsQueryError extracts the structured parse error, if the error carries
// one, exposing the offending token and position.
func AsQueryError(err error) (*Error, bool) {
	var queryErr *Error
	if errors.As(err, &queryErr) {
		return queryErr, true
	}
	return nil, false
}
