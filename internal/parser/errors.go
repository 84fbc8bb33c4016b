package parser

import (
	"fmt"
	"strings"

	"github.com/bminor-lang/bminor/internal/scanner"
)

// The parser fails fast: the first error aborts the parse and is returned
// to the caller as one of the value types below. Each renders a one-line
// human-readable message with 1-based line and column information.

// UnexpectedEndOfTokensError reports a stream that ran out where a token
// was mandatory. The position is that of the last consumed token.
type UnexpectedEndOfTokensError struct {
	Line   int
	Column int
}

func (e *UnexpectedEndOfTokensError) Error() string {
	return fmt.Sprintf("Unexpected end of tokens after token at line %d column %d.", e.Line, e.Column)
}

// UnexpectedTokenError reports a token of the wrong category at a point
// where only the listed categories are acceptable.
type UnexpectedTokenError struct {
	Unexpected scanner.Token
	Expected   []scanner.Category
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected token at line %d column %d. Found %s, expected %s",
		e.Unexpected.Line, e.Unexpected.Column, e.Unexpected.Category, formatCategories(e.Expected))
}

// ExpectedButMissingTokenError reports a stream that ran out immediately
// after a known token; unlike UnexpectedEndOfTokensError it always carries
// the positioned prior token and the categories that should have followed.
type ExpectedButMissingTokenError struct {
	After    scanner.Token
	Expected []scanner.Category
}

func (e *ExpectedButMissingTokenError) Error() string {
	return fmt.Sprintf("Expected one of %s after %s at line %d column %d",
		formatCategories(e.Expected), e.After.Category, e.After.Line, e.After.Column)
}

// UnknownTypeIdentifierError reports a name in type position that is not
// in the fixed type table.
type UnknownTypeIdentifierError struct {
	Token scanner.Token
}

func (e *UnknownTypeIdentifierError) Error() string {
	return fmt.Sprintf("Type identifier %s at line %d column %d is unknown",
		e.Token.Lexeme, e.Token.Line, e.Token.Column)
}

func formatCategories(categories []scanner.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
