package scanner

import (
	"fmt"
	"strings"
)

// CannotScanTokenError reports a position at which no token pattern
// matches the remaining input.
type CannotScanTokenError struct {
	Line   int
	Column int
}

func (e *CannotScanTokenError) Error() string {
	return fmt.Sprintf("Cannot scan token at line %d column %d.", e.Line, e.Column)
}

// UnclosedMultiLineCommentError reports a /* comment whose closing
// delimiter is missing. The position is that of the opening delimiter.
type UnclosedMultiLineCommentError struct {
	Line   int
	Column int
}

func (e *UnclosedMultiLineCommentError) Error() string {
	return fmt.Sprintf("Multi-line comment opened at line %d column %d is never closed.", e.Line, e.Column)
}

// Tokenize scans the whole source text and returns its tokens in order.
// Whitespace and comments are skipped; the first unscannable position
// aborts the scan with a positioned error.
func Tokenize(source string) ([]Token, error) {
	stream := newCharacterStream(source)
	var tokens []Token

	for {
		rem := stream.remaining()
		if rem == "" {
			return tokens, nil
		}

		c := rem[0]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			stream.consume(1)
			continue
		}

		if strings.HasPrefix(rem, "//") {
			if nl := strings.IndexByte(rem, '\n'); nl >= 0 {
				stream.consume(nl + 1)
			} else {
				stream.consume(len(rem))
			}
			continue
		}

		if strings.HasPrefix(rem, "/*") {
			end := strings.Index(rem[2:], "*/")
			if end < 0 {
				return nil, &UnclosedMultiLineCommentError{Line: stream.line, Column: stream.column}
			}
			stream.consume(2 + end + 2)
			continue
		}

		n, category := match(rem)
		if n == 0 {
			return nil, &CannotScanTokenError{Line: stream.line, Column: stream.column}
		}

		tokens = append(tokens, Token{
			Lexeme:   rem[:n],
			Category: category,
			Line:     stream.line,
			Column:   stream.column,
		})
		stream.consume(n)
	}
}

// match tries the token patterns against the start of rem and returns the
// match length and category, or 0 when nothing matches. Pattern priority
// is fixed: identifiers (with keyword lookup after the full word is read)
// come before anything else, and the float pattern is tried before the
// integer one so that "1.25" scans as one token.
func match(rem string) (int, Category) {
	c := rem[0]

	switch {
	case isLetter(c) || c == '_':
		n := 1
		for n < len(rem) && (isLetter(rem[n]) || isDigit(rem[n]) || rem[n] == '_') {
			n++
		}
		return n, lookupIdent(rem[:n])

	case isDigit(c):
		n := 1
		for n < len(rem) && isDigit(rem[n]) {
			n++
		}
		if n < len(rem) && rem[n] == '.' {
			n++
			for n < len(rem) && isDigit(rem[n]) {
				n++
			}
			return n, Float
		}
		return n, Integer

	case c == '\'':
		return matchCharacter(rem), Character

	case c == '"':
		return matchText(rem), Text
	}

	if category, ok := punctuation[c]; ok {
		return 1, category
	}
	return 0, 0
}

// matchCharacter matches a character literal: one alphanumeric character,
// optionally preceded by a backslash escape, inside single quotes.
func matchCharacter(rem string) int {
	i := 1
	if i < len(rem) && rem[i] == '\\' {
		i++
	}
	if i >= len(rem) || !isAlphaNumeric(rem[i]) {
		return 0
	}
	i++
	if i >= len(rem) || rem[i] != '\'' {
		return 0
	}
	return i + 1
}

// matchText matches a text literal: a run of escaped-or-plain characters
// inside double quotes. Raw newlines terminate the pattern, so a string
// missing its closing quote fails to match.
func matchText(rem string) int {
	i := 1
	for i < len(rem) {
		switch rem[i] {
		case '"':
			return i + 1
		case '\n':
			return 0
		case '\\':
			if i+1 >= len(rem) {
				return 0
			}
			i += 2
		default:
			i++
		}
	}
	return 0
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isLetter(c) || isDigit(c)
}
