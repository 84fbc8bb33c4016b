package parser

import "github.com/bminor-lang/bminor/internal/scanner"

// tokenStream is a forward-only cursor over a token list. It offers
// bounded lookahead and consumption; it never rewinds, and the parser
// never backtracks past tokens a production has already consumed.
type tokenStream struct {
	tokens []scanner.Token
	index  int
}

func newTokenStream(tokens []scanner.Token) *tokenStream {
	return &tokenStream{tokens: tokens}
}

// peek inspects the nth token ahead (1-indexed) without consuming it.
func (s *tokenStream) peek(n int) (scanner.Token, bool) {
	i := s.index + n - 1
	if i >= len(s.tokens) {
		return scanner.Token{}, false
	}
	return s.tokens[i], true
}

// peekPrevious returns the most recently consumed token.
func (s *tokenStream) peekPrevious() (scanner.Token, bool) {
	if s.index == 0 {
		return scanner.Token{}, false
	}
	return s.tokens[s.index-1], true
}

// consume advances past n tokens.
func (s *tokenStream) consume(n int) {
	s.index += n
}

// next consumes and returns the next token.
func (s *tokenStream) next() (scanner.Token, bool) {
	if s.isEmpty() {
		return scanner.Token{}, false
	}
	t := s.tokens[s.index]
	s.index++
	return t, true
}

// isEmpty reports whether the stream is exhausted.
func (s *tokenStream) isEmpty() bool {
	return s.index >= len(s.tokens)
}

// remain returns the number of unconsumed tokens.
func (s *tokenStream) remain() int {
	if s.isEmpty() {
		return 0
	}
	return len(s.tokens) - s.index
}
