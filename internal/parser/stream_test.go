package parser

import (
	"testing"

	"github.com/bminor-lang/bminor/internal/scanner"
)

func streamFixture() *tokenStream {
	return newTokenStream([]scanner.Token{
		{Lexeme: "x", Category: scanner.Identifier, Line: 1, Column: 1},
		{Lexeme: ":", Category: scanner.Colon, Line: 1, Column: 2},
		{Lexeme: "integer", Category: scanner.Identifier, Line: 1, Column: 4},
	})
}

func TestStreamPeekIsOneIndexed(t *testing.T) {
	s := streamFixture()
	one, ok := s.peek(1)
	if !ok || one.Lexeme != "x" {
		t.Fatalf("peek(1) wrong: %v %v", one, ok)
	}
	three, ok := s.peek(3)
	if !ok || three.Lexeme != "integer" {
		t.Fatalf("peek(3) wrong: %v %v", three, ok)
	}
	if _, ok := s.peek(4); ok {
		t.Fatalf("peek past the end succeeded")
	}
	if s.remain() != 3 {
		t.Fatalf("peek consumed tokens. remain=%d", s.remain())
	}
}

func TestStreamConsumeAndPeekPrevious(t *testing.T) {
	s := streamFixture()
	if _, ok := s.peekPrevious(); ok {
		t.Fatalf("peekPrevious succeeded before any consumption")
	}
	s.consume(2)
	prev, ok := s.peekPrevious()
	if !ok || prev.Category != scanner.Colon {
		t.Fatalf("peekPrevious wrong: %v %v", prev, ok)
	}
	if s.remain() != 1 {
		t.Fatalf("remain wrong. expected=1, got=%d", s.remain())
	}
}

func TestStreamNextExhaustion(t *testing.T) {
	s := streamFixture()
	for i := 0; i < 3; i++ {
		if _, ok := s.next(); !ok {
			t.Fatalf("next()[%d] failed early", i)
		}
	}
	if !s.isEmpty() {
		t.Fatalf("stream not empty after consuming everything")
	}
	if _, ok := s.next(); ok {
		t.Fatalf("next succeeded on an empty stream")
	}
	if s.remain() != 0 {
		t.Fatalf("remain wrong. expected=0, got=%d", s.remain())
	}
}
