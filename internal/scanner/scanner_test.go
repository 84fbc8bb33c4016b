package scanner

import (
	"errors"
	"testing"
)

func TestTokenizeDeclaration(t *testing.T) {
	input := `x: integer = 5;`

	tests := []struct {
		expectedCategory Category
		expectedLexeme   string
		expectedLine     int
		expectedColumn   int
	}{
		{Identifier, "x", 1, 1},
		{Colon, ":", 1, 2},
		{Identifier, "integer", 1, 4},
		{Equal, "=", 1, 12},
		{Integer, "5", 1, 14},
		{Semicolon, ";", 1, 15},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		tok := tokens[i]
		if tok.Category != tt.expectedCategory {
			t.Fatalf("tests[%d] - category wrong. expected=%q, got=%q", i, tt.expectedCategory, tok.Category)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
		if tok.Line != tt.expectedLine || tok.Column != tt.expectedColumn {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedLine, tt.expectedColumn, tok.Line, tok.Column)
		}
	}
}

func TestTokenizePunctuation(t *testing.T) {
	input := `= + - / * % ^ ! < > & | ( ) [ ] { } : ; ,`

	expected := []Category{
		Equal, Plus, Minus, Slash, Star, Percent, Caret, Exclamation,
		Less, More, Ampersand, Pipe, OpenParen, CloseParen,
		OpenBracket, CloseBracket, OpenBrace, CloseBrace,
		Colon, Semicolon, Comma,
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, category := range expected {
		if tokens[i].Category != category {
			t.Fatalf("tests[%d] - category wrong. expected=%q, got=%q", i, category, tokens[i].Category)
		}
	}
}

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		input            string
		expectedCategory Category
	}{
		{"array", ArrayKeyword},
		{"function", FunctionKeyword},
		{"for", ForKeyword},
		{"if", IfKeyword},
		{"else", ElseKeyword},
		{"return", ReturnKeyword},
		{"print", PrintKeyword},
		// Words that merely start with or contain a keyword stay
		// identifiers thanks to maximal munch.
		{"forest", Identifier},
		{"iffy", Identifier},
		{"printer", Identifier},
		{"functions", Identifier},
		{"for2", Identifier},
		{"_if", Identifier},
		{"Array", Identifier},
	}

	for i, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("tests[%d] - Tokenize returned error: %v", i, err)
		}
		if len(tokens) != 1 {
			t.Fatalf("tests[%d] - wrong token count. expected=1, got=%d", i, len(tokens))
		}
		if tokens[0].Category != tt.expectedCategory {
			t.Fatalf("tests[%d] - category wrong. expected=%q, got=%q", i, tt.expectedCategory, tokens[0].Category)
		}
		if tokens[0].Lexeme != tt.input {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.input, tokens[0].Lexeme)
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	input := `1.25 3. 42 0.0 007`

	tests := []struct {
		expectedCategory Category
		expectedLexeme   string
	}{
		{Float, "1.25"},
		{Float, "3."},
		{Integer, "42"},
		{Float, "0.0"},
		{Integer, "007"},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Category != tt.expectedCategory {
			t.Fatalf("tests[%d] - category wrong. expected=%q, got=%q", i, tt.expectedCategory, tokens[i].Category)
		}
		if tokens[i].Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tokens[i].Lexeme)
		}
	}
}

func TestTokenizeCharacterAndTextLiterals(t *testing.T) {
	input := `'a' '\n' '9' "hello" "a\"b" ""`

	tests := []struct {
		expectedCategory Category
		expectedLexeme   string
	}{
		{Character, `'a'`},
		{Character, `'\n'`},
		{Character, `'9'`},
		{Text, `"hello"`},
		{Text, `"a\"b"`},
		{Text, `""`},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Category != tt.expectedCategory {
			t.Fatalf("tests[%d] - category wrong. expected=%q, got=%q", i, tt.expectedCategory, tokens[i].Category)
		}
		if tokens[i].Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tokens[i].Lexeme)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	input := "x\n\ty;"

	tests := []struct {
		expectedLexeme string
		expectedLine   int
		expectedColumn int
	}{
		{"x", 1, 1},
		{"y", 2, 5}, // tab advances the column by four
		{";", 2, 6},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		tok := tokens[i]
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
		if tok.Line != tt.expectedLine || tok.Column != tt.expectedColumn {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedLine, tt.expectedColumn, tok.Line, tok.Column)
		}
	}
}

func TestTokenizeComments(t *testing.T) {
	input := "x // trailing comment\n/* spanning\ntwo lines */ y"

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("wrong token count. expected=2, got=%d", len(tokens))
	}
	if tokens[0].Lexeme != "x" || tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Fatalf("first token wrong: %v", tokens[0])
	}
	if tokens[1].Lexeme != "y" || tokens[1].Line != 3 || tokens[1].Column != 14 {
		t.Fatalf("second token wrong: %v", tokens[1])
	}
}

func TestTokenizeUnclosedMultiLineComment(t *testing.T) {
	input := "x\n  /* never closed"

	_, err := Tokenize(input)
	var unclosed *UnclosedMultiLineCommentError
	if !errors.As(err, &unclosed) {
		t.Fatalf("error type wrong. expected=*UnclosedMultiLineCommentError, got=%T", err)
	}
	if unclosed.Line != 2 || unclosed.Column != 3 {
		t.Fatalf("error position wrong. expected=2:3, got=%d:%d", unclosed.Line, unclosed.Column)
	}
	expected := "Multi-line comment opened at line 2 column 3 is never closed."
	if err.Error() != expected {
		t.Fatalf("error message wrong. expected=%q, got=%q", expected, err.Error())
	}
}

func TestTokenizeCannotScanToken(t *testing.T) {
	tests := []struct {
		input          string
		expectedLine   int
		expectedColumn int
	}{
		{"x = #;", 1, 5},
		{"'ab'", 1, 1},
		{`"unterminated`, 1, 1},
		{"x\n@", 2, 1},
	}

	for i, tt := range tests {
		_, err := Tokenize(tt.input)
		var cannot *CannotScanTokenError
		if !errors.As(err, &cannot) {
			t.Fatalf("tests[%d] - error type wrong. expected=*CannotScanTokenError, got=%T", i, err)
		}
		if cannot.Line != tt.expectedLine || cannot.Column != tt.expectedColumn {
			t.Fatalf("tests[%d] - error position wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedLine, tt.expectedColumn, cannot.Line, cannot.Column)
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for i, input := range []string{"", "   \t\r\n  ", "// just a comment", "/* only this */"} {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatalf("tests[%d] - Tokenize returned error: %v", i, err)
		}
		if len(tokens) != 0 {
			t.Fatalf("tests[%d] - wrong token count. expected=0, got=%d", i, len(tokens))
		}
	}
}
