// Package scanner implements the B-minor lexical analyzer: it turns raw
// source text into a flat list of classified, position-tracked tokens.
package scanner

import "fmt"

// Category is the lexical class of a token. The set is closed: the parser
// switches on it exhaustively, so adding a category means auditing every
// decision point in the parser.
type Category int

const (
	// Literals and names.
	Identifier Category = iota
	Float
	Integer
	Character
	Text

	// Keywords.
	ArrayKeyword
	FunctionKeyword
	ForKeyword
	IfKeyword
	ElseKeyword
	ReturnKeyword
	PrintKeyword

	// Punctuation and operators. All are single characters; multi-character
	// operators such as ==, <=, && and || are assembled by the parser from
	// adjacent tokens.
	Equal
	Plus
	Minus
	Slash
	Star
	Percent
	Caret
	Exclamation
	Less
	More
	Ampersand
	Pipe
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Colon
	Semicolon
	Comma
)

// categoryNames provides string representations for token categories.
var categoryNames = map[Category]string{
	Identifier: "Identifier",
	Float:      "Float",
	Integer:    "Integer",
	Character:  "Character",
	Text:       "Text",

	ArrayKeyword:    "ArrayKeyword",
	FunctionKeyword: "FunctionKeyword",
	ForKeyword:      "ForKeyword",
	IfKeyword:       "IfKeyword",
	ElseKeyword:     "ElseKeyword",
	ReturnKeyword:   "ReturnKeyword",
	PrintKeyword:    "PrintKeyword",

	Equal:        "Equal",
	Plus:         "Plus",
	Minus:        "Minus",
	Slash:        "Slash",
	Star:         "Star",
	Percent:      "Percent",
	Caret:        "Caret",
	Exclamation:  "Exclamation",
	Less:         "Less",
	More:         "More",
	Ampersand:    "Ampersand",
	Pipe:         "Pipe",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	OpenBrace:    "OpenBrace",
	CloseBrace:   "CloseBrace",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
}

// String returns the name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(c))
}

// keywords maps reserved words to their categories. Identifiers are read
// with maximal munch and looked up here afterwards, so a word that merely
// starts with a keyword (such as "forest") stays a single Identifier.
var keywords = map[string]Category{
	"array":    ArrayKeyword,
	"function": FunctionKeyword,
	"for":      ForKeyword,
	"if":       IfKeyword,
	"else":     ElseKeyword,
	"return":   ReturnKeyword,
	"print":    PrintKeyword,
}

// lookupIdent resolves an identifier lexeme to a keyword category, or to
// Identifier when it is not reserved.
func lookupIdent(lexeme string) Category {
	if cat, ok := keywords[lexeme]; ok {
		return cat
	}
	return Identifier
}

// punctuation maps single-character lexemes to their categories.
var punctuation = map[byte]Category{
	'=': Equal,
	'+': Plus,
	'-': Minus,
	'/': Slash,
	'*': Star,
	'%': Percent,
	'^': Caret,
	'!': Exclamation,
	'<': Less,
	'>': More,
	'&': Ampersand,
	'|': Pipe,
	'(': OpenParen,
	')': CloseParen,
	'[': OpenBracket,
	']': CloseBracket,
	'{': OpenBrace,
	'}': CloseBrace,
	':': Colon,
	';': Semicolon,
	',': Comma,
}

// Token is a classified lexeme together with the 1-based line and column of
// its first character. The lexeme is always the exact source substring, so
// for Character and Text tokens it includes the surrounding quotes.
type Token struct {
	Lexeme   string
	Category Category
	Line     int
	Column   int
}

// String returns a compact representation used by token dumps and tests.
func (t Token) String() string {
	return fmt.Sprintf("{%s %q %d:%d}", t.Category, t.Lexeme, t.Line, t.Column)
}
