package scanner

import (
	"fmt"
	"io"
)

// Dump writes a raw, one-line-per-token listing to w: index, category,
// quoted lexeme and source position.
func Dump(w io.Writer, tokens []Token) {
	for i, t := range tokens {
		fmt.Fprintf(w, "%4d  %-16s %-24q %d:%d\n", i, t.Category, t.Lexeme, t.Line, t.Column)
	}
}
