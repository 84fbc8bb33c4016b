package scanner

// characterStream owns the raw source text and the scanner's position in
// it. It only ever moves forward.
type characterStream struct {
	src    string
	offset int
	line   int
	column int
}

func newCharacterStream(src string) *characterStream {
	return &characterStream{src: src, line: 1, column: 1}
}

// remaining returns the unconsumed suffix of the source.
func (s *characterStream) remaining() string {
	return s.src[s.offset:]
}

// consume advances the stream by n characters, updating the line and column
// counters: a newline moves to column 1 of the next line, a tab advances the
// column by four, anything else by one.
func (s *characterStream) consume(n int) {
	for _, c := range []byte(s.src[s.offset : s.offset+n]) {
		switch c {
		case '\n':
			s.line++
			s.column = 1
		case '\t':
			s.column += 4
		default:
			s.column++
		}
	}
	s.offset += n
}
