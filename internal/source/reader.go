// Package source implements the byte-level input stream the lexer reads
// from, tracking a 1-based line/column cursor as bytes are consumed.
package source

// EOF is the distinguished value returned by Peek and Advance once the
// stream is exhausted. It is indistinguishable from a literal NUL byte
// in the input, matching the byte-oriented cursor the lexer is built on.
const EOF byte = 0

// Reader wraps a byte slice and exposes a one-byte lookahead cursor with
// line/column tracking. It never mutates its input.
type Reader struct {
	data   []byte
	pos    int
	line   int
	column int
}

// New returns a Reader positioned before the first byte of data.
func New(data []byte) *Reader {
	return &Reader{
		data:   data,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Peek returns the byte at the current position without consuming it, or
// EOF if the stream is exhausted.
func (r *Reader) Peek() byte {
	if r.pos >= len(r.data) {
		return EOF
	}
	return r.data[r.pos]
}

// PeekAt returns the byte offset bytes ahead of the current position
// without consuming anything, or EOF if that position is past the end.
func (r *Reader) PeekAt(offset int) byte {
	i := r.pos + offset
	if i >= len(r.data) || i < 0 {
		return EOF
	}
	return r.data[i]
}

// Advance consumes and returns the current byte, then moves the cursor
// forward. On '\n' the line counter increments and the column resets to
// 1; any other byte (including a lone '\r') only advances the column.
func (r *Reader) Advance() byte {
	b := r.Peek()
	if b == EOF {
		return EOF
	}
	r.pos++
	if b == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}
	return b
}

// Position returns the 1-based (line, column) of the next byte Peek
// would return.
func (r *Reader) Position() (line, column int) {
	return r.line, r.column
}
