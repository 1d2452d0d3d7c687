/*
Package lexer turns scc source bytes into a stream of token.Token
values. It supports one-token lookahead (Peek) and a putback stack
of any depth, buffering internally exactly as go-mix's lexer.Lexer does,
adapted from go-mix's character-class dispatch in lexer.go/
lexer_utils.go to the token set and comment/escape rules spec.md §4.2
specifies.
*/
package lexer

import (
	"github.com/scc-lang/scc/internal/diag"
	"github.com/scc-lang/scc/internal/source"
	"github.com/scc-lang/scc/internal/token"
)

// Lexer scans source bytes into tokens on demand.
type Lexer struct {
	src      *source.Reader
	putback  []token.Token // stack of tokens pushed back for re-read
	peeked   *token.Token  // single-token lookahead buffer
}

// New returns a Lexer reading from data.
func New(data []byte) *Lexer {
	return &Lexer{src: source.New(data)}
}

// Next consumes and returns the next token, preferring a putback or
// peeked token over the underlying stream.
func (l *Lexer) Next() (token.Token, error) {
	if n := len(l.putback); n > 0 {
		t := l.putback[n-1]
		l.putback = l.putback[:n-1]
		return t, nil
	}
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t, nil
	}
	return l.scan()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (token.Token, error) {
	if n := len(l.putback); n > 0 {
		return l.putback[n-1], nil
	}
	if l.peeked == nil {
		t, err := l.scan()
		if err != nil {
			return token.Token{}, err
		}
		l.peeked = &t
	}
	return *l.peeked, nil
}

// Putback pushes t back onto the lexer so the next Next/Peek returns
// it again. Multiple putbacks stack in LIFO order.
func (l *Lexer) Putback(t token.Token) {
	l.putback = append(l.putback, t)
}

func (l *Lexer) pos() (line, col int) { return l.src.Position() }

func (l *Lexer) point() token.Range {
	line, col := l.pos()
	return token.Range{StartLine: line, StartColumn: col, EndLine: line, EndColumn: col}
}

// scan reads exactly one token from the underlying byte stream,
// skipping whitespace and comments first.
func (l *Lexer) scan() (token.Token, error) {
	if err := l.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	startLine, startCol := l.pos()
	c := l.src.Peek()

	switch {
	case c == source.EOF:
		return l.single(token.EOF, "EOF", startLine, startCol), nil

	case isAlpha(c) || c == '_':
		return l.readIdentifier(startLine, startCol), nil

	case isDigit(c):
		return l.readInteger(startLine, startCol)

	case c == '"':
		return l.readString(startLine, startCol)
	}

	switch c {
	case ':':
		l.src.Advance()
		if l.src.Peek() == ':' {
			l.src.Advance()
			return l.finish(token.Scope, "::", startLine, startCol), nil
		}
		return l.finish(token.Punct(':'), ":", startLine, startCol), nil

	case '<':
		return l.readAngle('<', token.Shl, token.ShlAssign, token.LessEqual, startLine, startCol)
	case '>':
		return l.readAngle('>', token.Shr, token.ShrAssign, token.GreaterEqual, startLine, startCol)

	case '=':
		l.src.Advance()
		if l.src.Peek() == '=' {
			l.src.Advance()
			return l.finish(token.Equal, "==", startLine, startCol), nil
		}
		return l.finish(token.Punct('='), "=", startLine, startCol), nil

	case '!':
		l.src.Advance()
		if l.src.Peek() == '=' {
			l.src.Advance()
			return l.finish(token.NotEqual, "!=", startLine, startCol), nil
		}
		return l.finish(token.Punct('!'), "!", startLine, startCol), nil

	case '*', '/', '%', '+', '-', '&', '^', '|':
		return l.readMaybeCompoundAssign(c, startLine, startCol)

	case '(', ')', '{', '}', ';', ',':
		l.src.Advance()
		return l.finish(token.Punct(c), string(c), startLine, startCol), nil
	}

	r := l.point()
	l.src.Advance()
	return token.Token{}, diag.New(diag.Lexical, r, "unexpected input")
}

// single builds an EOF-style token whose range is a single point.
func (l *Lexer) single(kind token.Kind, literal string, line, col int) token.Token {
	return token.Token{Kind: kind, Str: literal, Range: token.Range{StartLine: line, StartColumn: col, EndLine: line, EndColumn: col}}
}

// finish builds a token spanning [startLine,startCol] to the lexer's
// current (already-advanced-past) position.
func (l *Lexer) finish(kind token.Kind, literal string, startLine, startCol int) token.Token {
	endLine, endCol := l.pos()
	if endCol > 1 {
		endCol--
	}
	return token.Token{
		Kind: kind,
		Str:  literal,
		Range: token.Range{
			StartLine: startLine, StartColumn: startCol,
			EndLine: endLine, EndColumn: endCol,
		},
	}
}

func (l *Lexer) readAngle(ch byte, shl, shlAssign, le token.Kind, startLine, startCol int) (token.Token, error) {
	l.src.Advance() // consume '<' or '>'
	if l.src.Peek() == '=' {
		l.src.Advance()
		return l.finish(le, string([]byte{ch, '='}), startLine, startCol), nil
	}
	if l.src.Peek() == ch {
		l.src.Advance()
		if l.src.Peek() == '=' {
			l.src.Advance()
			return l.finish(shlAssign, string([]byte{ch, ch, '='}), startLine, startCol), nil
		}
		return l.finish(shl, string([]byte{ch, ch}), startLine, startCol), nil
	}
	return l.finish(token.Punct(ch), string(ch), startLine, startCol), nil
}

func (l *Lexer) readMaybeCompoundAssign(ch byte, startLine, startCol int) (token.Token, error) {
	l.src.Advance()
	if l.src.Peek() == '=' {
		l.src.Advance()
		var kind token.Kind
		switch ch {
		case '*':
			kind = token.MulAssign
		case '/':
			kind = token.DivAssign
		case '%':
			kind = token.ModAssign
		case '+':
			kind = token.AddAssign
		case '-':
			kind = token.SubAssign
		case '&':
			kind = token.AndAssign
		case '^':
			kind = token.XorAssign
		case '|':
			kind = token.OrAssign
		}
		return l.finish(kind, string(ch)+"=", startLine, startCol), nil
	}
	return l.finish(token.Punct(ch), string(ch), startLine, startCol), nil
}

func (l *Lexer) readIdentifier(startLine, startCol int) token.Token {
	var b []byte
	for isAlpha(l.src.Peek()) || isDigit(l.src.Peek()) || l.src.Peek() == '_' {
		b = append(b, l.src.Advance())
	}
	name := string(b)
	if kind, ok := token.Keywords[name]; ok {
		return l.finish(kind, name, startLine, startCol)
	}
	t := l.finish(token.Identifier, name, startLine, startCol)
	t.Str = name
	return t
}

func (l *Lexer) readInteger(startLine, startCol int) (token.Token, error) {
	var value uint64
	var digits []byte
	for isDigit(l.src.Peek()) {
		d := l.src.Advance()
		digits = append(digits, d)
		digit := uint64(d - '0')
		if value > (^uint64(0)-digit)/10 { // value*10+digit would overflow uint64
			// Keep consuming the rest of the digit run so the error
			// range covers the whole malformed literal, then fail.
			for isDigit(l.src.Peek()) {
				l.src.Advance()
			}
			r := token.Range{StartLine: startLine, StartColumn: startCol}
			r.EndLine, r.EndColumn = l.pos()
			if r.EndColumn > 1 {
				r.EndColumn--
			}
			return token.Token{}, diag.New(diag.Lexical, r, "integer literal out of range")
		}
		value = value*10 + digit
	}
	t := l.finish(token.Integer, string(digits), startLine, startCol)
	t.Int = value
	return t, nil
}

func (l *Lexer) skipTrivia() error {
	for {
		c := l.src.Peek()
		switch {
		case isWhitespace(c):
			l.src.Advance()
			continue
		case c == '#':
			if err := l.skipHashComment(); err != nil {
				return err
			}
			continue
		case c == '/' && l.src.PeekAt(1) == '/':
			l.skipLineComment()
			continue
		case c == '/' && l.src.PeekAt(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (l *Lexer) skipHashComment() error {
	hashLine, hashCol := l.pos()
	l.src.Advance() // consume '#'
	n := l.src.Peek()
	if n == source.EOF || n == '\n' || isWhitespace(n) || n == '!' {
		for l.src.Peek() != '\n' && l.src.Peek() != source.EOF {
			l.src.Advance()
		}
		return nil
	}
	r := token.Range{StartLine: hashLine, StartColumn: hashCol + 1, EndLine: hashLine, EndColumn: hashCol + 1}
	return diag.New(diag.Lexical, r, "'#' comment must be followed by a whitespace character")
}

func (l *Lexer) skipLineComment() {
	l.src.Advance()
	l.src.Advance()
	for l.src.Peek() != '\n' && l.src.Peek() != source.EOF {
		l.src.Advance()
	}
}

func (l *Lexer) skipBlockComment() error {
	startLine, startCol := l.pos()
	l.src.Advance()
	l.src.Advance()
	depth := 1
	for depth > 0 {
		c := l.src.Peek()
		if c == source.EOF {
			r := token.Range{StartLine: startLine, StartColumn: startCol, EndLine: startLine, EndColumn: startCol + 1}
			return diag.New(diag.Lexical, r, "unterminated /* comment")
		}
		if c == '/' && l.src.PeekAt(1) == '*' {
			l.src.Advance()
			l.src.Advance()
			depth++
			continue
		}
		if c == '*' && l.src.PeekAt(1) == '/' {
			l.src.Advance()
			l.src.Advance()
			depth--
			continue
		}
		l.src.Advance()
	}
	return nil
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}
