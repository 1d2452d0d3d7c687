package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-lang/scc/internal/lexer"
	"github.com/scc-lang/scc/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New([]byte(src))
	var out []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestLexer_PunctuationIsItsByteValue(t *testing.T) {
	toks := scanAll(t, "(){};,")
	assert.Equal(t, token.Punct('('), toks[0].Kind)
	assert.Equal(t, token.Punct(')'), toks[1].Kind)
	assert.Equal(t, token.Punct('{'), toks[2].Kind)
	assert.Equal(t, token.Punct('}'), toks[3].Kind)
	assert.Equal(t, token.Punct(';'), toks[4].Kind)
	assert.Equal(t, token.Punct(','), toks[5].Kind)
}

func TestLexer_MultiByteOperators(t *testing.T) {
	toks := scanAll(t, ":: <= >= << >> == != *= /= %= += -= <<= >>= &= ^= |=")
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Scope, token.LessEqual, token.GreaterEqual, token.Shl, token.Shr,
		token.Equal, token.NotEqual, token.MulAssign, token.DivAssign, token.ModAssign,
		token.AddAssign, token.SubAssign, token.ShlAssign, token.ShrAssign,
		token.AndAssign, token.XorAssign, token.OrAssign,
	}, kinds)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "for if else return foobar")
	assert.Equal(t, token.For, toks[0].Kind)
	assert.Equal(t, token.If, toks[1].Kind)
	assert.Equal(t, token.Else, toks[2].Kind)
	assert.Equal(t, token.Return, toks[3].Kind)
	assert.Equal(t, token.Identifier, toks[4].Kind)
	assert.Equal(t, "foobar", toks[4].Str)
}

func TestLexer_IntegerLiteral(t *testing.T) {
	toks := scanAll(t, "12345")
	assert.Equal(t, token.Integer, toks[0].Kind)
	assert.Equal(t, uint64(12345), toks[0].Int)
}

func TestLexer_IntegerOverflowErrors(t *testing.T) {
	l := lexer.New([]byte("99999999999999999999"))
	_, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer literal out of range")
}

func TestLexer_HashCommentRequiresWhitespace(t *testing.T) {
	l := lexer.New([]byte("#bad\n"))
	_, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'#' comment must be followed by a whitespace character")
}

func TestLexer_HashCommentIsSkipped(t *testing.T) {
	toks := scanAll(t, "# a comment\nfoo")
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Str)
}

func TestLexer_LineCommentIsSkipped(t *testing.T) {
	toks := scanAll(t, "foo // trailing\nbar")
	assert.Equal(t, "foo", toks[0].Str)
	assert.Equal(t, "bar", toks[1].Str)
}

func TestLexer_NestedBlockComments(t *testing.T) {
	toks := scanAll(t, "/* /* */ */ foo")
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Str)
}

func TestLexer_UnterminatedBlockCommentErrors(t *testing.T) {
	l := lexer.New([]byte("/* never closed"))
	_, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated /* comment")
}

func TestLexer_PeekDoesNotAdvance(t *testing.T) {
	l := lexer.New([]byte("foo bar"))
	first, err := l.Peek()
	require.NoError(t, err)
	second, err := l.Peek()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	consumed, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, first, consumed)
}

func TestLexer_PutbackReplaysInLIFOOrder(t *testing.T) {
	l := lexer.New([]byte("a b c"))
	first, _ := l.Next()
	second, _ := l.Next()
	l.Putback(second)
	l.Putback(first)
	replayed1, _ := l.Next()
	replayed2, _ := l.Next()
	assert.Equal(t, first, replayed1)
	assert.Equal(t, second, replayed2)
}
