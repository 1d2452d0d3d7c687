package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scc-lang/scc/internal/token"
)

func TestKind_PunctuationRendersAsItsByte(t *testing.T) {
	assert.Equal(t, "(", token.Punct('(').String())
	assert.Equal(t, ";", token.Punct(';').String())
}

func TestKind_NamedKindsRenderCanonicalText(t *testing.T) {
	assert.Equal(t, "::", token.Scope.String())
	assert.Equal(t, "IDENTIFIER", token.Identifier.String())
	assert.Equal(t, "STRING", token.String.String())
	assert.Equal(t, "for", token.For.String())
	assert.Equal(t, "EOF", token.EOF.String())
}

func TestKind_UnknownKindFallsBackToHex(t *testing.T) {
	unknown := token.Kind(0x9999)
	assert.Equal(t, "Kind(0x9999)", unknown.String())
}

func TestKeywords_OnlyTheFourNamedKeywords(t *testing.T) {
	assert.Len(t, token.Keywords, 4)
	assert.Equal(t, token.For, token.Keywords["for"])
	assert.Equal(t, token.If, token.Keywords["if"])
	assert.Equal(t, token.Else, token.Keywords["else"])
	assert.Equal(t, token.Return, token.Keywords["return"])
}

func TestCombine_SpansFromFirstStartToSecondEnd(t *testing.T) {
	a := token.Range{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 3}
	b := token.Range{StartLine: 2, StartColumn: 5, EndLine: 2, EndColumn: 9}
	got := token.Combine(a, b)
	assert.Equal(t, token.Range{StartLine: 1, StartColumn: 1, EndLine: 2, EndColumn: 9}, got)
}

func TestRange_String(t *testing.T) {
	r := token.Range{StartLine: 1, StartColumn: 2, EndLine: 3, EndColumn: 4}
	assert.Equal(t, "1:2-3:4", r.String())
}
