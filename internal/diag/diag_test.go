package diag_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/scc-lang/scc/internal/diag"
	"github.com/scc-lang/scc/internal/token"
)

// TestNew_FieldsMatchFixture diffs the constructed *diag.Error against
// a literal fixture field-by-field with cmp.Diff, the same way
// opal-lang/opal's parser tests diff AST/diagnostic values instead of
// asserting each field individually.
func TestNew_FieldsMatchFixture(t *testing.T) {
	r := token.Range{StartLine: 3, StartColumn: 5, EndLine: 3, EndColumn: 8}
	got := diag.New(diag.Semantic, r, "Undefined type '%s'", "bar")

	want := &diag.Error{
		Kind:        diag.Semantic,
		Message:     "Undefined type 'bar'",
		StartLine:   3,
		StartColumn: 5,
		EndLine:     3,
		EndColumn:   8,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diag.New() mismatch (-want +got):\n%s", diff)
	}
}

func TestRange_RoundTripsThroughError(t *testing.T) {
	r := token.Range{StartLine: 1, StartColumn: 2, EndLine: 4, EndColumn: 9}
	err := diag.New(diag.Lexical, r, "bad escape")

	if diff := cmp.Diff(r, err.Range()); diff != "" {
		t.Errorf("Range() mismatch (-want +got):\n%s", diff)
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "LexicalError", diag.Lexical.String())
	require.Equal(t, "SyntaxError", diag.Syntax.String())
	require.Equal(t, "SemanticError", diag.Semantic.String())
}
