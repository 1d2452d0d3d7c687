package scc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-lang/scc"
	"github.com/scc-lang/scc/internal/diag"
)

// translate drives the full NewCompileUnit -> ParseInto -> Emit
// pipeline, the closest Go analogue of go-mix's main_test.go smoke
// tests, for each spec.md §8 scenario.
func translate(t *testing.T, src string) string {
	t.Helper()
	unit := scc.NewCompileUnit()
	require.NoError(t, scc.ParseInto(unit, strings.NewReader(src)))
	var out strings.Builder
	require.NoError(t, scc.Emit(unit, &out))
	return out.String()
}

func TestScc_EmptyInputScenario(t *testing.T) {
	out := translate(t, "")
	assert.Contains(t, out, "import scc.std;")
	assert.Contains(t, out, "int main()")
	assert.Contains(t, out, "return 0;")
}

func TestScc_HelloWorldScenario(t *testing.T) {
	out := translate(t, `std::println("Hello world!");`)
	assert.Contains(t, out, `scc::std::println("Hello world!");`)
}

func TestScc_ForLoopScenario(t *testing.T) {
	out := translate(t, `for (int a, int b = 10; a < b; a += 2) { foo(a + b); }`)
	assert.Contains(t, out, "int a {};")
	assert.Contains(t, out, "int b { 10 };")
	assert.Contains(t, out, "for (; a < b; a += 2)")
	assert.Contains(t, out, "foo(a + b);")
}

func TestScc_DisambiguationScenario(t *testing.T) {
	out := translate(t, `int x = 0; foo(x); int y = foo();`)
	assert.Contains(t, out, "foo(x);")
	assert.Contains(t, out, "int y { foo() };")
}

func TestScc_DisambiguationUndefinedTypeErrors(t *testing.T) {
	unit := scc.NewCompileUnit()
	err := scc.ParseInto(unit, strings.NewReader(`bar y;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined type 'bar'")
}

func TestScc_ElseIfChainScenario(t *testing.T) {
	out := translate(t, `if (a) { foo(); } else if (b) { bar(); }`)
	assert.Contains(t, out, "if (a)")
	assert.Contains(t, out, "if (b)")
}

func TestScc_ParseErrorSurfacesAsDiagError(t *testing.T) {
	unit := scc.NewCompileUnit()
	err := scc.ParseInto(unit, strings.NewReader(`if (a`))
	require.Error(t, err)
	_, ok := err.(*diag.Error)
	assert.True(t, ok, "parse failure must be a *diag.Error")
}
