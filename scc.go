/*
Package scc is the public library contract spec.md §6 names: a global
compile unit, a parse step, and an emit step, collapsed from go-mix's
top-level `main.go` wiring (`parser.NewParser(src).Parse()` followed by
a visitor pass) into the three free functions below. cmd/scc is the
only intended caller outside of tests.
*/
package scc

import (
	"io"

	"github.com/scc-lang/scc/internal/ast"
	"github.com/scc-lang/scc/internal/emitter"
	"github.com/scc-lang/scc/internal/parser"
)

// NewCompileUnit returns a fresh global scope with built-in types
// ("int", "void") pre-loaded, ready to be handed to ParseInto.
func NewCompileUnit() *ast.Scope {
	return ast.NewScope(nil)
}

// ParseInto reads src to EOF and parses it into unit. On success unit's
// Statements/Functions are populated; on failure unit may hold a
// partial parse and the returned error is a *diag.Error (an error from
// reading src is returned as is).
func ParseInto(unit *ast.Scope, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return parser.Parse(data, unit)
}

// Emit writes the translated program for unit to out.
func Emit(unit *ast.Scope, out io.Writer) error {
	return emitter.Emit(unit, out)
}
