/*
Package diag defines the single structured error value that flows out
of scc's lexer, parser, and (never, by design) emitter. spec.md §7
calls for "an error value carrying kind, message, source range" rather
than a control-flow mechanism woven through every call — this mirrors
go-mix's parser.Parser.addError/Errors []string pattern, but as a typed
value instead of a formatted string, so the CLI front end can recover
the four coordinates spec.md §6 requires.
*/
package diag

import (
	"fmt"

	"github.com/scc-lang/scc/internal/token"
)

// Kind categorizes an Error for CLI-side handling (e.g. choosing an
// exit code); the message and range remain the authoritative payload.
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Semantic
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "LexicalError"
	case Syntax:
		return "SyntaxError"
	case Semantic:
		return "SemanticError"
	default:
		return "Error"
	}
}

// Error is scc's single error taxonomy: a Kind, a message, and the
// source range the message refers to.
type Error struct {
	Kind                                             Kind
	Message                                          string
	StartLine, StartColumn, EndLine, EndColumn int
}

// New builds an Error from a Range and a formatted message.
func New(kind Kind, r token.Range, format string, args ...interface{}) *Error {
	return &Error{
		Kind:        kind,
		Message:     fmt.Sprintf(format, args...),
		StartLine:   r.StartLine,
		StartColumn: r.StartColumn,
		EndLine:     r.EndLine,
		EndColumn:   r.EndColumn,
	}
}

// Range reconstructs the token.Range the Error was built from.
func (e *Error) Range() token.Range {
	return token.Range{
		StartLine:   e.StartLine,
		StartColumn: e.StartColumn,
		EndLine:     e.EndLine,
		EndColumn:   e.EndColumn,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.StartLine, e.StartColumn, e.Kind, e.Message)
}
