/*
Package token defines the lexical atoms scc's lexer and parser share:
token kinds, their attached source range, and an optional string/integer
payload.

Single-byte punctuation (';', ',', '(', ')', '{', '}', ':', '<', '>',
'=', '+', '-', '*', '/', '%', '&', '^', '|', '!') is represented by the
byte value itself, exactly as spec.md's data model describes. Every
other kind — multi-byte operators, keywords, literal kinds, and EOF —
lives past byte range so the two families never collide.
*/
package token

import "fmt"

// Kind identifies the lexical category of a Token. Punctuation kinds
// equal their own byte value (see Punct); every other kind is one of
// the named constants below.
type Kind int32

// Punct returns the Kind for a single-byte punctuation character.
func Punct(b byte) Kind { return Kind(b) }

// Multi-byte operators, literal kinds, keywords, and EOF. These all
// start at 0x100 so they never collide with a Punct byte value.
const (
	Scope Kind = 0x100 + iota // "::"

	LessEqual    // "<="
	GreaterEqual // ">="
	Shl          // "<<"
	Shr          // ">>"
	Equal        // "=="
	NotEqual     // "!="

	MulAssign // "*="
	DivAssign // "/="
	ModAssign // "%="
	AddAssign // "+="
	SubAssign // "-="
	ShlAssign // "<<="
	ShrAssign // ">>="
	AndAssign // "&="
	XorAssign // "^="
	OrAssign  // "|="

	Identifier
	String
	Integer

	For
	If
	Else
	Return

	EOF
)

// Keywords maps reserved words to their Kind, mirroring go-mix's
// KEYWORDS_MAP lookup table but restricted to spec.md's four keywords.
var Keywords = map[string]Kind{
	"for":    For,
	"if":     If,
	"else":   Else,
	"return": Return,
}

// names holds the textual rendering used both by Kind.String() and by
// the parser's "expected '<kind-name>'" diagnostic (spec.md §7).
var names = map[Kind]string{
	Scope:        "::",
	LessEqual:    "<=",
	GreaterEqual: ">=",
	Shl:          "<<",
	Shr:          ">>",
	Equal:        "==",
	NotEqual:     "!=",

	MulAssign: "*=",
	DivAssign: "/=",
	ModAssign: "%=",
	AddAssign: "+=",
	SubAssign: "-=",
	ShlAssign: "<<=",
	ShrAssign: ">>=",
	AndAssign: "&=",
	XorAssign: "^=",
	OrAssign:  "|=",

	Identifier: "IDENTIFIER",
	String:     "STRING",
	Integer:    "INTEGER",

	For:    "for",
	If:     "if",
	Else:   "else",
	Return: "return",

	EOF: "EOF",
}

// String renders a Kind the way diagnostics do: the literal character
// for punctuation, and the canonical name from names for everything
// else.
func (k Kind) String() string {
	if k >= 0 && k < 0x100 {
		return string(rune(k))
	}
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%#x)", int32(k))
}

// Token is a single lexical atom: a Kind, its source Range, and an
// optional payload (Str for IDENTIFIER/STRING, Int for INTEGER).
type Token struct {
	Kind  Kind
	Range Range
	Str   string
	Int   uint64
}
