/*
Package ast defines scc's abstract syntax tree: the expression and
statement node variants spec.md §3 enumerates, plus TypeInfo. Every
node carries a token.Range and is built once by the parser, then never
mutated — the same "construct, never mutate" discipline go-mix's
parser/node.go follows for its own (larger) node set, narrowed here to
exactly the variants spec.md names.

Composite nodes never hold nil children (BinaryExpression/
UnaryExpression operands, FunctionCallExpression.callee) — the parser
is the sole producer of ast values and is responsible for upholding
that invariant.
*/
package ast

import "github.com/scc-lang/scc/internal/token"

// TypeInfo names a known type. Only built-in types exist: "int" and
// "void" are pre-populated at global scope construction.
type TypeInfo struct {
	FullName string
}

// Expression is any node that can appear where a value is expected.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that can appear in a scope's statement list.
type Statement interface {
	Node
	statementNode()
}

// Node is implemented by every AST node.
type Node interface {
	Range() token.Range
}

// base embeds a Range and satisfies Node; every concrete node embeds it.
type base struct {
	R token.Range
}

func (b base) Range() token.Range { return b.R }

// BinaryOp enumerates BinaryExpression operators.
type BinaryOp int

const (
	Assign BinaryOp = iota
	MulAssign
	DivAssign
	ModAssign
	AddAssign
	SubAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign

	Mul
	Div
	Mod
	Add
	Sub

	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	base
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (*BinaryExpression) expressionNode() {}

// UnaryExpression is explicit parenthesization: `(operand)`. spec.md §3
// calls this variant's single operator "Bracket" since it is the only
// unary form the grammar produces.
type UnaryExpression struct {
	base
	Operand Expression
}

func (*UnaryExpression) expressionNode() {}

// IdentifierExpression is a (possibly `::`-qualified) name reference.
type IdentifierExpression struct {
	base
	FullName string
}

func (*IdentifierExpression) expressionNode() {}

// IntegerLiteralExpression is a decimal integer literal.
type IntegerLiteralExpression struct {
	base
	Value uint64
}

func (*IntegerLiteralExpression) expressionNode() {}

// StringLiteralExpression is a decoded string literal; Bytes may
// contain arbitrary (including non-UTF8) byte values.
type StringLiteralExpression struct {
	base
	Bytes []byte
}

func (*StringLiteralExpression) expressionNode() {}

// FunctionCallExpression is `callee(args...)`.
type FunctionCallExpression struct {
	base
	Callee Expression
	Args   []Expression
}

func (*FunctionCallExpression) expressionNode() {}

// ExpressionStatement is an expression used as a statement: `expr;`.
type ExpressionStatement struct {
	base
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}

// VariableDeclaration is `type name (= init)?`, either as a function
// parameter (owned by a header scope) or the declaration half of a
// VariableDefinitionStatement (owned by the enclosing scope).
type VariableDeclaration struct {
	base
	Type Expression // an IdentifierExpression naming a known type
	Name string
	Init Expression // nil when there is no initializer
}

// VariableDefinitionStatement wraps a VariableDeclaration as a
// statement. Decl must reference a declaration already present in the
// same scope's VariableDeclarations list, at the matching index.
type VariableDefinitionStatement struct {
	base
	Decl *VariableDeclaration
}

func (*VariableDefinitionStatement) statementNode() {}

// ForLoopStatement is `for (init; cond; iter) { body }`. InitScope's
// parent is the enclosing scope; BodyScope's parent is InitScope.
type ForLoopStatement struct {
	base
	InitScope *Scope
	Cond      Expression // nil when omitted
	Iter      Expression // nil when omitted
	BodyScope *Scope
}

func (*ForLoopStatement) statementNode() {}

// ConditionalStatement is `if (cond) { trueScope } else { falseScope }`.
// `else if` lowers to a single nested ConditionalStatement inside
// FalseScope.
type ConditionalStatement struct {
	base
	Cond       Expression
	TrueScope  *Scope
	FalseScope *Scope
}

func (*ConditionalStatement) statementNode() {}

// ReturnStatement is `return expr?;`.
type ReturnStatement struct {
	base
	Expr Expression // nil for a bare `return;`
}

func (*ReturnStatement) statementNode() {}

// BreakStatement is `break;`.
type BreakStatement struct {
	base
}

func (*BreakStatement) statementNode() {}

// FunctionDefinitionStatement is `returnType name(params) { body }`.
// HeaderScope holds the parameter declarations; BodyScope's parent is
// HeaderScope.
type FunctionDefinitionStatement struct {
	base
	ReturnType  Expression // an IdentifierExpression naming a known type
	Name        string
	HeaderScope *Scope
	BodyScope   *Scope
}

func (*FunctionDefinitionStatement) statementNode() {}

// NewRange builds a token.Range spanning [start,end] from two nodes'
// ranges — a small helper so the parser
// doesn't repeat token.Combine boilerplate at every production.
func NewRange(start, end token.Range) token.Range {
	return token.Combine(start, end)
}

// Constructors below are the only way outside packages can set a
// node's range, since base is unexported; a composite literal built
// outside this package carries a zero range.

func NewBinaryExpression(r token.Range, left Expression, op BinaryOp, right Expression) *BinaryExpression {
	return &BinaryExpression{base: base{R: r}, Left: left, Op: op, Right: right}
}

func NewUnaryExpression(r token.Range, operand Expression) *UnaryExpression {
	return &UnaryExpression{base: base{R: r}, Operand: operand}
}

func NewIdentifierExpression(r token.Range, fullName string) *IdentifierExpression {
	return &IdentifierExpression{base: base{R: r}, FullName: fullName}
}

func NewIntegerLiteralExpression(r token.Range, value uint64) *IntegerLiteralExpression {
	return &IntegerLiteralExpression{base: base{R: r}, Value: value}
}

func NewStringLiteralExpression(r token.Range, bytes []byte) *StringLiteralExpression {
	return &StringLiteralExpression{base: base{R: r}, Bytes: bytes}
}

func NewFunctionCallExpression(r token.Range, callee Expression, args []Expression) *FunctionCallExpression {
	return &FunctionCallExpression{base: base{R: r}, Callee: callee, Args: args}
}

func NewExpressionStatement(r token.Range, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{base: base{R: r}, Expr: expr}
}

func NewVariableDeclaration(r token.Range, typ Expression, name string, init Expression) *VariableDeclaration {
	return &VariableDeclaration{base: base{R: r}, Type: typ, Name: name, Init: init}
}

func NewVariableDefinitionStatement(r token.Range, decl *VariableDeclaration) *VariableDefinitionStatement {
	return &VariableDefinitionStatement{base: base{R: r}, Decl: decl}
}

func NewForLoopStatement(r token.Range, initScope *Scope, cond, iter Expression, bodyScope *Scope) *ForLoopStatement {
	return &ForLoopStatement{base: base{R: r}, InitScope: initScope, Cond: cond, Iter: iter, BodyScope: bodyScope}
}

func NewConditionalStatement(r token.Range, cond Expression, trueScope, falseScope *Scope) *ConditionalStatement {
	return &ConditionalStatement{base: base{R: r}, Cond: cond, TrueScope: trueScope, FalseScope: falseScope}
}

func NewReturnStatement(r token.Range, expr Expression) *ReturnStatement {
	return &ReturnStatement{base: base{R: r}, Expr: expr}
}

func NewBreakStatement(r token.Range) *BreakStatement {
	return &BreakStatement{base: base{R: r}}
}

func NewFunctionDefinitionStatement(r token.Range, returnType Expression, name string, header, body *Scope) *FunctionDefinitionStatement {
	return &FunctionDefinitionStatement{base: base{R: r}, ReturnType: returnType, Name: name, HeaderScope: header, BodyScope: body}
}
