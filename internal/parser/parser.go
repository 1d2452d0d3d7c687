/*
Package parser turns a scc token stream into an ast.Scope: a
recursive-descent parser with one token of lookahead, restructured from
go-mix's Pratt/infix-table dispatch (parser/parser.go's UnaryFuncs/
BinaryFuncs maps) into the layered-precedence grammar spec.md §4.4
spells out explicitly (assignment, equality, relational, additive,
mult, primary as separate productions rather than a precedence table).

Unlike go-mix, which collects every error into an Errors slice and
keeps going, this parser stops at the first diagnostic: spec.md §7
treats a diagnostic as aborting the whole pipeline, not a recoverable
event a caller steps over.
*/
package parser

import (
	"github.com/scc-lang/scc/internal/ast"
	"github.com/scc-lang/scc/internal/diag"
	"github.com/scc-lang/scc/internal/lexer"
	"github.com/scc-lang/scc/internal/token"
)

// Parser holds one token of lookahead over a lexer.Lexer.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token
}

func newParser(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse reads a complete compile unit into global, which must be a
// freshly constructed global scope (ast.NewScope(nil)).
func Parse(data []byte, global *ast.Scope) error {
	p, err := newParser(lexer.New(data))
	if err != nil {
		return err
	}
	return p.parseCompileUnit(global)
}

func (p *Parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// expect requires the current token to have kind, consumes it, and
// returns it; otherwise it reports a SyntaxError naming what was
// required (spec.md §7's two canonical forms: "expected unqualified-id"
// for an identifier, "expected '<kind>'" for anything else).
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, p.errExpected(kind)
	}
	t := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return t, nil
}

func (p *Parser) errExpected(kind token.Kind) error {
	if kind == token.Identifier {
		return diag.New(diag.Syntax, p.cur.Range, "expected unqualified-id")
	}
	return diag.New(diag.Syntax, p.cur.Range, "expected '%s'", kind.String())
}

// parseCompileUnit parses every top-level statement into global, then
// enforces spec.md §4.4's main-plus-globals rule: once a global `main`
// function is defined, every remaining global statement must itself be
// a declaration (a variable definition or a function definition).
func (p *Parser) parseCompileUnit(global *ast.Scope) error {
	for p.cur.Kind != token.EOF {
		if err := p.parseStatement(global); err != nil {
			return err
		}
	}

	if _, hasMain := global.QueryFunction("main"); hasMain {
		for _, stmt := range global.Statements {
			switch stmt.(type) {
			case *ast.FunctionDefinitionStatement, *ast.VariableDefinitionStatement:
				continue
			}
			r := stmt.Range()
			return diag.New(diag.Semantic, r,
				"unexpected global statement when 'main' function is defined (%d:%d)",
				r.StartLine, r.StartColumn)
		}
	}
	return nil
}

// parseStatement parses one statement::= production, appending the
// resulting node(s) to scope, which owns them. A bare `;` contributes
// nothing. A var_decl_stmt may contribute more than one
// VariableDefinitionStatement (spec.md §4.4's multi-declaration rule).
func (p *Parser) parseStatement(scope *ast.Scope) error {
	switch p.cur.Kind {
	case token.Punct(';'):
		return p.advance()
	case token.For:
		return p.parseForStatement(scope)
	case token.If:
		return p.parseIfStatement(scope)
	case token.Return:
		return p.parseReturnStatement(scope)
	case token.Identifier:
		return p.parseVarOrExprStatement(scope)
	default:
		return p.errExpected(token.Identifier)
	}
}

// parseBlock parses `{ statement* }`, returning a fresh child scope of
// parent and the range spanning the opening to the closing brace.
func (p *Parser) parseBlock(parent *ast.Scope) (*ast.Scope, token.Range, error) {
	lbrace, err := p.expect(token.Punct('{'))
	if err != nil {
		return nil, token.Range{}, err
	}
	body := ast.NewScope(parent)
	for p.cur.Kind != token.Punct('}') {
		if p.cur.Kind == token.EOF {
			return nil, token.Range{}, p.errExpected(token.Punct('}'))
		}
		if err := p.parseStatement(body); err != nil {
			return nil, token.Range{}, err
		}
	}
	rbrace, err := p.expect(token.Punct('}'))
	if err != nil {
		return nil, token.Range{}, err
	}
	return body, ast.NewRange(lbrace.Range, rbrace.Range), nil
}
