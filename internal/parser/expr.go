package parser

import (
	"github.com/scc-lang/scc/internal/ast"
	"github.com/scc-lang/scc/internal/token"
)

// Every level below accepts an optional already-parsed prefix
// expression (spec.md §9 "pre-parsed identifier threading"): when the
// statement dispatcher has already consumed an identifier_expr to
// decide between a declaration and an expression statement, that node
// is threaded straight into parseExpr instead of being re-lexed. Only
// identifier_expr can appear in this position (it is always the
// leftmost token of whatever expression follows), so prefix only ever
// needs to survive down to parsePrimary/call — no level in between
// consults scope, since disambiguation against the symbol table
// already happened before parseExpr was called.

func (p *Parser) parseExpr(prefix ast.Expression) (ast.Expression, error) {
	return p.parseAssignment(prefix)
}

var assignOps = map[token.Kind]ast.BinaryOp{
	token.Punct('='): ast.Assign,
	token.MulAssign:  ast.MulAssign,
	token.DivAssign:  ast.DivAssign,
	token.ModAssign:  ast.ModAssign,
	token.AddAssign:  ast.AddAssign,
	token.SubAssign:  ast.SubAssign,
	token.ShlAssign:  ast.ShlAssign,
	token.ShrAssign:  ast.ShrAssign,
	token.AndAssign:  ast.AndAssign,
	token.XorAssign:  ast.XorAssign,
	token.OrAssign:   ast.OrAssign,
}

// parseAssignment right-associates: one right-hand `assignment` is
// parsed after the operator, rather than looping.
func (p *Parser) parseAssignment(prefix ast.Expression) (ast.Expression, error) {
	left, err := p.parseEquality(prefix)
	if err != nil {
		return nil, err
	}
	op, ok := assignOps[p.cur.Kind]
	if !ok {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAssignment(nil)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpression(ast.NewRange(left.Range(), right.Range()), left, op, right), nil
}

func (p *Parser) parseEquality(prefix ast.Expression) (ast.Expression, error) {
	left, err := p.parseRelational(prefix)
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.Equal:
			op = ast.Eq
		case token.NotEqual:
			op = ast.Ne
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational(nil)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewRange(left.Range(), right.Range()), left, op, right)
	}
}

func (p *Parser) parseRelational(prefix ast.Expression) (ast.Expression, error) {
	left, err := p.parseAdditive(prefix)
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.Punct('<'):
			op = ast.Lt
		case token.Punct('>'):
			op = ast.Gt
		case token.LessEqual:
			op = ast.Le
		case token.GreaterEqual:
			op = ast.Ge
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive(nil)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewRange(left.Range(), right.Range()), left, op, right)
	}
}

// parseAdditive implements `additive := mult ( ('+'|'-') mult )*`.
// There is no unary minus: a '-' with no left operand reaches
// parsePrimary and fails with "expected unqualified-id", so `-1` is not
// a valid expression.
func (p *Parser) parseAdditive(prefix ast.Expression) (ast.Expression, error) {
	left, err := p.parseMult(prefix)
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.Punct('+'):
			op = ast.Add
		case token.Punct('-'):
			op = ast.Sub
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMult(nil)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewRange(left.Range(), right.Range()), left, op, right)
	}
}

func (p *Parser) parseMult(prefix ast.Expression) (ast.Expression, error) {
	left, err := p.parsePrimary(prefix)
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.Punct('*'):
			op = ast.Mul
		case token.Punct('/'):
			op = ast.Div
		case token.Punct('%'):
			op = ast.Mod
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePrimary(nil)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewRange(left.Range(), right.Range()), left, op, right)
	}
}

// parsePrimary implements `primary := INTEGER | STRING | '(' expr ')' |
// call`. When prefix is non-nil it is an already-parsed identifier_expr
// and this is really the `call` production's tail.
func (p *Parser) parsePrimary(prefix ast.Expression) (ast.Expression, error) {
	if prefix != nil {
		return p.parseCallTail(prefix)
	}

	switch p.cur.Kind {
	case token.Integer:
		t := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteralExpression(t.Range, t.Int), nil

	case token.String:
		t := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewStringLiteralExpression(t.Range, []byte(t.Str)), nil

	case token.Punct('('):
		lparen := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(nil)
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.Punct(')'))
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.NewRange(lparen.Range, rparen.Range), inner), nil

	case token.Identifier:
		ident, err := p.parseIdentifierExpr()
		if err != nil {
			return nil, err
		}
		return p.parseCallTail(ident)

	default:
		return nil, p.errExpected(token.Identifier)
	}
}

// parseCallTail implements call's optional `'(' (expr (',' expr)*)? ')'`
// tail over an already-parsed callee.
func (p *Parser) parseCallTail(callee ast.Expression) (ast.Expression, error) {
	if p.cur.Kind != token.Punct('(') {
		return callee, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.cur.Kind != token.Punct(')') {
		for {
			arg, err := p.parseExpr(nil)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Kind == token.Punct(',') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	rparen, err := p.expect(token.Punct(')'))
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionCallExpression(ast.NewRange(callee.Range(), rparen.Range), callee, args), nil
}

// parseIdentifierExpr implements `identifier_expr := IDENT ('::' IDENT)*`.
func (p *Parser) parseIdentifierExpr() (*ast.IdentifierExpression, error) {
	if p.cur.Kind != token.Identifier {
		return nil, p.errExpected(token.Identifier)
	}
	start := p.cur
	name := p.cur.Str
	last := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Scope {
		if err := p.advance(); err != nil {
			return nil, err
		}
		part, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		name += "::" + part.Str
		last = part
	}
	return ast.NewIdentifierExpression(ast.NewRange(start.Range, last.Range), name), nil
}
