package parser

import (
	"github.com/scc-lang/scc/internal/ast"
	"github.com/scc-lang/scc/internal/token"
)

// parseForStatement implements
// `for_stmt := 'for' '(' (var_or_expr_stmt | ';') expr? ';' expr? ')' '{' statement* '}'`.
// The init clause's own var_or_expr_stmt/';' already consumes its
// trailing semicolon, so only the cond clause needs an explicit one.
func (p *Parser) parseForStatement(scope *ast.Scope) error {
	forTok, err := p.expect(token.For)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.Punct('(')); err != nil {
		return err
	}

	initScope := ast.NewScope(scope)
	if p.cur.Kind == token.Punct(';') {
		if err := p.advance(); err != nil {
			return err
		}
	} else {
		if err := p.parseVarOrExprStatement(initScope); err != nil {
			return err
		}
	}

	var cond ast.Expression
	if p.cur.Kind != token.Punct(';') {
		cond, err = p.parseExpr(nil)
		if err != nil {
			return err
		}
	}
	if _, err := p.expect(token.Punct(';')); err != nil {
		return err
	}

	var iter ast.Expression
	if p.cur.Kind != token.Punct(')') {
		iter, err = p.parseExpr(nil)
		if err != nil {
			return err
		}
	}
	if _, err := p.expect(token.Punct(')')); err != nil {
		return err
	}

	body, bodyRange, err := p.parseBlock(initScope)
	if err != nil {
		return err
	}

	stmt := ast.NewForLoopStatement(ast.NewRange(forTok.Range, bodyRange), initScope, cond, iter, body)
	scope.Statements = append(scope.Statements, stmt)
	return nil
}

// parseIfStatement implements
// `if_stmt := 'if' '(' expr ')' '{' statement* '}' ('else' (if_stmt | '{' statement* '}'))?`.
// `else if` lowers to a single nested ConditionalStatement inside the
// false branch's scope.
func (p *Parser) parseIfStatement(scope *ast.Scope) error {
	ifTok, err := p.expect(token.If)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.Punct('(')); err != nil {
		return err
	}
	cond, err := p.parseExpr(nil)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.Punct(')')); err != nil {
		return err
	}

	trueScope, trueRange, err := p.parseBlock(scope)
	if err != nil {
		return err
	}

	falseScope := ast.NewScope(scope)
	endRange := trueRange
	if p.cur.Kind == token.Else {
		if err := p.advance(); err != nil {
			return err
		}
		if p.cur.Kind == token.If {
			if err := p.parseIfStatement(falseScope); err != nil {
				return err
			}
			endRange = falseScope.Statements[len(falseScope.Statements)-1].Range()
		} else {
			body, bodyRange, err := p.parseBlock(scope)
			if err != nil {
				return err
			}
			falseScope = body
			endRange = bodyRange
		}
	}

	stmt := ast.NewConditionalStatement(ast.NewRange(ifTok.Range, endRange), cond, trueScope, falseScope)
	scope.Statements = append(scope.Statements, stmt)
	return nil
}

// parseReturnStatement implements `return_stmt := 'return' expr? ';'`.
func (p *Parser) parseReturnStatement(scope *ast.Scope) error {
	returnTok, err := p.expect(token.Return)
	if err != nil {
		return err
	}
	var expr ast.Expression
	if p.cur.Kind != token.Punct(';') {
		expr, err = p.parseExpr(nil)
		if err != nil {
			return err
		}
	}
	semi, err := p.expect(token.Punct(';'))
	if err != nil {
		return err
	}
	stmt := ast.NewReturnStatement(ast.NewRange(returnTok.Range, semi.Range), expr)
	scope.Statements = append(scope.Statements, stmt)
	return nil
}
