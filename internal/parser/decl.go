package parser

import (
	"github.com/scc-lang/scc/internal/ast"
	"github.com/scc-lang/scc/internal/diag"
	"github.com/scc-lang/scc/internal/token"
)

// parseVarOrExprStatement implements var_or_expr_stmt. The current
// token is known to be IDENTIFIER. It consumes the qualified
// identifier_expr, then applies spec.md §4.4's disambiguation rule:
// the shape of the *next* token decides whether this position is
// declaration-shaped (a second identifier follows, immediately) or
// expression-shaped. Declaration shape is structural, not contingent
// on the first identifier actually naming a known type — an unknown
// type name in declaration position is a SemanticError, never
// silently reinterpreted as an expression (spec.md §8 scenario 5:
// `bar y;` with `bar` unknown fails with `Undefined type 'bar'`
// rather than parsing as two bare expression statements).
func (p *Parser) parseVarOrExprStatement(scope *ast.Scope) error {
	ident, err := p.parseIdentifierExpr()
	if err != nil {
		return err
	}

	if p.cur.Kind == token.Identifier {
		if _, ok := scope.QueryType(ident.FullName); !ok {
			return diag.New(diag.Semantic, ident.Range(), "Undefined type '%s'", ident.FullName)
		}
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return err
		}
		if p.cur.Kind == token.Punct('(') {
			return p.parseFunctionDefinition(scope, ident, nameTok)
		}
		return p.parseVariableDeclarationStatement(scope, ident, nameTok)
	}

	expr, err := p.parseExpr(ident)
	if err != nil {
		return err
	}
	semi, err := p.expect(token.Punct(';'))
	if err != nil {
		return err
	}
	stmt := ast.NewExpressionStatement(ast.NewRange(expr.Range(), semi.Range), expr)
	scope.Statements = append(scope.Statements, stmt)
	return nil
}

// parseFunctionDefinition implements func_def, with typExpr/nameTok
// already consumed by the caller and the current token positioned at
// the parameter list's opening '('.
func (p *Parser) parseFunctionDefinition(scope *ast.Scope, typExpr ast.Expression, nameTok token.Token) error {
	if _, err := p.expect(token.Punct('(')); err != nil {
		return err
	}
	header := ast.NewScope(scope)
	if p.cur.Kind != token.Punct(')') {
		for {
			paramType, err := p.parseKnownTypeRef(header)
			if err != nil {
				return err
			}
			paramName, err := p.expect(token.Identifier)
			if err != nil {
				return err
			}
			decl := ast.NewVariableDeclaration(ast.NewRange(paramType.Range(), paramName.Range), paramType, paramName.Str, nil)
			header.VariableDeclarations = append(header.VariableDeclarations, decl)
			if p.cur.Kind == token.Punct(',') {
				if err := p.advance(); err != nil {
					return err
				}
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.Punct(')')); err != nil {
		return err
	}

	body, bodyRange, err := p.parseBlock(header)
	if err != nil {
		return err
	}

	def := ast.NewFunctionDefinitionStatement(ast.NewRange(typExpr.Range(), bodyRange), typExpr, nameTok.Str, header, body)
	scope.AddFunction(nameTok.Str, def)
	scope.Statements = append(scope.Statements, def)
	return nil
}

// parseVariableDeclarationStatement implements var_decl_stmt with the
// first declarator's type and name already consumed by the caller.
func (p *Parser) parseVariableDeclarationStatement(scope *ast.Scope, firstType ast.Expression, firstName token.Token) error {
	currentType := firstType

	if err := p.appendVariableDeclaration(scope, currentType, firstName.Str, firstName.Range); err != nil {
		return err
	}

	for p.cur.Kind == token.Punct(',') {
		if err := p.advance(); err != nil {
			return err
		}
		ident, err := p.parseIdentifierExpr()
		if err != nil {
			return err
		}
		if _, ok := scope.QueryType(ident.FullName); ok {
			currentType = ast.NewIdentifierExpression(ident.Range(), ident.FullName)
			nameTok, err := p.expect(token.Identifier)
			if err != nil {
				return err
			}
			if err := p.appendVariableDeclaration(scope, currentType, nameTok.Str, nameTok.Range); err != nil {
				return err
			}
			continue
		}
		if err := p.appendVariableDeclaration(scope, currentType, ident.FullName, ident.Range()); err != nil {
			return err
		}
	}

	_, err := p.expect(token.Punct(';'))
	return err
}

// appendVariableDeclaration parses an optional `= expr` initializer for
// one declarator, then appends both the VariableDeclaration and its
// wrapping VariableDefinitionStatement to scope.
func (p *Parser) appendVariableDeclaration(scope *ast.Scope, typ ast.Expression, name string, nameRange token.Range) error {
	var init ast.Expression
	end := nameRange
	if p.cur.Kind == token.Punct('=') {
		if err := p.advance(); err != nil {
			return err
		}
		var err error
		init, err = p.parseExpr(nil)
		if err != nil {
			return err
		}
		end = init.Range()
	}
	decl := ast.NewVariableDeclaration(ast.NewRange(typ.Range(), end), typ, name, init)
	scope.VariableDeclarations = append(scope.VariableDeclarations, decl)
	scope.Statements = append(scope.Statements, ast.NewVariableDefinitionStatement(decl.Range(), decl))
	return nil
}

// parseKnownTypeRef parses an identifier_expr used in type position
// (function parameter types) and validates it names a known type.
func (p *Parser) parseKnownTypeRef(scope *ast.Scope) (*ast.IdentifierExpression, error) {
	ident, err := p.parseIdentifierExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := scope.QueryType(ident.FullName); !ok {
		return nil, diag.New(diag.Semantic, ident.Range(), "Undefined type '%s'", ident.FullName)
	}
	return ident, nil
}
