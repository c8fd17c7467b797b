/*
File    : parser/decl.go

Declaration parsing following a consumed VAR_TYPE: scalar variables, array
variables, and function declarations, plus the comma-chained multi-
declaration form (`int a, b, c;`).
*/
package parser

import (
	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/lexer"
)

// parseInitVarStatement consumes `VAR_TYPE VAR` and then dispatches to a
// function declaration, an array declaration, or one-or-more comma-chained
// scalar declarations sharing the same type tag. It reports whether a
// function declaration was parsed, since a function body's closing brace
// leaves no trailing separator to consume.
func (p *Parser) parseInitVarStatement(allowFnDecl bool) ([]ast.Node, bool, error) {
	varType := p.CurrToken.Lexeme
	if err := p.eat(lexer.VAR_TYPE); err != nil {
		return nil, false, err
	}
	name := p.CurrToken.Lexeme
	if err := p.eat(lexer.VAR); err != nil {
		return nil, false, err
	}

	if p.CurrToken.Kind == lexer.PAREN_OPEN {
		if !allowFnDecl {
			return nil, false, interperr.New(interperr.UnsupportedSyntax, "function declaration is not allowed here")
		}
		fn, err := p.parseFnDecl(name, varType)
		if err != nil {
			return nil, false, err
		}
		return []ast.Node{fn}, true, nil
	}

	decls := []ast.Node{}
	first, err := p.parseVarDecl(name, varType)
	if err != nil {
		return nil, false, err
	}
	decls = append(decls, first)

	for p.CurrToken.Kind == lexer.COMMA {
		if err := p.eatSafe(); err != nil {
			return nil, false, err
		}
		nextName := p.CurrToken.Lexeme
		if err := p.eat(lexer.VAR); err != nil {
			return nil, false, err
		}
		decl, err := p.parseVarDecl(nextName, varType)
		if err != nil {
			return nil, false, err
		}
		decls = append(decls, decl)
	}

	return decls, false, nil
}

// parseVarDecl parses one declarator after its `VAR_TYPE VAR` prefix has
// already been consumed: an array declaration if followed by `[`, a scalar
// with an explicit initializer if followed by `=`, or an implicit
// Num(0)-initialized scalar otherwise.
func (p *Parser) parseVarDecl(name, varType string) (ast.Node, error) {
	if p.CurrToken.Kind == lexer.BRKET_OPEN {
		var dims []ast.Node
		for p.CurrToken.Kind == lexer.BRKET_OPEN {
			if err := p.eatSafe(); err != nil {
				return nil, err
			}
			dim, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dims = append(dims, dim)
			if err := p.eat(lexer.BRKET_CLOSE); err != nil {
				return nil, err
			}
		}
		return &ast.ArrDecl{Name: name, Type: varType, Dims: dims}, nil
	}

	if p.CurrToken.Kind == lexer.ASSIGN {
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.VarDecl{Name: name, Type: varType, Init: init}, nil
	}

	return &ast.VarDecl{Name: name, Type: varType, Init: &ast.Num{Value: 0}}, nil
}

// parseFnDecl parses the parameter list and braced body of a function
// declaration whose name and return-type tag have already been consumed.
func (p *Parser) parseFnDecl(name, returnType string) (*ast.FnDecl, error) {
	if err := p.eat(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}

	var params []ast.Param
	for p.CurrToken.Kind != lexer.PAREN_CLOSE {
		paramType := p.CurrToken.Lexeme
		if err := p.eat(lexer.VAR_TYPE); err != nil {
			return nil, err
		}
		paramName := p.CurrToken.Lexeme
		if err := p.eat(lexer.VAR); err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: paramName, Type: paramType})
		if p.CurrToken.Kind == lexer.PAREN_CLOSE {
			break
		}
		if err := p.eat(lexer.COMMA); err != nil {
			return nil, err
		}
	}
	if err := p.eat(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}

	if err := p.eat(lexer.BRACE_OPEN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.BRACE_CLOSE); err != nil {
		return nil, err
	}

	return &ast.FnDecl{ReturnType: returnType, Name: name, Params: params, Body: body}, nil
}
