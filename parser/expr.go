/*
File    : parser/expr.go

Expression parsing, lowest to highest precedence: assignment, or, and,
bitwise xor, equality, relational, additive, multiplicative, factor.
Every level but assignment is left-associative; assignment is right-chained
by recursing back into parseExpr on its right-hand side.
*/
package parser

import (
	"strconv"

	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/lexer"
)

func (p *Parser) parseExpr() (ast.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.CurrToken.Kind == lexer.ASSIGN {
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: left, Value: right}, nil
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseAnd, lexer.OR)
}

func (p *Parser) parseAnd() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseBitwise, lexer.AND)
}

func (p *Parser) parseBitwise() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseEq, lexer.BW_XOR)
}

func (p *Parser) parseEq() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseRel, lexer.CMP_EQU, lexer.CMP_NEQ)
}

func (p *Parser) parseRel() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseAdd, lexer.CMP_LES, lexer.CMP_LTE, lexer.CMP_GRT, lexer.CMP_GTE)
}

func (p *Parser) parseAdd() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseMul, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) parseMul() (ast.Node, error) {
	return p.parseLeftAssoc(p.parseFactor, lexer.MUL, lexer.DIV, lexer.MOD)
}

// parseLeftAssoc folds a chain of same-precedence binary operators built
// from sub into a left-leaning Bin tree.
func (p *Parser) parseLeftAssoc(sub func() (ast.Node, error), kinds ...lexer.Kind) (ast.Node, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	for p.matches(kinds...) {
		op := p.CurrToken.Kind
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		right, err := sub()
		if err != nil {
			return nil, err
		}
		left = &ast.Bin{Left: left, Right: right, Op: op}
	}
	return left, nil
}

func (p *Parser) matches(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.CurrToken.Kind == k {
			return true
		}
	}
	return false
}

// parseFactor handles literals, parenthesized expressions, unary
// operators (right-recursive into factor so unaries nest), putchar as an
// expression, and variable-starting expressions (bare reference, call, or
// array access).
func (p *Parser) parseFactor() (ast.Node, error) {
	switch p.CurrToken.Kind {
	case lexer.INT:
		v, err := strconv.ParseInt(p.CurrToken.Lexeme, 10, 32)
		if err != nil {
			return nil, interperr.New(interperr.InvalidToken, "malformed integer literal %q", p.CurrToken.Lexeme)
		}
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		return &ast.Num{Value: int32(v)}, nil

	case lexer.PAREN_OPEN:
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(lexer.PAREN_CLOSE); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.PLUS, lexer.MINUS, lexer.NEGATE:
		op := p.CurrToken.Kind
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operand: operand, Op: op}, nil

	case lexer.IO:
		if p.CurrToken.Lexeme == "putchar" {
			return p.parsePutcharExpr()
		}
		return nil, interperr.New(interperr.UnsupportedSyntax, "'%s' is not valid inside an expression", p.CurrToken.Lexeme)

	case lexer.VAR:
		// Route through the statement-level var parser so an assignment
		// nested inside an expression (`1 + x = 5`) is recognized the same
		// way a bare assignment statement is, rather than only recognizing
		// a call or an array access.
		return p.parseVarStatement()

	default:
		return nil, interperr.New(interperr.InvalidToken, "unexpected token %s in expression", p.CurrToken.Kind)
	}
}

// parsePutcharExpr parses `putchar(expr)` used as a value-producing
// expression (distinct from its use as a statement).
func (p *Parser) parsePutcharExpr() (ast.Node, error) {
	if err := p.eatSafe(); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}
	return &ast.IOOut{Stream: "putchar", Items: []ast.Node{arg}}, nil
}

// parseCallArgs parses the comma-separated argument list of a call whose
// callee name has already been consumed.
func (p *Parser) parseCallArgs(name string) (ast.Node, error) {
	if err := p.eat(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	var args []ast.Node
	for p.CurrToken.Kind != lexer.PAREN_CLOSE {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.CurrToken.Kind == lexer.COMMA {
			if err := p.eatSafe(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}
	return &ast.FnCall{Name: name, Args: args}, nil
}

// parseArrAccess parses one or more bracketed index expressions following
// a name already consumed.
func (p *Parser) parseArrAccess(name string) (ast.Node, error) {
	var indices []ast.Node
	for p.CurrToken.Kind == lexer.BRKET_OPEN {
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
		if err := p.eat(lexer.BRKET_CLOSE); err != nil {
			return nil, err
		}
	}
	return &ast.ArrAccess{Name: name, Indices: indices}, nil
}
