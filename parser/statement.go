/*
File    : parser/statement.go

Statement-level parsing: declarations, variable-starting statements,
control flow, and the glue that stitches single statements into blocks.
allowBlock gates function declarations and for/while/if; allowRet gates
bare return statements. Both default to true everywhere except a for
loop's init clause, which allows neither, and a REPL line (ParseLine),
which allows no return.
*/
package parser

import (
	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/lexer"
)

// parseBlock parses a braced or single-statement body. single selects
// single-statement mode: exactly one statement is read (always with both
// gates open, regardless of the caller's own allowBlock/allowRet), with
// its trailing semicolon consumed if present.
func (p *Parser) parseBlock(single bool) (*ast.Block, error) {
	block := &ast.Block{}
	if single {
		stmt, shouldEat, err := p.stment(true, true)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		if shouldEat {
			if p.CurrToken.Kind == lexer.SEMI {
				if err := p.eatSafe(); err != nil {
					return nil, err
				}
			}
		}
		return block, nil
	}

	if err := p.parseStmtList(&block.Stmts, lexer.SEMI, true, true); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStmtList reads statements until one fails to yield a trailing
// separator token, used both for the body of a braced block (separator
// SEMI) and a for loop's init clause (separator COMMA).
func (p *Parser) parseStmtList(out *[]ast.Node, separator lexer.Kind, allowBlock, allowRet bool) error {
	for {
		stmt, shouldEat, err := p.stment(allowBlock, allowRet)
		if err != nil {
			return err
		}
		if stmt != nil {
			*out = append(*out, stmt)
		}
		if shouldEat {
			if p.CurrToken.Kind != separator {
				return nil
			}
			if err := p.eatSafe(); err != nil {
				return err
			}
		}
	}
}

// stment dispatches on the current token's kind and returns the parsed
// node (nil if none applies), whether the caller still needs to consume a
// trailing separator, and any error. A braced nested scope and every
// control-flow form already consume their own closing brace, so they
// report shouldEat=false.
func (p *Parser) stment(allowBlock, allowRet bool) (ast.Node, bool, error) {
	switch p.CurrToken.Kind {
	case lexer.BRACE_OPEN:
		if err := p.eatSafe(); err != nil {
			return nil, false, err
		}
		block, err := p.parseBlock(false)
		if err != nil {
			return nil, false, err
		}
		if err := p.eat(lexer.BRACE_CLOSE); err != nil {
			return nil, false, err
		}
		return &ast.Scope{Block: block}, false, nil

	case lexer.VAR_TYPE:
		decls, isFnDecl, err := p.parseInitVarStatement(allowBlock)
		if err != nil {
			return nil, false, err
		}
		return &ast.Block{Stmts: decls}, !isFnDecl, nil

	case lexer.VAR:
		node, err := p.parseVarStatement()
		return node, true, err

	case lexer.RET:
		if !allowRet {
			return nil, false, interperr.New(interperr.UnsupportedSyntax, "return is not allowed here")
		}
		if err := p.eatSafe(); err != nil {
			return nil, false, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		return &ast.Ret{Expr: expr}, true, nil

	case lexer.FOR:
		if !allowBlock {
			return nil, false, interperr.New(interperr.UnsupportedSyntax, "for loop is not allowed here")
		}
		node, err := p.parseFor()
		return node, false, err

	case lexer.WHILE:
		if !allowBlock {
			return nil, false, interperr.New(interperr.UnsupportedSyntax, "while loop is not allowed here")
		}
		node, err := p.parseWhile()
		return node, false, err

	case lexer.IF:
		if !allowBlock {
			return nil, false, interperr.New(interperr.UnsupportedSyntax, "if is not allowed here")
		}
		node, err := p.parseIf()
		return node, false, err

	case lexer.IO:
		node, err := p.parseIOStatement()
		return node, true, err

	default:
		return nil, true, nil
	}
}

// parseVarStatement parses a VAR-starting statement: a call, an array
// access (optionally assigned), a plain assignment, or a bare variable
// reference. It is also used directly to parse cin lvalue targets.
func (p *Parser) parseVarStatement() (ast.Node, error) {
	name := p.CurrToken.Lexeme
	if err := p.eat(lexer.VAR); err != nil {
		return nil, err
	}

	if p.CurrToken.Kind == lexer.ASSIGN {
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: &ast.Var{Name: name}, Value: val}, nil
	}

	if p.CurrToken.Kind == lexer.PAREN_OPEN {
		return p.parseCallArgs(name)
	}

	if p.CurrToken.Kind == lexer.BRKET_OPEN {
		access, err := p.parseArrAccess(name)
		if err != nil {
			return nil, err
		}
		if p.CurrToken.Kind == lexer.ASSIGN {
			if err := p.eatSafe(); err != nil {
				return nil, err
			}
			val, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.Assign{Target: access, Value: val}, nil
		}
		return access, nil
	}

	return &ast.Var{Name: name}, nil
}
