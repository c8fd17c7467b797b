/*
File    : parser/control.go

for, while, and if each parse a parenthesized header followed by a body
that is either a braced block or, absent an opening brace, exactly one
statement parsed with both allowBlock and allowRet open regardless of the
enclosing context.
*/
package parser

import (
	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/lexer"
)

// parseBody consumes an optional opening brace and parses the
// corresponding block form, consuming the matching closing brace itself
// when one was present.
func (p *Parser) parseBody() (*ast.Block, error) {
	hasBrace := p.CurrToken.Kind == lexer.BRACE_OPEN
	if hasBrace {
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock(!hasBrace)
	if err != nil {
		return nil, err
	}
	if hasBrace {
		if err := p.eat(lexer.BRACE_CLOSE); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (p *Parser) parseFor() (*ast.For, error) {
	if err := p.eat(lexer.FOR); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}

	node := &ast.For{}
	if err := p.parseStmtList(&node.Init, lexer.COMMA, false, false); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.SEMI); err != nil {
		return nil, err
	}

	if p.CurrToken.Kind != lexer.SEMI {
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Cond = cond
	}
	if err := p.eat(lexer.SEMI); err != nil {
		return nil, err
	}

	for {
		post, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Post = append(node.Post, post)
		if p.CurrToken.Kind != lexer.COMMA {
			break
		}
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
	}
	if err := p.eat(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	if err := p.eat(lexer.WHILE); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseIf parses the primary condition/block, then zero or more `else if`
// arms, then an optional trailing `else`. Once a plain else is consumed the
// chain terminates.
func (p *Parser) parseIf() (*ast.If, error) {
	if err := p.eat(lexer.IF); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	node := &ast.If{Primary: ast.CondBlock{Cond: cond, Block: body}}

	for p.CurrToken.Kind == lexer.ELSE {
		if err := p.eatSafe(); err != nil {
			return nil, err
		}
		if p.CurrToken.Kind == lexer.IF {
			if err := p.eatSafe(); err != nil {
				return nil, err
			}
			if err := p.eat(lexer.PAREN_OPEN); err != nil {
				return nil, err
			}
			elifCond, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.eat(lexer.PAREN_CLOSE); err != nil {
				return nil, err
			}
			elifBody, err := p.parseBody()
			if err != nil {
				return nil, err
			}
			node.Elifs = append(node.Elifs, ast.CondBlock{Cond: elifCond, Block: elifBody})
			continue
		}

		elseBody, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
		break
	}

	return node, nil
}
