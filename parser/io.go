/*
File    : parser/io.go

I/O statement parsing for cin, cout, and the statement form of putchar.
*/
package parser

import (
	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/lexer"
)

// parseIOStatement dispatches on which I/O keyword was lexed.
func (p *Parser) parseIOStatement() (ast.Node, error) {
	word := p.CurrToken.Lexeme
	if err := p.eat(lexer.IO); err != nil {
		return nil, err
	}

	switch word {
	case "putchar":
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

	case "cin":
		node := &ast.IOIn{}
		for p.CurrToken.Kind == lexer.BW_SHIFTR {
			if err := p.eatSafe(); err != nil {
				return nil, err
			}
			target, err := p.parseVarStatement()
			if err != nil {
				return nil, err
			}
			node.Targets = append(node.Targets, target)
		}
		return node, nil

	case "cout":
		node := &ast.IOOut{Stream: "cout"}
		for p.CurrToken.Kind == lexer.BW_SHIFTL {
			if err := p.eatSafe(); err != nil {
				return nil, err
			}
			if p.CurrToken.Kind == lexer.CHAR {
				node.Items = append(node.Items, &ast.Char{Lexeme: p.CurrToken.Lexeme})
				if err := p.eatSafe(); err != nil {
					return nil, err
				}
				continue
			}
			if p.CurrToken.Kind == lexer.VAR && p.CurrToken.Lexeme == "endl" {
				node.Items = append(node.Items, &ast.Char{Lexeme: "endl"})
				if err := p.eatSafe(); err != nil {
					return nil, err
				}
				continue
			}
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, item)
		}
		return node, nil

	default:
		return nil, interperr.New(interperr.UnsupportedSyntax, "unknown I/O keyword %q", word)
	}
}
