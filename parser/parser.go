/*
File    : parser/parser.go

Package parser implements a recursive-descent parser with one token of
lookahead for the interpreter's C-subset source language, converting a
token stream from the lexer into the AST defined in package ast.
*/
package parser

import (
	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/lexer"
)

// Parser holds the lexer and a one-token pull-ahead buffer. CurrToken is
// the token every grammar decision dispatches on; NextToken is the token
// already pulled from the lexer that advance() shifts into CurrToken on the
// following call. No production reads NextToken directly — every
// disambiguation in this package (e.g. a declared name followed by `(` vs.
// `[` vs. nothing) is made after advancing, by inspecting CurrToken alone.
type Parser struct {
	lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token
}

// New returns a Parser positioned at the first token of src.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts NextToken into CurrToken and pulls a fresh token from the
// lexer into NextToken.
func (p *Parser) advance() error {
	p.CurrToken = p.NextToken
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.NextToken = tok
	return nil
}

// eat consumes CurrToken if it has the expected kind, advancing past it; it
// raises InvalidToken otherwise.
func (p *Parser) eat(kind lexer.Kind) error {
	if p.CurrToken.Kind != kind {
		return interperr.New(interperr.InvalidToken, "expected %s, got %s (%q)", kind, p.CurrToken.Kind, p.CurrToken.Lexeme)
	}
	return p.advance()
}

// eatSafe consumes CurrToken unconditionally, used where a prior branch has
// already confirmed the kind via a switch on CurrToken.Kind.
func (p *Parser) eatSafe() error {
	return p.advance()
}

// Parse consumes the whole token stream and returns the program as a
// top-level Scope node.
func Parse(src string) (*ast.Scope, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

// ParseLine parses a single REPL line as zero or more top-level statements
// with allowBlock open and allowRet closed (a bare `return` at the top
// level of an interactive session has nothing to return from).
func ParseLine(src string) ([]ast.Node, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Node
	if err := p.parseStmtList(&stmts, lexer.SEMI, true, false); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseProgram parses a sequence of top-level statements (function and
// variable declarations, ordinarily) until EOF, wrapping them in a Scope so
// the evaluator pushes exactly one global frame for the whole run.
func (p *Parser) parseProgram() (*ast.Scope, error) {
	block := &ast.Block{}
	if err := p.parseStmtList(&block.Stmts, lexer.SEMI, true, true); err != nil {
		return nil, err
	}
	return &ast.Scope{Block: block}, nil
}
