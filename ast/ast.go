/*
File    : ast/ast.go

Package ast defines the abstract syntax tree produced by the parser. Rather
than mirroring a class hierarchy with a visitor interface, each node is a
plain struct and the evaluator dispatches on concrete type with a type
switch — the idiomatic Go rendering of a tagged variant.
*/
package ast

import "github.com/cxxi-lang/cxxi/lexer"

// Node is the marker interface implemented by every AST node. It carries no
// behavior; all evaluation logic lives in the eval package's type switch.
type Node interface {
	node()
}

// Num is an integer literal.
type Num struct {
	Value int32
}

// Char carries the raw lexeme of a character literal, a \n escape, or the
// endl identifier used inside a cout chain.
type Char struct {
	Lexeme string
}

// Var references an identifier in value or lvalue position.
type Var struct {
	Name string
}

// VarDecl declares a scalar variable. Init defaults to Num{0} when the
// source omits an initializer.
type VarDecl struct {
	Name string
	Type string
	Init Node
}

// ArrDecl declares a (possibly multi-dimensional) array. Dims holds one
// expression per bracket group, outermost first.
type ArrDecl struct {
	Name string
	Type string
	Dims []Node
}

// ArrAccess indexes into an array, outermost dimension first. It appears
// both as an expression and, wrapped in Assign, as an lvalue.
type ArrAccess struct {
	Name    string
	Indices []Node
}

// Assign stores Value into the lvalue denoted by Target, which must be a
// *Var or *ArrAccess.
type Assign struct {
	Target Node
	Value  Node
}

// Bin is a binary expression; Op is one of the lexer's operator kinds.
type Bin struct {
	Left, Right Node
	Op          lexer.Kind
}

// Unary is a prefix +, -, or ! expression.
type Unary struct {
	Operand Node
	Op      lexer.Kind
}

// Param is one formal parameter of a function declaration.
type Param struct {
	Name string
	Type string
}

// FnDecl declares a function. Evaluating one only registers it in the
// current scope; the body runs on call.
type FnDecl struct {
	ReturnType string
	Name       string
	Params     []Param
	Body       *Block
}

// FnCall invokes a previously declared function by name.
type FnCall struct {
	Name string
	Args []Node
}

// Ret is a return statement.
type Ret struct {
	Expr Node
}

// Block is an ordered sequence of statements sharing the enclosing scope —
// it does not itself push a frame (Scope does that).
type Block struct {
	Stmts []Node
}

// Scope wraps a Block and marks a lexical frame boundary: entering a Scope
// pushes a new call-stack frame, leaving it pops that frame.
type Scope struct {
	Block *Block
}

// For is a C-style for loop. Cond is nil for an omitted condition (treated
// as always-true).
type For struct {
	Init []Node
	Cond Node
	Post []Node
	Body *Block
}

// While is a condition-first loop.
type While struct {
	Cond Node
	Body *Block
}

// CondBlock pairs a condition with the block to run when it is truthy; used
// for both the primary `if` and each `else if` arm.
type CondBlock struct {
	Cond  Node
	Block *Block
}

// If models an if/else-if.../else chain. Elifs is empty when there are no
// `else if` arms; Else is nil when there is no trailing `else`.
type If struct {
	Primary CondBlock
	Elifs   []CondBlock
	Else    *Block
}

// IOIn is a `cin >> a >> b[i] >> ...` statement; each Target must evaluate
// to an lvalue (*Var, *ArrAccess, or *Assign).
type IOIn struct {
	Targets []Node
}

// IOOut is a `cout << ...` or `putchar(...)` statement. Stream is either
// "cout" or "putchar".
type IOOut struct {
	Stream string
	Items  []Node
}

func (*Num) node()       {}
func (*Char) node()      {}
func (*Var) node()       {}
func (*VarDecl) node()   {}
func (*ArrDecl) node()   {}
func (*ArrAccess) node() {}
func (*Assign) node()    {}
func (*Bin) node()       {}
func (*Unary) node()     {}
func (*FnDecl) node()    {}
func (*FnCall) node()    {}
func (*Ret) node()       {}
func (*Block) node()     {}
func (*Scope) node()     {}
func (*For) node()       {}
func (*While) node()     {}
func (*If) node()        {}
func (*IOIn) node()      {}
func (*IOOut) node()     {}
