/*
File    : callstack/value.go

Package callstack implements the evaluator's runtime value representation
and its deque of lexical frames. A Value is a small tagged union: a 32-bit
integer (also used for booleans and character byte codes), a function
descriptor pointing into the live AST, or a shared array handle.
*/
package callstack

import (
	"github.com/cxxi-lang/cxxi/arrayval"
	"github.com/cxxi-lang/cxxi/ast"
)

// Kind discriminates the three runtime value shapes.
type Kind int

const (
	KindInt Kind = iota
	KindFunc
	KindArray
)

// Value is the interpreter's runtime value. Exactly one of Int/Func/Arr is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Int  int32
	Func *ast.FnDecl
	Arr  *arrayval.Array
}

// IntValue wraps a plain integer (or boolean: 0/nonzero) result.
func IntValue(v int32) Value { return Value{Kind: KindInt, Int: v} }

// FuncValue wraps a non-owning reference to a function declaration living in
// the AST. The AST must outlive the evaluator for this reference to remain
// valid, which holds for the program's entire run.
func FuncValue(decl *ast.FnDecl) Value { return Value{Kind: KindFunc, Func: decl} }

// ArrayValue wraps a handle to array storage. Go's garbage collector gives
// this reference-counting-like lifetime for free; the language surface
// never creates a second handle to the same array, so sharing is
// effectively unique per binding in well-formed programs.
func ArrayValue(a *arrayval.Array) Value { return Value{Kind: KindArray, Arr: a} }
