/*
File    : eval/evaluator.go

Package eval walks the AST produced by the parser: arithmetic, branching,
looping, function calls, array allocation/indexing, and the cin/cout/
putchar I/O primitives. Evaluation is a plain type switch over ast.Node
rather than a visitor dispatch, matching the tagged-union shape of the ast
package.
*/
package eval

import (
	"bufio"
	"io"

	"github.com/cxxi-lang/cxxi/arrayval"
	"github.com/cxxi-lang/cxxi/ast"
	"github.com/cxxi-lang/cxxi/callstack"
	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/lexer"
)

// Evaluator holds the mutable state needed to run a program: the call
// stack of lexical frames and the I/O streams backing cin/cout/putchar.
type Evaluator struct {
	cs  *callstack.CallStack
	out io.Writer
	in  *bufio.Reader
}

// New returns an Evaluator reading from in and writing to out.
func New(out io.Writer, in io.Reader) *Evaluator {
	return &Evaluator{
		cs:  callstack.New(),
		out: out,
		in:  bufio.NewReader(in),
	}
}

// Run evaluates a parsed program's top-level scope. The scope pushes one
// frame, declares every top-level function and variable, and (via the
// driver-appended `main();` call) invokes main.
func (e *Evaluator) Run(program *ast.Scope) error {
	_, _, err := e.evalScope(program)
	return err
}

// EvalTopLevel evaluates a sequence of top-level statements against the
// evaluator's own persistent call stack rather than pushing a throwaway
// frame, so declarations made on one REPL line remain visible on the next.
// The first call lazily pushes the one persistent frame every later call
// reuses.
func (e *Evaluator) EvalTopLevel(stmts []ast.Node) (int32, error) {
	if e.cs.TopLevel() == 0 {
		e.cs.Push("repl")
	}
	var last int32
	for _, s := range stmts {
		v, returning, err := e.evalStmt(s)
		if err != nil {
			return 0, err
		}
		last = v
		if returning {
			return last, nil
		}
	}
	return last, nil
}

// Reset discards all accumulated REPL state, starting from an empty call
// stack again.
func (e *Evaluator) Reset() {
	e.cs = callstack.New()
}

// evalStmt evaluates any node that can appear as a statement, returning its
// value, whether it represents an in-flight return, and any error. Plain
// expression statements (a bare call or assignment) report isReturning as
// false.
func (e *Evaluator) evalStmt(node ast.Node) (int32, bool, error) {
	switch n := node.(type) {
	case *ast.Block:
		return e.evalBlock(n)
	case *ast.Scope:
		return e.evalScope(n)
	case *ast.For:
		return e.evalFor(n)
	case *ast.While:
		return e.evalWhile(n)
	case *ast.If:
		return e.evalIf(n)
	case *ast.Ret:
		v, err := e.evalValue(n.Expr)
		return v, true, err
	case *ast.VarDecl:
		return 0, false, e.evalVarDecl(n)
	case *ast.ArrDecl:
		return 0, false, e.evalArrDecl(n)
	case *ast.FnDecl:
		e.cs.Register(n.Name, callstack.FuncValue(n))
		return 0, false, nil
	case *ast.IOIn:
		return 0, false, e.evalIOIn(n)
	case *ast.IOOut:
		v, err := e.evalIOOut(n)
		return v, false, err
	default:
		v, err := e.evalValue(node)
		return v, false, err
	}
}

// evalBlock runs each child statement in order, short-circuiting and
// propagating the first in-flight return it encounters.
func (e *Evaluator) evalBlock(block *ast.Block) (int32, bool, error) {
	for _, child := range block.Stmts {
		v, returning, err := e.evalStmt(child)
		if err != nil {
			return 0, false, err
		}
		if returning {
			return v, true, nil
		}
	}
	return 0, false, nil
}

// evalScope pushes a fresh frame, runs the wrapped block, and pops the
// frame on every exit path including an in-flight return or an error.
func (e *Evaluator) evalScope(s *ast.Scope) (int32, bool, error) {
	e.cs.Push("scope")
	defer e.cs.Pop()
	return e.evalBlock(s.Block)
}

func (e *Evaluator) evalVarDecl(n *ast.VarDecl) error {
	var init int32
	if n.Init != nil {
		v, err := e.evalValue(n.Init)
		if err != nil {
			return err
		}
		init = v
	}
	e.cs.Register(n.Name, callstack.IntValue(init))
	return nil
}

// evalArrDecl evaluates dimension expressions in reverse order (last
// dimension first), matching the original construction order, before
// allocating the backing storage and binding it in the current frame.
func (e *Evaluator) evalArrDecl(n *ast.ArrDecl) error {
	dims := make([]int32, len(n.Dims))
	for i := len(n.Dims) - 1; i >= 0; i-- {
		v, err := e.evalValue(n.Dims[i])
		if err != nil {
			return err
		}
		dims[i] = v
	}
	arr, err := arrayval.New(dims)
	if err != nil {
		return err
	}
	e.cs.Register(n.Name, callstack.ArrayValue(arr))
	return nil
}

// evalFor pushes one frame for the loop's whole lifetime (init, condition,
// body, and post all run inside it), releasing it via defer so the frame
// is freed on every exit path, including an early return from the body.
func (e *Evaluator) evalFor(n *ast.For) (int32, bool, error) {
	e.cs.Push("for")
	defer e.cs.Pop()

	for _, init := range n.Init {
		if _, _, err := e.evalStmt(init); err != nil {
			return 0, false, err
		}
	}

	for {
		if n.Cond != nil {
			cond, err := e.evalValue(n.Cond)
			if err != nil {
				return 0, false, err
			}
			if cond == 0 {
				return 0, false, nil
			}
		}

		v, returning, err := e.evalBlock(n.Body)
		if err != nil {
			return 0, false, err
		}
		if returning {
			return v, true, nil
		}

		for _, post := range n.Post {
			if _, _, err := e.evalStmt(post); err != nil {
				return 0, false, err
			}
		}
	}
}

// evalWhile mirrors evalFor's frame-release discipline: one frame for the
// loop's whole lifetime, popped via defer on every exit.
func (e *Evaluator) evalWhile(n *ast.While) (int32, bool, error) {
	e.cs.Push("while")
	defer e.cs.Pop()

	for {
		cond, err := e.evalValue(n.Cond)
		if err != nil {
			return 0, false, err
		}
		if cond == 0 {
			return 0, false, nil
		}

		v, returning, err := e.evalBlock(n.Body)
		if err != nil {
			return 0, false, err
		}
		if returning {
			return v, true, nil
		}
	}
}

// evalIf evaluates the primary condition, then each else-if arm in order,
// falling through to the trailing else block if none match. Each taken
// branch gets its own frame, popped via defer.
func (e *Evaluator) evalIf(n *ast.If) (int32, bool, error) {
	arms := append([]ast.CondBlock{n.Primary}, n.Elifs...)
	for _, arm := range arms {
		cond, err := e.evalValue(arm.Cond)
		if err != nil {
			return 0, false, err
		}
		if cond != 0 {
			e.cs.Push("if")
			defer e.cs.Pop()
			return e.evalBlock(arm.Block)
		}
	}
	if n.Else != nil {
		e.cs.Push("else")
		defer e.cs.Pop()
		return e.evalBlock(n.Else)
	}
	return 0, false, nil
}

// evalValue evaluates node for its scalar int32 result. Identifiers and
// array accesses go through evalLvalue and read the resulting Place, so
// the same resolution logic backs both read and write positions.
func (e *Evaluator) evalValue(node ast.Node) (int32, error) {
	switch n := node.(type) {
	case *ast.Num:
		return n.Value, nil
	case *ast.Char:
		return charValue(n.Lexeme), nil
	case *ast.Var:
		place, err := e.evalLvalue(n)
		if err != nil {
			return 0, err
		}
		return place.Get()
	case *ast.ArrAccess:
		place, err := e.evalLvalue(n)
		if err != nil {
			return 0, err
		}
		return place.Get()
	case *ast.Assign:
		return e.evalAssign(n)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Bin:
		return e.evalBin(n)
	case *ast.FnCall:
		return e.evalFnCall(n)
	case *ast.IOOut:
		// Only putchar can appear here — the parser never builds a cout
		// node in expression position (parser/expr.go's factor only routes
		// the "putchar" IO word into a value-producing node).
		return e.evalIOOut(n)
	default:
		return 0, interperr.New(interperr.UnsupportedSyntax, "cannot evaluate node as a value")
	}
}

// evalLvalue resolves node to a Place without reading or writing through
// it, for use by Assign, cin targets, and plain value reads.
func (e *Evaluator) evalLvalue(node ast.Node) (Place, error) {
	switch n := node.(type) {
	case *ast.Var:
		return &varPlace{ev: e, name: n.Name}, nil
	case *ast.ArrAccess:
		return e.evalArrPlace(n)
	case *ast.Assign:
		// A cin target may itself be an assignment (`cin >> a = 5`): the
		// assignment's side effect runs first, then cin overwrites the
		// same place with the scanned value.
		if _, err := e.evalAssign(n); err != nil {
			return nil, err
		}
		return e.evalLvalue(n.Target)
	default:
		return nil, interperr.New(interperr.TypeMismatch, "expression is not assignable")
	}
}

// evalArrPlace descends one array level per index expression, evaluating
// each index only as it is needed, and returns the leaf-int Place as soon
// as a leaf level is reached — any further indices in n.Indices are never
// evaluated. If the index list is exhausted while still at a non-leaf
// level, it raises TypeMismatch for over-shallow access.
func (e *Evaluator) evalArrPlace(n *ast.ArrAccess) (Place, error) {
	v, ok := e.cs.Lookup(n.Name)
	if !ok {
		return nil, interperr.New(interperr.UndefinedVariable, "")
	}
	if v.Kind != callstack.KindArray {
		return nil, interperr.New(interperr.TypeMismatch, "'%s' is not an array", n.Name)
	}

	cur := v.Arr
	for _, idxExpr := range n.Indices {
		idx, err := e.evalValue(idxExpr)
		if err != nil {
			return nil, err
		}
		if idx < 0 || int(idx) >= cur.Len() {
			return nil, interperr.New(interperr.TypeMismatch, "array index %d out of range", idx)
		}
		if cur.IsLeaf() {
			return &arrPlace{slice: cur.Ints, idx: int(idx)}, nil
		}
		cur = cur.Elems[idx]
	}

	return nil, interperr.New(interperr.TypeMismatch, "array access is missing trailing index")
}

func (e *Evaluator) evalAssign(n *ast.Assign) (int32, error) {
	val, err := e.evalValue(n.Value)
	if err != nil {
		return 0, err
	}
	place, err := e.evalLvalue(n.Target)
	if err != nil {
		return 0, err
	}
	if err := place.Set(val); err != nil {
		return 0, err
	}
	return val, nil
}

func (e *Evaluator) evalUnary(n *ast.Unary) (int32, error) {
	v, err := e.evalValue(n.Operand)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case lexer.MINUS:
		return -v, nil
	case lexer.PLUS:
		return v, nil
	case lexer.NEGATE:
		if v == 0 {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, interperr.New(interperr.UnsupportedSyntax, "unsupported unary operator")
	}
}

// evalBin evaluates both operands unconditionally, including across &&
// and ||, matching the language's non-short-circuit boolean semantics.
func (e *Evaluator) evalBin(n *ast.Bin) (int32, error) {
	l, err := e.evalValue(n.Left)
	if err != nil {
		return 0, err
	}
	r, err := e.evalValue(n.Right)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case lexer.PLUS:
		return l + r, nil
	case lexer.MINUS:
		return l - r, nil
	case lexer.MUL:
		return l * r, nil
	case lexer.DIV:
		if r == 0 {
			return 0, interperr.New(interperr.InvalidDataType, "division by zero")
		}
		return l / r, nil
	case lexer.MOD:
		if r == 0 {
			return 0, interperr.New(interperr.InvalidDataType, "modulo by zero")
		}
		return l % r, nil
	case lexer.CMP_GTE:
		return boolInt(l >= r), nil
	case lexer.CMP_GRT:
		return boolInt(l > r), nil
	case lexer.CMP_LTE:
		return boolInt(l <= r), nil
	case lexer.CMP_LES:
		return boolInt(l < r), nil
	case lexer.CMP_EQU:
		return boolInt(l == r), nil
	case lexer.CMP_NEQ:
		return boolInt(l != r), nil
	case lexer.AND:
		return boolInt(l != 0 && r != 0), nil
	case lexer.OR:
		return boolInt(l != 0 || r != 0), nil
	case lexer.BW_XOR:
		return l ^ r, nil
	case lexer.BW_SHIFTL:
		return l << uint32(r), nil
	case lexer.BW_SHIFTR:
		return l >> uint32(r), nil
	default:
		return 0, interperr.New(interperr.UnsupportedSyntax, "unsupported binary operator")
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// evalFnCall evaluates arguments left-to-right in the caller's current
// scope before pushing a new frame, then registers only as many formal
// parameters as arguments were supplied. Arity is not checked.
func (e *Evaluator) evalFnCall(n *ast.FnCall) (int32, error) {
	fv, ok := e.cs.Lookup(n.Name)
	if !ok {
		return 0, interperr.New(interperr.UndefinedVariable, "function '%s' is not declared", n.Name)
	}
	if fv.Kind != callstack.KindFunc {
		return 0, interperr.New(interperr.TypeMismatch, "'%s' is not a function", n.Name)
	}

	args := make([]int32, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalValue(a)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	e.cs.Push(n.Name)
	defer e.cs.Pop()

	decl := fv.Func
	count := len(args)
	if len(decl.Params) < count {
		count = len(decl.Params)
	}
	for i := 0; i < count; i++ {
		e.cs.Register(decl.Params[i].Name, callstack.IntValue(args[i]))
	}

	v, _, err := e.evalBlock(decl.Body)
	return v, err
}

// charValue interprets a character-literal lexeme: the two-character \n
// escape, or any other single raw byte.
func charValue(lexeme string) int32 {
	if lexeme == "\\n" {
		return int32('\n')
	}
	if len(lexeme) == 0 {
		return 0
	}
	return int32(lexeme[0])
}
