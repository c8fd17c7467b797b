/*
File    : cmd/interpreter/dump.go

A compact indented AST printer for --dump-ast, covering every node kind the
parser can produce.
*/
package main

import (
	"fmt"
	"strings"

	"github.com/cxxi-lang/cxxi/ast"
)

func dumpProgram(program *ast.Scope) string {
	var b strings.Builder
	dumpNode(&b, program, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, node ast.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *ast.Num:
		fmt.Fprintf(b, "%sNum(%d)\n", pad, n.Value)
	case *ast.Char:
		fmt.Fprintf(b, "%sChar(%q)\n", pad, n.Lexeme)
	case *ast.Var:
		fmt.Fprintf(b, "%sVar(%s)\n", pad, n.Name)
	case *ast.VarDecl:
		fmt.Fprintf(b, "%sVarDecl(%s %s)\n", pad, n.Type, n.Name)
		dumpNode(b, n.Init, depth+1)
	case *ast.ArrDecl:
		fmt.Fprintf(b, "%sArrDecl(%s %s, dims=%d)\n", pad, n.Type, n.Name, len(n.Dims))
		for _, d := range n.Dims {
			dumpNode(b, d, depth+1)
		}
	case *ast.ArrAccess:
		fmt.Fprintf(b, "%sArrAccess(%s)\n", pad, n.Name)
		for _, idx := range n.Indices {
			dumpNode(b, idx, depth+1)
		}
	case *ast.Assign:
		fmt.Fprintf(b, "%sAssign\n", pad)
		dumpNode(b, n.Target, depth+1)
		dumpNode(b, n.Value, depth+1)
	case *ast.Bin:
		fmt.Fprintf(b, "%sBin(%s)\n", pad, n.Op)
		dumpNode(b, n.Left, depth+1)
		dumpNode(b, n.Right, depth+1)
	case *ast.Unary:
		fmt.Fprintf(b, "%sUnary(%s)\n", pad, n.Op)
		dumpNode(b, n.Operand, depth+1)
	case *ast.FnDecl:
		fmt.Fprintf(b, "%sFnDecl(%s %s, params=%d)\n", pad, n.ReturnType, n.Name, len(n.Params))
		dumpNode(b, n.Body, depth+1)
	case *ast.FnCall:
		fmt.Fprintf(b, "%sFnCall(%s)\n", pad, n.Name)
		for _, a := range n.Args {
			dumpNode(b, a, depth+1)
		}
	case *ast.Ret:
		fmt.Fprintf(b, "%sRet\n", pad)
		dumpNode(b, n.Expr, depth+1)
	case *ast.Block:
		fmt.Fprintf(b, "%sBlock\n", pad)
		for _, s := range n.Stmts {
			dumpNode(b, s, depth+1)
		}
	case *ast.Scope:
		fmt.Fprintf(b, "%sScope\n", pad)
		dumpNode(b, n.Block, depth+1)
	case *ast.For:
		fmt.Fprintf(b, "%sFor\n", pad)
		for _, s := range n.Init {
			dumpNode(b, s, depth+1)
		}
		if n.Cond != nil {
			dumpNode(b, n.Cond, depth+1)
		}
		for _, s := range n.Post {
			dumpNode(b, s, depth+1)
		}
		dumpNode(b, n.Body, depth+1)
	case *ast.While:
		fmt.Fprintf(b, "%sWhile\n", pad)
		dumpNode(b, n.Cond, depth+1)
		dumpNode(b, n.Body, depth+1)
	case *ast.If:
		fmt.Fprintf(b, "%sIf\n", pad)
		dumpCondBlock(b, n.Primary, depth+1)
		for _, e := range n.Elifs {
			dumpCondBlock(b, e, depth+1)
		}
		if n.Else != nil {
			fmt.Fprintf(b, "%s  Else\n", pad)
			dumpNode(b, n.Else, depth+2)
		}
	case *ast.IOIn:
		fmt.Fprintf(b, "%sIOIn\n", pad)
		for _, t := range n.Targets {
			dumpNode(b, t, depth+1)
		}
	case *ast.IOOut:
		fmt.Fprintf(b, "%sIOOut(%s)\n", pad, n.Stream)
		for _, i := range n.Items {
			dumpNode(b, i, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s<nil>\n", pad)
	}
}

func dumpCondBlock(b *strings.Builder, cb ast.CondBlock, depth int) {
	pad := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%sCondBlock\n", pad)
	dumpNode(b, cb.Cond, depth+1)
	dumpNode(b, cb.Block, depth+1)
}
