/*
File    : eval/io.go

cin, cout, and putchar are the language's only I/O surface. cin reads
whitespace-delimited integers from the evaluator's input stream directly
into lvalues; cout and putchar write to the evaluator's output stream.
*/
package eval

import (
	"fmt"

	"github.com/cxxi-lang/cxxi/ast"
)

// evalIOIn reads one whitespace-delimited integer per target and stores it
// through that target's Place. A read failure of any kind — EOF, a
// non-numeric token, or anything else — leaves the target unchanged and is
// not reported as an error.
func (e *Evaluator) evalIOIn(n *ast.IOIn) error {
	for _, target := range n.Targets {
		place, err := e.evalLvalue(target)
		if err != nil {
			return err
		}
		var v int32
		if _, scanErr := fmt.Fscan(e.in, &v); scanErr != nil {
			continue
		}
		if err := place.Set(v); err != nil {
			return err
		}
	}
	return nil
}

// evalIOOut writes each item in sequence and reports the node's value.
// putchar sums the integer values of all items, emits that sum as a single
// byte, and returns the sum so a putchar call can appear inside an
// expression as well as a bare statement. cout writes integers in decimal
// and character items verbatim (a \n escape or endl is written as a
// newline), and has no meaningful value (it never appears in expression
// position).
func (e *Evaluator) evalIOOut(n *ast.IOOut) (int32, error) {
	if n.Stream == "putchar" {
		var sum int32
		for _, item := range n.Items {
			v, err := e.evalValue(item)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		if _, err := e.out.Write([]byte{byte(sum)}); err != nil {
			return 0, err
		}
		return sum, nil
	}

	for _, item := range n.Items {
		if ch, ok := item.(*ast.Char); ok {
			if _, err := e.writeCharItem(ch); err != nil {
				return 0, err
			}
			continue
		}
		v, err := e.evalValue(item)
		if err != nil {
			return 0, err
		}
		if _, err := fmt.Fprintf(e.out, "%d", v); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

// writeCharItem handles a cout chain element that is a character literal,
// a \n escape, or the endl identifier, writing the corresponding raw bytes
// rather than a decimal rendering of its code point.
func (e *Evaluator) writeCharItem(ch *ast.Char) (int, error) {
	switch ch.Lexeme {
	case "\\n", "endl":
		return fmt.Fprint(e.out, "\n")
	default:
		return fmt.Fprint(e.out, ch.Lexeme)
	}
}
