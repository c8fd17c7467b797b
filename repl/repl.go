/*
File    : repl/repl.go

Package repl implements an interactive read-eval-print loop over the
interpreter's lexer/parser/evaluator pipeline. Each line is parsed as one
or more top-level statements and evaluated against a call stack that
persists for the life of the session, so declarations on one line remain
visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cxxi-lang/cxxi/eval"
	"github.com/cxxi-lang/cxxi/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner text and prompt for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New returns a Repl configured with the given banner, version string,
// separator line, and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type a statement and press enter.")
	cyanColor.Fprintln(w, ":help for meta-commands, :quit to exit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

func (r *Repl) printHelp(w io.Writer) {
	cyanColor.Fprintln(w, ":quit, :q      exit the session")
	cyanColor.Fprintln(w, ":help, :h      show this message")
	cyanColor.Fprintln(w, ":reset         discard all declared variables and functions")
}

// Start runs the REPL loop, reading from an internally-owned readline
// instance and writing program output (cout, putchar) and diagnostics to
// w. It returns when the user quits or input is exhausted.
func (r *Repl) Start(in io.Reader, w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: w,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New(w, in)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case ":quit", ":q":
			return nil
		case ":help", ":h":
			r.printHelp(w)
			continue
		case ":reset":
			evaluator.Reset()
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(w, line, evaluator)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, evaluator *eval.Evaluator) {
	stmts, err := parser.ParseLine(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	if _, err := evaluator.EvalTopLevel(stmts); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}
