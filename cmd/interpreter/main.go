/*
File    : cmd/interpreter/main.go

The interpreter binary wires a Cobra command tree: bare invocation (with an
optional source path) lexes, parses, and evaluates a source file exactly as
the original driver does; `repl` starts an interactive session; `tokens`
exposes the lexer standalone for scripting and debugging.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var redColor = color.New(color.FgRed)

var (
	configPath string
	skipLines  int
	dumpTokens bool
	dumpAST    bool
	noTiming   bool
)

const defaultSourcePath = "source-code.cpp"

var rootCmd = &cobra.Command{
	Use:   "interpreter [source-path]",
	Short: "Run a program written in the tiny C-subset language",
	Long: `interpreter lexes, parses, and evaluates a source file written in the
interpreter's small C-family language: int/char/bool scalars and arrays,
functions, for/while/if, and the cin/cout/putchar I/O primitives.

With no arguments it reads "source-code.cpp" from the working directory,
matching the original driver's behavior.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSource,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".interpreter.yaml", "path to an optional YAML config file")
	rootCmd.Flags().IntVar(&skipLines, "skip-lines", -1, "number of leading source lines to discard verbatim (default from config, else 3)")
	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream to stderr before parsing")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "pretty-print the parsed AST to stderr before evaluation")
	rootCmd.Flags().BoolVar(&noTiming, "no-timing", false, "suppress the elapsed-time diagnostic on stderr")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(tokensCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func sourcePathFrom(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return defaultSourcePath
}

func fail(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
