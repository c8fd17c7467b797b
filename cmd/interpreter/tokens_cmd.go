/*
File    : cmd/interpreter/tokens_cmd.go
*/
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <source-path>",
	Short: "Print the token stream for a source file and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fail("reading source %q: %w", args[0], err)
		}
		return dumpTokenStream(os.Stdout, string(raw))
	},
}
