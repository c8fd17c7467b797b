/*
File    : cmd/interpreter/repl_cmd.go
*/
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cxxi-lang/cxxi/config"
	"github.com/cxxi-lang/cxxi/repl"
)

var banner = `
   ___ _  ___  __ ___
  / __\ \/ \ \/ // __|
 | (__ >  < >  <| (__
  \___/_/\_\_/\_\\___|
`

var version = "0.1.0"
var separator = strings.Repeat("-", 60)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fail("reading config: %w", err)
		}
		session := repl.New(banner, version, separator, cfg.ReplPrompt)
		return session.Start(os.Stdin, os.Stdout)
	},
}
