/*
File    : config/config.go

Package config resolves the two driver knobs the language specification
leaves implementation-defined: how many leading source lines to discard
verbatim, and the REPL prompt string. Values come from an optional YAML
file, overridable by command-line flags; absence of a config file is not
an error.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSkipLines matches the original source's hardcoded three-line
// skip (an #include block and a using-namespace line).
const DefaultSkipLines = 3

// DefaultReplPrompt is used when neither a config file nor a flag sets one.
const DefaultReplPrompt = "cxx> "

// Config holds the resolved driver knobs.
type Config struct {
	SkipLines  int    `yaml:"skip_lines"`
	ReplPrompt string `yaml:"repl_prompt"`
}

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{SkipLines: DefaultSkipLines, ReplPrompt: DefaultReplPrompt}
}

// Load reads and merges a YAML config file at path over the built-in
// defaults. A missing file is not an error; Load simply returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
