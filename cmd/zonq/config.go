package main

import (
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mcsyzygy/zonquery/json"
	"github.com/mcsyzygy/zonquery/selector"
)

// Config holds the settings shared by the commands. They can be given in a
// YAML file with -config; flags that come after it take precedence.
type Config struct {
	MaxDepth  int    `yaml:"max-depth"`
	MaxHeight int    `yaml:"max-height"`
	Trace     bool   `yaml:"trace"`
	Compact   bool   `yaml:"compact"`
	Indent    string `yaml:"indent"`
}

func defaultConfig() Config {
	return Config{
		MaxDepth:  selector.DefaultMaxDepth,
		MaxHeight: selector.DefaultMaxHeight,
		Indent:    "  ",
	}
}

func (c *Config) Load(file string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()
	return yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(c)
}

func (c Config) Parser() *selector.Parser {
	p := selector.NewParser()
	p.MaxDepth = c.MaxDepth
	p.MaxHeight = c.MaxHeight
	if c.Trace {
		p.Tracer = selector.TraceStderr()
	}
	return p
}

func (c Config) Writer(w io.Writer) *json.Writer {
	ws := json.NewWriter(w)
	ws.Compact = c.Compact
	if c.Indent != "" {
		ws.Indent = c.Indent
	}
	return ws
}

// readSelector returns the selector given on the command line. "-" reads it
// from stdin.
func readSelector(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
