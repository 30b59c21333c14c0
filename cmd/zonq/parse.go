package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"

	"github.com/mcsyzygy/zonquery/selector"
)

var parseCmd = cli.Command{
	Name:    "parse",
	Summary: "print the syntax tree of a selector as JSON",
	Handler: &ParseCmd{},
}

var tokensCmd = cli.Command{
	Name:    "tokens",
	Alias:   []string{"lex"},
	Summary: "print the tokens of a selector once conjoined",
	Handler: &TokensCmd{},
}

var debugCmd = cli.Command{
	Name:    "debug",
	Summary: "print the syntax tree of a selector as nested calls",
	Handler: &DebugCmd{},
}

type ParseCmd struct {
	Config
}

func (c *ParseCmd) Run(args []string) error {
	c.Config = defaultConfig()

	set := flag.NewFlagSet("parse", flag.ContinueOnError)
	set.BoolVar(&c.Compact, "compact", c.Compact, "write the tree on a single line")
	set.IntVar(&c.MaxDepth, "max-depth", c.MaxDepth, "maximum nesting depth")
	set.IntVar(&c.MaxHeight, "max-height", c.MaxHeight, "maximum predicate height")
	set.BoolVar(&c.Trace, "trace", c.Trace, "trace the rules of the parser on stderr")
	set.Func("config", "load settings from a YAML file", c.Config.Load)
	if err := set.Parse(args); err != nil {
		return err
	}
	query, err := readSelector(set.Arg(0))
	if err != nil {
		return err
	}
	sel, err := c.Parser().Parse(query)
	if err != nil {
		return err
	}
	if err := c.Writer(os.Stdout).Write(selector.Project(sel)); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

type TokensCmd struct {
	Raw bool
}

func (c *TokensCmd) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	set.BoolVar(&c.Raw, "raw", false, "print tokens before conjunctions are inserted")
	if err := set.Parse(args); err != nil {
		return err
	}
	query, err := readSelector(set.Arg(0))
	if err != nil {
		return err
	}
	tokens, err := selector.Tokenize(query)
	if err != nil {
		return err
	}
	if !c.Raw {
		if tokens, err = selector.Conjoin(tokens); err != nil {
			return err
		}
	}
	for _, t := range tokens {
		fmt.Fprintf(os.Stdout, "%d:%d\t%s", t.Line, t.Column, t)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

type DebugCmd struct {
	Trace bool
}

func (c *DebugCmd) Run(args []string) error {
	set := cli.NewFlagSet("debug")
	set.BoolVar(&c.Trace, "trace", false, "trace the rules of the parser on stderr")
	if err := set.Parse(args); err != nil {
		return err
	}
	query, err := readSelector(set.Arg(0))
	if err != nil {
		return err
	}
	p := selector.NewParser()
	if c.Trace {
		p.Tracer = selector.TraceStderr()
	}
	sel, err := p.Parse(query)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, selector.Debug(sel))
	return nil
}
