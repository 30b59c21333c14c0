package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/midbel/cli"

	"github.com/mcsyzygy/zonquery/fixture"
)

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"test"},
	Summary: "run golden files of selectors against the parser",
	Handler: &CheckCmd{},
}

var (
	passFmt  = color.New(color.FgGreen).SprintFunc()
	failFmt  = color.New(color.FgRed, color.Bold).SprintFunc()
	fileFmt  = color.New(color.FgBlue, color.Bold).SprintfFunc()
	wantFmt  = color.New(color.FgGreen).SprintFunc()
	gotFmt   = color.New(color.FgRed).SprintFunc()
	countFmt = color.New(color.Faint).SprintfFunc()
)

type CheckCmd struct {
	FailFast bool
	Quiet    bool
	Config
}

func (c *CheckCmd) Run(args []string) error {
	c.Config = defaultConfig()

	set := flag.NewFlagSet("check", flag.ContinueOnError)
	set.BoolVar(&c.FailFast, "fail-fast", false, "stop at the first failing case")
	set.BoolVar(&c.Quiet, "quiet", false, "only print failing cases")
	set.IntVar(&c.MaxDepth, "max-depth", c.MaxDepth, "maximum nesting depth")
	set.IntVar(&c.MaxHeight, "max-height", c.MaxHeight, "maximum predicate height")
	set.Func("config", "load settings from a YAML file", c.Config.Load)
	if err := set.Parse(args); err != nil {
		return err
	}
	var (
		parser = c.Parser()
		pass   int
		fail   int
	)
	for _, file := range set.Args() {
		cases, err := fixture.Load(file)
		if err != nil {
			return err
		}
		if !c.Quiet {
			fmt.Fprintln(os.Stdout, fileFmt("%s", file))
		}
		for _, cs := range cases {
			err := cs.Run(parser)
			if err == nil {
				pass++
				if !c.Quiet {
					fmt.Fprintf(os.Stdout, "%s %s", passFmt("PASS"), cs.Name)
					fmt.Fprintln(os.Stdout)
				}
				continue
			}
			fail++
			fmt.Fprintf(os.Stdout, "%s %s", failFmt("FAIL"), cs.Name)
			fmt.Fprintln(os.Stdout)

			var mis fixture.MismatchError
			if errors.As(err, &mis) {
				fmt.Fprintln(os.Stdout, "  want:", wantFmt(mis.Want))
				fmt.Fprintln(os.Stdout, "  got: ", gotFmt(mis.Got))
			} else {
				fmt.Fprintln(os.Stdout, " ", err)
			}
			if c.FailFast {
				return errFail
			}
		}
	}
	fmt.Fprintln(os.Stdout, countFmt("%d passed, %d failed", pass, fail))
	if fail > 0 {
		return errFail
	}
	return nil
}
