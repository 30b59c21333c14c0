package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "zonq parses selectors and prints their syntax tree"
	help    = `zonq reads selectors like

  insurance{ plans.status = 'active' }.benefits[1, 2-9]

and prints the tree an interpreter would walk to select nodes of a JSON
document. Use "zonq check" to run golden files and "zonq explore" to edit a
selector interactively.`
)

func main() {
	var (
		set  = cli.NewFlagSet("zonq")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"parse"}, &parseCmd)
	root.Register([]string{"tokens"}, &tokensCmd)
	root.Register([]string{"debug"}, &debugCmd)
	root.Register([]string{"check"}, &checkCmd)
	root.Register([]string{"explore"}, &exploreCmd)

	return root
}
