package main

import (
	"bytes"
	"flag"
	"fmt"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"

	"github.com/mcsyzygy/zonquery/selector"
)

var exploreCmd = cli.Command{
	Name:    "explore",
	Summary: "edit a selector and watch its syntax tree change",
	Handler: &ExploreCmd{},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	validStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type ExploreCmd struct {
	Config
}

func (c *ExploreCmd) Run(args []string) error {
	c.Config = defaultConfig()

	set := flag.NewFlagSet("explore", flag.ContinueOnError)
	set.IntVar(&c.MaxDepth, "max-depth", c.MaxDepth, "maximum nesting depth")
	set.IntVar(&c.MaxHeight, "max-height", c.MaxHeight, "maximum predicate height")
	set.Func("config", "load settings from a YAML file", c.Config.Load)
	if err := set.Parse(args); err != nil {
		return err
	}
	// traces would be written over the screen
	c.Trace = false

	m := newExplorer(c.Config, set.Arg(0))
	_, err := tea.NewProgram(m).Run()
	return err
}

type explorer struct {
	input  textinput.Model
	tree   viewport.Model
	config Config
	parser *selector.Parser

	query string
	steps int
	err   error
}

func newExplorer(cfg Config, query string) explorer {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "insurance{ plans.status = 'active' }.benefits[1, 2-9]"
	in.SetValue(query)
	in.Focus()

	e := explorer{
		input:  in,
		tree:   viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		config: cfg,
		parser: cfg.Parser(),
	}
	e.refresh()
	return e
}

func (e explorer) Init() tea.Cmd {
	return textinput.Blink
}

func (e explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.input.SetWidth(msg.Width - 4)
		e.tree.SetWidth(msg.Width)
		e.tree.SetHeight(max(msg.Height-5, 1))
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return e, tea.Quit
		case "pgup", "pgdown":
			var cmd tea.Cmd
			e.tree, cmd = e.tree.Update(msg)
			return e, cmd
		}
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if e.input.Value() != e.query {
		e.refresh()
	}
	return e, cmd
}

func (e explorer) View() tea.View {
	var status string
	switch {
	case e.query == "":
		status = helpStyle.Render("type a selector - esc to quit")
	case e.err != nil:
		status = errorStyle.Render(e.err.Error())
	default:
		status = validStyle.Render(fmt.Sprintf("valid selector (%d steps)", e.steps)) + helpStyle.Render(" - esc to quit")
	}
	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("zonq explore"),
		e.input.View(),
		status,
		"",
		e.tree.View(),
	)
	v := tea.NewView(screen)
	v.AltScreen = true
	return v
}

// refresh parses the current input. The last valid tree stays on screen
// while the selector is being edited.
func (e *explorer) refresh() {
	e.query = e.input.Value()
	e.err = nil
	if e.query == "" {
		e.tree.SetContent("")
		return
	}
	sel, err := e.parser.Parse(e.query)
	if err != nil {
		e.err = err
		return
	}
	var buf bytes.Buffer
	if err := e.config.Writer(&buf).Write(selector.Project(sel)); err != nil {
		e.err = err
		return
	}
	e.steps = len(sel.Steps)
	e.tree.SetContent(buf.String())
}
