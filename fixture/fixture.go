// Package fixture runs golden selector files: YAML lists of selectors
// together with the projection (or the kind of error) their parse must
// produce.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/midbel/distance"

	"github.com/mcsyzygy/zonquery/json"
	"github.com/mcsyzygy/zonquery/selector"
)

var (
	ErrMismatch = errors.New("mismatch")
	ErrKind     = errors.New("unknown error kind")
)

var kinds = map[string]error{
	"lex":     selector.ErrLex,
	"nesting": selector.ErrNesting,
	"syntax":  selector.ErrSyntax,
}

type Case struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	AST      string `yaml:"ast,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

func Load(file string) ([]Case, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Decode(r)
}

func Decode(r io.Reader) ([]Case, error) {
	var (
		list []Case
		dec  = yaml.NewDecoder(r, yaml.DisallowUnknownField())
	)
	if err := dec.Decode(&list); err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Error == "" {
			continue
		}
		if kinds[normalize(list[i].Error)] == nil {
			return nil, fmt.Errorf("%s: %w", list[i].Name, unknownKind(list[i].Error))
		}
	}
	return list, nil
}

// MismatchError reports a selector whose outcome differs from the one
// recorded in the fixture.
type MismatchError struct {
	Name string
	Want string
	Got  string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", e.Name, e.Want, e.Got)
}

func (e MismatchError) Unwrap() error {
	return ErrMismatch
}

// Run parses the selector of the case with p and compares the outcome with
// the expected one. Projections are compared structurally: key order
// matters, blanks do not.
func (c Case) Run(p *selector.Parser) error {
	sel, err := p.Parse(c.Selector)
	if c.Error != "" {
		kind := kinds[normalize(c.Error)]
		if kind == nil {
			return fmt.Errorf("%s: %w", c.Name, unknownKind(c.Error))
		}
		if err == nil {
			return MismatchError{
				Name: c.Name,
				Want: c.Error + " error",
				Got:  compact(sel),
			}
		}
		if !errors.Is(err, kind) {
			return MismatchError{
				Name: c.Name,
				Want: c.Error + " error",
				Got:  err.Error(),
			}
		}
		return nil
	}
	if err != nil {
		return MismatchError{
			Name: c.Name,
			Want: c.AST,
			Got:  err.Error(),
		}
	}
	got := compact(sel)
	ok, err := Equal(c.AST, got)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	if !ok {
		return MismatchError{
			Name: c.Name,
			Want: c.AST,
			Got:  got,
		}
	}
	return nil
}

// Equal reports whether two JSON texts hold the same tree, members of
// objects being compared in order.
func Equal(want, got string) (bool, error) {
	w, err := decode(want)
	if err != nil {
		return false, err
	}
	g, err := decode(got)
	if err != nil {
		return false, err
	}
	return reflect.DeepEqual(w, g), nil
}

func decode(str string) (any, error) {
	var v any
	err := yaml.UnmarshalWithOptions([]byte(str), &v, yaml.UseOrderedMap())
	return v, err
}

func compact(sel *selector.Selector) string {
	var (
		buf bytes.Buffer
		ws  = json.NewWriter(&buf)
	)
	ws.Compact = true
	if err := ws.Write(selector.Project(sel)); err != nil {
		return err.Error()
	}
	return buf.String()
}

func normalize(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

func unknownKind(kind string) error {
	kind = normalize(kind)
	others := distance.Levenshtein(kind, []string{"lex", "nesting", "syntax"})
	if len(others) > 0 {
		return fmt.Errorf("%w %q (did you mean %s?)", ErrKind, kind, strings.Join(others, ", "))
	}
	return fmt.Errorf("%w %q", ErrKind, kind)
}
