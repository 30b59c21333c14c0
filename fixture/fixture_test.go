package fixture

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcsyzygy/zonquery/selector"
)

const sample = `
- name: path
  selector: 'a.b'
  ast: '{"selector":[{"node":"a"},{"node":"b"}]}'
- name: pretty
  selector: 'a{x}'
  ast: '{ "selector": [ {"node": "a", "predicate": {"x": []}} ] }'
- name: nesting
  selector: 'a[1]{b}'
  error: nesting
`

func TestDecode(t *testing.T) {
	cases, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, "a.b", cases[0].Selector)
	assert.Equal(t, "nesting", cases[2].Error)

	p := selector.NewParser()
	for _, c := range cases {
		assert.NoError(t, c.Run(p), c.Name)
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(strings.NewReader(`
- name: typo
  selector: 'a'
  error: nestng
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind)
	assert.Contains(t, err.Error(), "nestng")
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`
- name: typo
  selecter: 'a'
`))
	assert.Error(t, err)
}

func TestRunMismatch(t *testing.T) {
	tests := []Case{
		{
			Name:     "wrong tree",
			Selector: "a.b",
			AST:      `{"selector":[{"node":"b"},{"node":"a"}]}`,
		},
		{
			Name:     "members out of order",
			Selector: "a[1]",
			AST:      `{"selector":[{"ranges":[{"start":1,"end":1}],"node":"a"}]}`,
		},
		{
			Name:     "unexpected error",
			Selector: "a{b",
			AST:      `{"selector":[]}`,
		},
		{
			Name:     "missing error",
			Selector: "a.b",
			Error:    "syntax",
		},
		{
			Name:     "wrong error",
			Selector: "a[1]{b}",
			Error:    "lex",
		},
	}
	p := selector.NewParser()
	for _, c := range tests {
		err := c.Run(p)
		require.Error(t, err, c.Name)

		var mis MismatchError
		assert.True(t, errors.As(err, &mis), c.Name)
		assert.ErrorIs(t, err, ErrMismatch, c.Name)
		assert.Equal(t, c.Name, mis.Name)
	}
}

func TestEqual(t *testing.T) {
	ok, err := Equal(`{"a": [1, "b"]}`, `{"a":[1,"b"]}`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Equal(`{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`)
	require.NoError(t, err)
	assert.False(t, ok)
}
