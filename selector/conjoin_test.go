package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conjoinString(t *testing.T, query string) ([]Token, error) {
	t.Helper()
	tokens, err := Tokenize(query)
	require.NoError(t, err)
	return Conjoin(tokens)
}

func TestConjoin(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "adjacent operands",
			query: "a b c",
			want:  "a AND b AND c",
		},
		{
			name:  "explicit operator",
			query: "a OR b",
			want:  "a OR b",
		},
		{
			name:  "unary after operand",
			query: "3 !a",
			want:  "3 AND ! a",
		},
		{
			name:  "unary after explicit and",
			query: "3 AND NOT a",
			want:  "3 AND NOT a",
		},
		{
			name:  "stacked unary",
			query: "3 !!a",
			want:  "3 AND ! ! a",
		},
		{
			name:  "groups",
			query: "(a)(b) c",
			want:  "( a ) AND ( b ) AND c",
		},
		{
			name:  "phrases",
			query: `"a b" 'c'`,
			want:  "a b AND c",
		},
		{
			name:  "zero argument function",
			query: "f:len x",
			want:  "f:len AND x",
		},
		{
			name:  "function call",
			query: "f:max(a, b) c",
			want:  "f:max ( a , b ) AND c",
		},
		{
			name:  "comma outside function",
			query: "a, b",
			want:  "a AND b",
		},
		{
			name:  "ranges",
			query: "a[1, 2-9 15]",
			want:  "a [ 1 2-9 15 ]",
		},
		{
			name:  "path",
			query: "this.plans{a} = b",
			want:  "this . plans { a } = b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := conjoinString(t, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Join(words(tokens), " "))
		})
	}
}

func TestConjoinArity(t *testing.T) {
	tests := []struct {
		query string
		arity int
	}{
		{query: "f:f()", arity: 0},
		{query: "f:f(   )", arity: 0},
		{query: "f:f ", arity: 0},
		{query: "f:f", arity: -1},
		{query: "f:f(a)", arity: 1},
		{query: "f:f(a b c)", arity: 1},
		{query: "f:f(a, b)", arity: 2},
		{query: "f:f(a, f:g(b, c, d), e)", arity: 3},
		{query: "f:f(0, 7, 9, x = 1, 'y')", arity: 5},
		{query: "f:f  (a b)", arity: 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			tokens, err := conjoinString(t, tt.query)
			require.NoError(t, err)
			require.NotEmpty(t, tokens)
			assert.Equal(t, Func, tokens[0].Kind)
			assert.Equal(t, tt.arity, tokens[0].Arity)
		})
	}
}

func TestConjoinNestedArity(t *testing.T) {
	tokens, err := conjoinString(t, "f:f(a, f:g(b, c, d), e)")
	require.NoError(t, err)

	var arities []int
	for _, tok := range tokens {
		if tok.isFunction() {
			arities = append(arities, tok.Arity)
		}
	}
	assert.Equal(t, []int{3, 3}, arities)
}

func TestConjoinError(t *testing.T) {
	tests := []struct {
		query string
		kind  error
	}{
		{query: "(b]", kind: ErrNesting},
		{query: "[b)", kind: ErrNesting},
		{query: "f:f(a, [b)]", kind: ErrNesting},
		{query: "b)", kind: ErrSyntax},
		{query: "b]", kind: ErrSyntax},
		{query: "(a))", kind: ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := conjoinString(t, tt.query)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestConjoinDepth(t *testing.T) {
	tokens, err := Tokenize("(((a)))")
	require.NoError(t, err)

	p := Parser{MaxDepth: 2, Tracer: discardTracer{}}
	_, err = p.conjoin(tokens)
	assert.ErrorIs(t, err, ErrNesting)

	p.MaxDepth = 3
	_, err = p.conjoin(tokens)
	assert.NoError(t, err)
}
