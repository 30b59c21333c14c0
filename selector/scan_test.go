package selector

import (
	"errors"
	"slices"
	"testing"
)

func words(tokens []Token) []string {
	var list []string
	for _, t := range tokens {
		list = append(list, t.Word)
	}
	return list
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		Query string
		Words []string
	}{
		{
			Query: "a.b.c",
			Words: []string{"a", ".", "b", ".", "c"},
		},
		{
			Query: "a<=b",
			Words: []string{"a", "<=", "b"},
		},
		{
			Query: "a >= b",
			Words: []string{"a", ">=", "b"},
		},
		{
			Query: "a != b",
			Words: []string{"a", "!=", "b"},
		},
		{
			Query: "type == MH",
			Words: []string{"type", "==", "MH"},
		},
		{
			Query: "a&&b||c",
			Words: []string{"a", "&&", "b", "||", "c"},
		},
		{
			Query: "~!!a",
			Words: []string{"~", "!", "!", "a"},
		},
		{
			Query: "x = 'Vingt \"Mille\" Lieues'",
			Words: []string{"x", "=", "Vingt \"Mille\" Lieues"},
		},
		{
			Query: "ab\"cd\"",
			Words: []string{"ab", "cd"},
		},
		{
			Query: "a = \"\"",
			Words: []string{"a", "=", ""},
		},
		{
			Query: "b[1, 2-9, -1]",
			Words: []string{"b", "[", "1", ",", "2-9", ",", "-1", "]"},
		},
		{
			Query: "  \n\t ",
			Words: nil,
		},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.Query)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tt.Query, err)
			continue
		}
		if got := words(tokens); !slices.Equal(got, tt.Words) {
			t.Errorf("%s: words mismatched! want %q, got %q", tt.Query, tt.Words, got)
		}
	}
}

func TestTokenizeKinds(t *testing.T) {
	tokens, err := Tokenize(`f:len f:max(a) "f:x" <= . 8_000 2-9 a_b`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []struct {
		Kind  Kind
		Arity int
	}{
		{Kind: Func, Arity: 0},
		{Kind: Func, Arity: -1},
		{Kind: Delim},
		{Kind: Ident},
		{Kind: Delim},
		{Kind: Phrase},
		{Kind: Op, Arity: 2},
		{Kind: Delim},
		{Kind: Ident},
		{Kind: Plain},
		{Kind: Ident},
	}
	if len(tokens) != len(want) {
		t.Fatalf("tokens count mismatched! want %d, got %d (%v)", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i].Kind != want[i].Kind {
			t.Errorf("token %s: kind mismatched! want %s, got %s", tokens[i], want[i].Kind, tokens[i].Kind)
		}
		if tokens[i].Arity != want[i].Arity {
			t.Errorf("token %s: arity mismatched! want %d, got %d", tokens[i], want[i].Arity, tokens[i].Arity)
		}
	}
}

func TestTokenizePosition(t *testing.T) {
	tokens, err := Tokenize("a\n  bc <= 'x'")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []Position{
		{Line: 1, Column: 1},
		{Line: 2, Column: 3},
		{Line: 2, Column: 6},
		{Line: 2, Column: 9},
	}
	for i := range want {
		if tokens[i].Position != want[i] {
			t.Errorf("%s: position mismatched! want %v, got %v", tokens[i], want[i], tokens[i].Position)
		}
	}
}

func TestTokenizeError(t *testing.T) {
	tests := []string{
		`a = "b`,
		`'x`,
		`a{b = "c}`,
		`f:f('a", b)`,
	}
	for _, str := range tests {
		_, err := Tokenize(str)
		if !errors.Is(err, ErrLex) {
			t.Errorf("%s: expected lexical error, got %v", str, err)
		}
	}
}

func TestTokenIs(t *testing.T) {
	tokens, err := Tokenize(`{ "{" `)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !tokens[0].Is("{") {
		t.Errorf("%s: delimiter should match its symbol", tokens[0])
	}
	if tokens[1].Is("{") {
		t.Errorf("%s: phrase should never match a symbol", tokens[1])
	}
}

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		Symbol     string
		Precedence int
		Arity      Arity
		Assoc      Associativity
	}{
		{Symbol: "OR", Precedence: powOr, Arity: Binary},
		{Symbol: "||", Precedence: powOr, Arity: Binary},
		{Symbol: "^", Precedence: powXor, Arity: Binary},
		{Symbol: "AND", Precedence: powAnd, Arity: Binary},
		{Symbol: "NOT", Precedence: powNot, Arity: Unary, Assoc: RightAssoc},
		{Symbol: "~", Precedence: powNot, Arity: Unary, Assoc: RightAssoc},
		{Symbol: "==", Precedence: powEq, Arity: Binary},
		{Symbol: ">=", Precedence: powCmp, Arity: Binary},
		{Symbol: "f:anything", Precedence: powCall, Arity: Variadic},
	}
	for _, tt := range tests {
		op, ok := LookupOperator(tt.Symbol)
		if !ok {
			t.Errorf("%s: operator not found", tt.Symbol)
			continue
		}
		if op.Precedence != tt.Precedence || op.Arity != tt.Arity || op.Assoc != tt.Assoc {
			t.Errorf("%s: operator mismatched! got %+v", tt.Symbol, op)
		}
	}
	for _, str := range []string{"and", "+", "f", "-", "&", "|"} {
		if _, ok := LookupOperator(str); ok {
			t.Errorf("%s: unexpected operator", str)
		}
	}
}
