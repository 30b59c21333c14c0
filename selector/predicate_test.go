package selector

import (
	"errors"
	"strings"
	"testing"
)

func parsePredicateString(query string) (Expr, error) {
	tokens, err := Tokenize(query)
	if err != nil {
		return nil, err
	}
	if tokens, err = Conjoin(tokens); err != nil {
		return nil, err
	}
	p := NewParser()
	buffer, _, err := p.parsePredicate(tokens, 0, len(tokens), 0)
	if err != nil {
		return nil, err
	}
	return build(buffer, 0, p.maxDepth(), p.maxHeight())
}

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		Query string
		Want  string
	}{
		{
			Query: "z < 3}",
			Want:  "lt(ident(z), ident(3))",
		},
		{
			Query: "a OR b AND c}",
			Want:  "or(ident(a), and(ident(b), ident(c)))",
		},
		{
			Query: "(a OR b) AND c}",
			Want:  "and(or(ident(a), ident(b)), ident(c))",
		},
		{
			Query: "a OR b OR c}",
			Want:  "or(or(ident(a), ident(b)), ident(c))",
		},
		{
			Query: "a XOR b OR c}",
			Want:  "or(xor(ident(a), ident(b)), ident(c))",
		},
		{
			Query: "NOT a = b}",
			Want:  "not(eq(ident(a), ident(b)))",
		},
		{
			Query: "a = b > c}",
			Want:  "eq(ident(a), gt(ident(b), ident(c)))",
		},
		{
			Query: "!!a}",
			Want:  "not(not(ident(a)))",
		},
		{
			Query: "f:max(a, b c)}",
			Want:  "call:max(ident(a), and(ident(b), ident(c)))",
		},
		{
			Query: "f:len f:now()}",
			Want:  "and(call:len(), call:now())",
		},
		{
			Query: "x = 'Dental Care'}",
			Want:  `eq(ident(x), phrase("Dental Care"))`,
		},
		{
			Query: "amount <= 8_000}",
			Want:  "le(ident(amount), ident(8_000))",
		},
		{
			Query: "this.plans = 2-9}",
			Want:  "eq(selector(step(this), step(plans)), literal(2-9))",
		},
	}
	for _, tt := range tests {
		expr, err := parsePredicateString(tt.Query)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tt.Query, err)
			continue
		}
		var str strings.Builder
		debugExpr(&str, expr)
		if got := str.String(); got != tt.Want {
			t.Errorf("%s: tree mismatched! want %s, got %s", tt.Query, tt.Want, got)
		}
	}
}

func TestParsePredicateError(t *testing.T) {
	tests := []string{
		"a OR b",
		"(a OR b}",
		"a [1]}",
		"a ] b}",
		"a - b}",
		"a AND}",
		"NOT}",
	}
	for _, str := range tests {
		_, err := parsePredicateString(str)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%s: expected syntax error, got %v", str, err)
		}
	}
}

func TestParsePredicateUnconjoined(t *testing.T) {
	tests := []string{
		"a, b}",
		"a) OR b}",
	}
	for _, str := range tests {
		tokens, err := Tokenize(str)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", str, err)
			continue
		}
		p := NewParser()
		_, _, err = p.parsePredicate(tokens, 0, len(tokens), 0)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%s: expected syntax error, got %v", str, err)
		}
	}
}
