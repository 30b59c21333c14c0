package selector

import (
	"bytes"

	"github.com/mcsyzygy/zonquery/json"
)

// Expr is a node of a predicate tree: a literal Token, a *Predicate or an
// embedded *Selector.
type Expr interface {
	expr()
}

type Selector struct {
	Steps []Step
}

func (s *Selector) expr() {}

// MarshalJSON writes the compact canonical projection of the selector.
func (s *Selector) MarshalJSON() ([]byte, error) {
	var (
		buf bytes.Buffer
		ws  = json.NewWriter(&buf)
	)
	ws.Compact = true
	if err := ws.Write(Project(s)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Step is one segment of a selector. Ranges and Predicate are mutually
// exclusive. Predicate is either a *Predicate or an embedded *Selector.
type Step struct {
	Node      Token
	Ranges    []Range
	Predicate Expr
}

type Range struct {
	Start int
	End   int
}

type Predicate struct {
	Root     Token
	Operands []Expr
}

func (p *Predicate) expr() {}

type postfix []Expr

// node is a subtree being assembled. height is the length of its longest
// path. depth grows through every operand but the left one of an operator
// taking several, so that left associative chains stay flat.
type node struct {
	expr   Expr
	depth  int
	height int
}

// build assembles the tree of a predicate from its postfix buffer. Each
// operator takes exactly its arity of operands, kept in source order. The
// tree fails with a nesting error when depth plus its own depth exceeds
// maxDepth or when its height exceeds maxHeight.
func build(buffer postfix, depth, maxDepth, maxHeight int) (Expr, error) {
	var stack []node
	for _, e := range buffer {
		tok, ok := e.(Token)
		if !ok || !tok.isOperator() {
			stack = append(stack, node{expr: e})
			continue
		}
		tok.Arity = max(tok.Arity, 0)
		if len(stack) < tok.Arity {
			return nil, syntaxError(tok.Position, "missing operand for %s", tok.Word)
		}
		var (
			args = stack[len(stack)-tok.Arity:]
			pred = Predicate{
				Root:     tok,
				Operands: make([]Expr, 0, tok.Arity),
			}
			curr = node{expr: &pred}
		)
		for i, a := range args {
			pred.Operands = append(pred.Operands, a.expr)
			d := a.depth
			if i > 0 || tok.Arity == 1 {
				d++
			}
			curr.depth = max(curr.depth, d)
			curr.height = max(curr.height, a.height+1)
		}
		if depth+curr.depth > maxDepth {
			return nil, nestingError(tok.Position, "maximum nesting depth (%d) exceeded", maxDepth)
		}
		if curr.height > maxHeight {
			return nil, nestingError(tok.Position, "maximum predicate height (%d) exceeded", maxHeight)
		}
		stack = append(stack[:len(stack)-tok.Arity], curr)
	}
	switch len(stack) {
	case 0:
		return nil, nil
	case 1:
		return stack[0].expr, nil
	default:
		return nil, syntaxError(positionOf(stack[len(stack)-2].expr), "operand without operator")
	}
}

func positionOf(e Expr) Position {
	switch e := e.(type) {
	case Token:
		return e.Position
	case *Predicate:
		return e.Root.Position
	case *Selector:
		if len(e.Steps) > 0 {
			return e.Steps[0].Node.Position
		}
	}
	return Position{}
}
