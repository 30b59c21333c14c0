package selector

import (
	"strconv"
	"strings"
)

const (
	DefaultMaxDepth  = 64
	DefaultMaxHeight = 4096
)

// Parser turns selector strings into trees. The zero value is ready to use.
// A Parser only holds configuration and can be shared by goroutines as long
// as its Tracer can.
type Parser struct {
	// MaxDepth bounds the nesting of parentheses, brackets, embedded
	// selectors and operators inside predicates. DefaultMaxDepth is used
	// when it is not positive.
	MaxDepth int
	// MaxHeight bounds the height of a predicate tree, which long chains of
	// binary operators make grow. DefaultMaxHeight is used when it is not
	// positive.
	MaxHeight int
	Tracer
}

func NewParser() *Parser {
	return &Parser{
		MaxDepth:  DefaultMaxDepth,
		MaxHeight: DefaultMaxHeight,
		Tracer:    discardTracer{},
	}
}

func Parse(query string) (*Selector, error) {
	return NewParser().Parse(query)
}

func (p *Parser) Parse(query string) (*Selector, error) {
	cp := *p
	if cp.Tracer == nil {
		cp.Tracer = discardTracer{}
	}
	sel, err := cp.parse(query)
	if err != nil {
		cp.Error("parse", err)
		return nil, withQuery(err, query)
	}
	return sel, nil
}

func (p *Parser) parse(query string) (*Selector, error) {
	tokens, err := Tokenize(query)
	if err != nil {
		return nil, err
	}
	if tokens, err = p.conjoin(tokens); err != nil {
		return nil, err
	}
	sel, i, err := p.parseSelector(tokens, 0, len(tokens), 0)
	if err != nil {
		return nil, err
	}
	if i < len(tokens) {
		return nil, syntaxError(tokens[i].Position, "unexpected %s", tokens[i].Word)
	}
	return sel, nil
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

func (p *Parser) maxHeight() int {
	if p.MaxHeight <= 0 {
		return DefaultMaxHeight
	}
	return p.MaxHeight
}

// parseSelector reads steps until it meets a token that can not be part of
// a path. The returned index points to that token so that an embedding
// predicate can carry on from there.
func (p *Parser) parseSelector(tokens []Token, start, end, depth int) (*Selector, int, error) {
	if depth > p.maxDepth() {
		return nil, start, nestingError(tokens[start].Position, "maximum nesting depth (%d) exceeded", p.maxDepth())
	}
	p.Enter("selector")
	defer p.Leave("selector")

	var (
		sel  Selector
		step *Step
		err  error
		i    = start
	)
	for i < end {
		tok := tokens[i]
		i++
		switch {
		case tok.Is("."):
		case tok.Is("{"):
			if step == nil {
				return nil, i, syntaxError(tok.Position, "predicate without node")
			}
			i, err = p.parseFilter(step, tokens, i, end, depth)
		case tok.Is("["):
			if step == nil {
				return nil, i, syntaxError(tok.Position, "ranges without node")
			}
			i, err = p.parseRanges(step, tokens, i, end)
		case tok.isIdent():
			sel.Steps = append(sel.Steps, Step{Node: tok})
			step = &sel.Steps[len(sel.Steps)-1]
		default:
			return &sel, i - 1, nil
		}
		if err != nil {
			return nil, i, err
		}
	}
	return &sel, i, nil
}

func (p *Parser) parseFilter(step *Step, tokens []Token, start, end, depth int) (int, error) {
	open := tokens[start-1]
	if step.Ranges != nil {
		return start, nestingError(open.Position, "ranges already defined for %s", step.Node.Word)
	}
	if step.Predicate != nil {
		return start, nestingError(open.Position, "predicate already defined for %s", step.Node.Word)
	}
	buffer, next, err := p.parsePredicate(tokens, start, end, depth)
	if err != nil {
		return next, err
	}
	expr, err := build(buffer, depth, p.maxDepth(), p.maxHeight())
	if err != nil {
		return next, err
	}
	switch e := expr.(type) {
	case nil:
	case Token:
		step.Predicate = &Predicate{
			Root:     e,
			Operands: []Expr{},
		}
	default:
		step.Predicate = e
	}
	return next, nil
}

func (p *Parser) parseRanges(step *Step, tokens []Token, start, end int) (int, error) {
	p.Enter("ranges")
	defer p.Leave("ranges")

	open := tokens[start-1]
	if step.Predicate != nil {
		return start, nestingError(open.Position, "predicate already defined for %s", step.Node.Word)
	}
	if step.Ranges != nil {
		return start, nestingError(open.Position, "ranges already defined for %s", step.Node.Word)
	}
	ranges := []Range{}
	for i := start; i < end; i++ {
		tok := tokens[i]
		if tok.Is("]") {
			step.Ranges = ranges
			return i + 1, nil
		}
		r, err := parseRange(tok)
		if err != nil {
			return i, err
		}
		ranges = append(ranges, r)
	}
	return end, syntaxError(open.Position, "missing ']'")
}

// parseRange reads 7 as [7, 7] and 2-9 as [2, 9]. A leading dash is the
// sign of a single index.
func parseRange(tok Token) (Range, error) {
	var (
		r   Range
		err error
	)
	if tok.Kind == Phrase {
		return r, syntaxError(tok.Position, "invalid range %q", tok.Word)
	}
	if fst, lst, ok := strings.Cut(tok.Word, "-"); ok && fst != "" {
		if r.Start, err = strconv.Atoi(fst); err != nil {
			return r, syntaxError(tok.Position, "invalid range %q", tok.Word)
		}
		if r.End, err = strconv.Atoi(lst); err != nil {
			return r, syntaxError(tok.Position, "invalid range %q", tok.Word)
		}
		return r, nil
	}
	if r.Start, err = strconv.Atoi(tok.Word); err != nil {
		return r, syntaxError(tok.Position, "invalid range %q", tok.Word)
	}
	r.End = r.Start
	return r, nil
}
