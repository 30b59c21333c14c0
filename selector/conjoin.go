package selector

// frame is an open parenthesis or bracket. When the parenthesis opens the
// arguments of a function, fn is the index of that function in the output.
type frame struct {
	open Token
	fn   int
}

func (f frame) isRange() bool {
	return f.open.Is("[")
}

func (f frame) closedBy(tok Token) bool {
	if tok.Is(")") {
		return f.open.Is("(")
	}
	return f.isRange()
}

// count records one more argument for the function of the frame. prev is
// the token just before the comma or the closing parenthesis.
func (f frame) count(list []Token, prev Token) {
	fn := &list[f.fn]
	switch {
	case prev.Is("("):
		fn.Arity = 0
	case fn.Arity != 0:
		fn.Arity = max(fn.Arity, 0) + 1
	}
}

// Conjoin checks the nesting of the tokens, computes the arity of each
// function call and inserts an AND between adjacent operands.
func Conjoin(tokens []Token) ([]Token, error) {
	return NewParser().conjoin(tokens)
}

func (p *Parser) conjoin(tokens []Token) ([]Token, error) {
	p.Enter("conjoin")
	defer p.Leave("conjoin")

	var (
		list  = make([]Token, 0, len(tokens)+len(tokens)/2)
		stack = []frame{{fn: -1}}
	)
	for _, tok := range tokens {
		var (
			prev Token
			seen = len(list) > 0
		)
		if seen {
			prev = list[len(list)-1]
		}
		if tok.Is("(") || tok.Is("[") {
			if len(stack) > p.maxDepth() {
				return nil, nestingError(tok.Position, "maximum nesting depth (%d) exceeded", p.maxDepth())
			}
			f := frame{
				open: tok,
				fn:   -1,
			}
			if tok.Is("(") && seen && prev.isFunction() {
				f.fn = len(list) - 1
			}
			stack = append(stack, f)
		}
		top := stack[len(stack)-1]

		switch {
		case tok.Is(","):
			if top.fn >= 0 {
				list = append(list, tok)
				top.count(list, prev)
			}
			continue
		case !tok.isDelimiter() || tok.Is("(") || tok.isUnary():
			if seen && conjoinable(top, prev) {
				list = append(list, conjunction(tok.Position))
			}
			list = append(list, tok)
		default:
			list = append(list, tok)
		}

		if !tok.Is(")") && !tok.Is("]") {
			continue
		}
		if len(stack) == 1 {
			return nil, syntaxError(tok.Position, "%s without matching opening", tok.Word)
		}
		if !top.closedBy(tok) {
			return nil, nestingError(tok.Position, "%s closed by %s", top.open.Word, tok.Word)
		}
		if top.fn >= 0 {
			top.count(list, prev)
		}
		stack = stack[:len(stack)-1]
	}
	return list, nil
}

func conjoinable(top frame, prev Token) bool {
	if top.isRange() || prev.absorbs() {
		return false
	}
	return !prev.isFunction() || prev.Arity == 0
}
