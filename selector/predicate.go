package selector

// parsePredicate runs the shunting yard over the body of a predicate,
// starting right after its opening brace. It returns the postfix buffer and
// the index following the closing brace.
func (p *Parser) parsePredicate(tokens []Token, start, end, depth int) (postfix, int, error) {
	p.Enter("predicate")
	defer p.Leave("predicate")

	var (
		buffer postfix
		ops    []Token
		closed bool
		i      = start
	)
	pop := func() Token {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return top
	}
	for i < end && !closed {
		tok := tokens[i]
		if tok.isIdent() && i+1 < end && tokens[i+1].Is(".") {
			sel, next, err := p.parseSelector(tokens, i, end, depth+1)
			if err != nil {
				return nil, i, err
			}
			buffer = append(buffer, sel)
			i = next
			continue
		}
		i++
		switch {
		case tok.Is("}"):
			closed = true
		case tok.isFunction():
			ops = append(ops, tok)
		case tok.isOperator():
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !top.isOperator() || !tok.yields(top) {
					break
				}
				buffer = append(buffer, pop())
			}
			ops = append(ops, tok)
		case tok.Is(","):
			for len(ops) > 0 && !ops[len(ops)-1].Is("(") {
				buffer = append(buffer, pop())
			}
			if len(ops) == 0 {
				return nil, i, syntaxError(tok.Position, "misplaced comma")
			}
		case tok.Is("("):
			ops = append(ops, tok)
		case tok.Is(")"):
			for len(ops) > 0 && !ops[len(ops)-1].Is("(") {
				buffer = append(buffer, pop())
			}
			if len(ops) == 0 {
				return nil, i, syntaxError(tok.Position, "mismatched parentheses")
			}
			pop()
			if len(ops) > 0 && ops[len(ops)-1].isFunction() {
				buffer = append(buffer, pop())
			}
		case tok.Kind == Delim:
			return nil, i, syntaxError(tok.Position, "unexpected %s in predicate", tok.Word)
		default:
			buffer = append(buffer, tok)
		}
	}
	if !closed {
		var pos Position
		if start > 0 {
			pos = tokens[start-1].Position
		}
		return nil, i, syntaxError(pos, "missing '}'")
	}
	for len(ops) > 0 {
		top := pop()
		if top.Is("(") || top.Is(")") {
			return nil, i, syntaxError(top.Position, "mismatched parentheses")
		}
		buffer = append(buffer, top)
	}
	return buffer, i, nil
}
