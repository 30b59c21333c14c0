package selector

import (
	"fmt"
	"unicode"
)

type Position struct {
	Line   int
	Column int
}

type Kind int8

const (
	Plain Kind = iota
	Ident
	Phrase
	Func
	Op
	Delim
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Ident:
		return "identifier"
	case Phrase:
		return "phrase"
	case Func:
		return "function"
	case Op:
		return "operator"
	case Delim:
		return "delimiter"
	default:
		return "unknown"
	}
}

// Token is a word of a selector. Arity is only meaningful for operators and
// functions: a function starts as Variadic and gets its final count of
// arguments once the tokens are conjoined.
type Token struct {
	Word  string
	Kind  Kind
	Arity int
	op    Operator
	Position
}

func makeToken(word string, pos Position) Token {
	tok := Token{
		Word:     word,
		Position: pos,
	}
	switch op, ok := LookupOperator(word); {
	case ok && op.Arity == Variadic:
		tok.Kind = Func
		tok.op = op
		tok.Arity = int(op.Arity)
	case ok:
		tok.Kind = Op
		tok.op = op
		tok.Arity = int(op.Arity)
	case isSeparatorWord(word):
		tok.Kind = Delim
	case isIdentWord(word):
		tok.Kind = Ident
	default:
		tok.Kind = Plain
	}
	return tok
}

func makePhrase(word string, pos Position) Token {
	return Token{
		Word:     word,
		Kind:     Phrase,
		Position: pos,
	}
}

func conjunction(pos Position) Token {
	return Token{
		Word:     opAnd.Symbol,
		Kind:     Op,
		Arity:    int(opAnd.Arity),
		op:       opAnd,
		Position: pos,
	}
}

func isIdentWord(word string) bool {
	if word == "" {
		return false
	}
	for _, c := range word {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

// Is reports whether the token is the given symbol. Quoted phrases never
// match, whatever their content.
func (t Token) Is(word string) bool {
	return t.Kind != Phrase && t.Word == word
}

// Operator returns the operator the token resolved to, if any.
func (t Token) Operator() (Operator, bool) {
	return t.op, t.isOperator()
}

func (t Token) Precedence() int {
	if !t.isOperator() {
		return maxPrecedence
	}
	return t.op.Precedence
}

func (t Token) isOperator() bool {
	return t.Kind == Op || t.Kind == Func
}

func (t Token) isFunction() bool {
	return t.Kind == Func
}

func (t Token) isIdent() bool {
	return t.Kind == Ident
}

func (t Token) isUnary() bool {
	return t.Kind == Op && t.op.Arity == Unary
}

func (t Token) isDelimiter() bool {
	return t.Kind == Op || t.Kind == Delim
}

// absorbs reports whether the token already separates itself from the
// operand that follows it, so that no conjunction is needed in between.
func (t Token) absorbs() bool {
	return t.isDelimiter() && !t.Is(")")
}

// yields reports whether t, about to be pushed on the operator stack, lets
// top go to the output first.
func (t Token) yields(top Token) bool {
	if t.op.Assoc == RightAssoc {
		return t.Precedence() < top.Precedence()
	}
	return t.Precedence() <= top.Precedence()
}

func (t Token) String() string {
	switch t.Kind {
	case Delim:
		return fmt.Sprintf("<%s>", t.Word)
	case Func:
		return fmt.Sprintf("%s(%s/%d)", t.Kind, t.Word, t.Arity)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Word)
	}
}

func (t Token) expr() {}
