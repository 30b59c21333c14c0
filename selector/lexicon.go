package selector

import "strings"

// FunctionPrefix marks a word as a function call (f:len, f:max(a, b)).
const FunctionPrefix = "f:"

// maxPrecedence is the precedence of every token that is not an operator.
const maxPrecedence = 1000

type Arity int8

const (
	Variadic Arity = -1
	Unary    Arity = 1
	Binary   Arity = 2
)

type Associativity int8

const (
	LeftAssoc Associativity = iota
	RightAssoc
)

type Operator struct {
	Symbol     string
	Precedence int
	Arity      Arity
	Assoc      Associativity
}

const (
	powOr = iota + 1
	powXor
	powAnd
	powNot
	powEq
	powCmp
	powCall
)

var (
	opFunction = Operator{Symbol: FunctionPrefix, Precedence: powCall, Arity: Variadic, Assoc: LeftAssoc}
	opAnd      = Operator{Symbol: "AND", Precedence: powAnd, Arity: Binary, Assoc: LeftAssoc}
)

var operators = map[string]Operator{
	">":   {Symbol: ">", Precedence: powCmp, Arity: Binary, Assoc: LeftAssoc},
	">=":  {Symbol: ">=", Precedence: powCmp, Arity: Binary, Assoc: LeftAssoc},
	"<":   {Symbol: "<", Precedence: powCmp, Arity: Binary, Assoc: LeftAssoc},
	"<=":  {Symbol: "<=", Precedence: powCmp, Arity: Binary, Assoc: LeftAssoc},
	"=":   {Symbol: "=", Precedence: powEq, Arity: Binary, Assoc: LeftAssoc},
	"==":  {Symbol: "==", Precedence: powEq, Arity: Binary, Assoc: LeftAssoc},
	"!=":  {Symbol: "!=", Precedence: powEq, Arity: Binary, Assoc: LeftAssoc},
	"NOT": {Symbol: "NOT", Precedence: powNot, Arity: Unary, Assoc: RightAssoc},
	"!":   {Symbol: "!", Precedence: powNot, Arity: Unary, Assoc: RightAssoc},
	"~":   {Symbol: "~", Precedence: powNot, Arity: Unary, Assoc: RightAssoc},
	"AND": opAnd,
	"&&":  {Symbol: "&&", Precedence: powAnd, Arity: Binary, Assoc: LeftAssoc},
	"XOR": {Symbol: "XOR", Precedence: powXor, Arity: Binary, Assoc: LeftAssoc},
	"^":   {Symbol: "^", Precedence: powXor, Arity: Binary, Assoc: LeftAssoc},
	"OR":  {Symbol: "OR", Precedence: powOr, Arity: Binary, Assoc: LeftAssoc},
	"||":  {Symbol: "||", Precedence: powOr, Arity: Binary, Assoc: LeftAssoc},
}

// LookupOperator returns the operator registered for symbol. Any word
// starting with FunctionPrefix resolves to the function pseudo-operator.
func LookupOperator(symbol string) (Operator, bool) {
	if strings.HasPrefix(symbol, FunctionPrefix) {
		return opFunction, true
	}
	op, ok := operators[symbol]
	return op, ok
}

const (
	comma     = ','
	dot       = '.'
	dash      = '-'
	lcurly    = '{'
	rcurly    = '}'
	lsquare   = '['
	rsquare   = ']'
	lparen    = '('
	rparen    = ')'
	quote     = '"'
	apos      = '\''
	langle    = '<'
	rangle    = '>'
	equal     = '='
	bang      = '!'
	tilde     = '~'
	caret     = '^'
	ampersand = '&'
	pipe      = '|'
)

func isSeparatorWord(word string) bool {
	if len(word) != 1 {
		return false
	}
	switch word[0] {
	case comma, dot, dash, lcurly, rcurly, lsquare, rsquare, lparen, rparen:
		return true
	default:
		return false
	}
}

// isSeparator reports whether c ends the current word and is emitted as a
// token of its own. The range dash is not one of them: 2-9 and -1 are
// single words.
func isSeparator(c rune) bool {
	switch c {
	case comma, dot, lcurly, rcurly, lsquare, rsquare, lparen, rparen:
	case langle, rangle, equal, bang, tilde, caret, ampersand, pipe:
	default:
		return false
	}
	return true
}

func isQuote(c rune) bool {
	return c == quote || c == apos
}

// isCompound reports whether prev followed by c forms one of the two
// characters operators: <= >= != == && ||.
func isCompound(prev string, c rune) bool {
	if len(prev) != 1 {
		return false
	}
	switch p := rune(prev[0]); {
	case c == equal && (p == langle || p == rangle || p == bang):
		return true
	case c == p && (p == equal || p == ampersand || p == pipe):
		return true
	default:
		return false
	}
}
