package selector

import (
	"io"
	"strconv"
	"strings"
)

// Debug renders a selector as nested calls, for instance
//
//	selector(step(a, and(phrase("x"), not(ident(b)))), step(c, ranges(1..2)))
func Debug(sel *Selector) string {
	var str strings.Builder
	debugExpr(&str, sel)
	return str.String()
}

func debugExpr(w io.Writer, expr Expr) {
	switch v := expr.(type) {
	case *Selector:
		io.WriteString(w, "selector")
		io.WriteString(w, "(")
		for i := range v.Steps {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			debugStep(w, &v.Steps[i])
		}
		io.WriteString(w, ")")
	case *Predicate:
		io.WriteString(w, debugOp(v.Root))
		io.WriteString(w, "(")
		for i := range v.Operands {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			debugExpr(w, v.Operands[i])
		}
		io.WriteString(w, ")")
	case Token:
		switch v.Kind {
		case Phrase:
			io.WriteString(w, "phrase")
			io.WriteString(w, "(")
			io.WriteString(w, strconv.Quote(v.Word))
		case Ident:
			io.WriteString(w, "ident")
			io.WriteString(w, "(")
			io.WriteString(w, v.Word)
		default:
			io.WriteString(w, "literal")
			io.WriteString(w, "(")
			io.WriteString(w, v.Word)
		}
		io.WriteString(w, ")")
	case nil:
		io.WriteString(w, "nil")
	}
}

func debugStep(w io.Writer, s *Step) {
	io.WriteString(w, "step")
	io.WriteString(w, "(")
	io.WriteString(w, s.Node.Word)
	if len(s.Ranges) > 0 {
		io.WriteString(w, ", ")
		io.WriteString(w, "ranges")
		io.WriteString(w, "(")
		for i, r := range s.Ranges {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			io.WriteString(w, strconv.Itoa(r.Start))
			if r.Start != r.End {
				io.WriteString(w, "..")
				io.WriteString(w, strconv.Itoa(r.End))
			}
		}
		io.WriteString(w, ")")
	}
	if s.Predicate != nil {
		io.WriteString(w, ", ")
		debugExpr(w, s.Predicate)
	}
	io.WriteString(w, ")")
}

func debugOp(tok Token) string {
	if tok.isFunction() {
		return "call:" + strings.TrimPrefix(tok.Word, FunctionPrefix)
	}
	op, ok := tok.Operator()
	if !ok {
		// a single literal used as a whole predicate
		return "test:" + tok.Word
	}
	switch op.Symbol {
	case "AND", "&&":
		return "and"
	case "OR", "||":
		return "or"
	case "XOR", "^":
		return "xor"
	case "NOT", "!", "~":
		return "not"
	case "=", "==":
		return "eq"
	case "!=":
		return "ne"
	case "<":
		return "lt"
	case "<=":
		return "le"
	case ">":
		return "gt"
	case ">=":
		return "ge"
	default:
		return op.Symbol
	}
}
