package selector

import (
	"errors"
	"fmt"
)

var (
	ErrLex     = errors.New("lexical error")
	ErrNesting = errors.New("nesting error")
	ErrSyntax  = errors.New("syntax error")
)

// Error is returned for every selector that can not be parsed. Kind is one
// of ErrLex, ErrNesting or ErrSyntax and is what errors.Is matches against.
type Error struct {
	Kind  error
	Query string
	Cause string
	Position
}

func (e Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Cause)
}

func (e Error) Unwrap() error {
	return e.Kind
}

func lexError(pos Position, cause string) error {
	return Error{
		Kind:     ErrLex,
		Cause:    cause,
		Position: pos,
	}
}

func nestingError(pos Position, format string, args ...any) error {
	return Error{
		Kind:     ErrNesting,
		Cause:    fmt.Sprintf(format, args...),
		Position: pos,
	}
}

func syntaxError(pos Position, format string, args ...any) error {
	return Error{
		Kind:     ErrSyntax,
		Cause:    fmt.Sprintf(format, args...),
		Position: pos,
	}
}

func withQuery(err error, query string) error {
	var e Error
	if errors.As(err, &e) {
		e.Query = query
		return e
	}
	return err
}
