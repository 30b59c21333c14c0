package json

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Pair is a member of an Object.
type Pair struct {
	Key   string
	Value any
}

// Object is a JSON object whose members are written in the order they are
// given.
type Object []Pair

func (o Object) Get(key string) (any, bool) {
	for _, p := range o {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

type Writer struct {
	ws *bufio.Writer

	Indent  string
	Compact bool

	level int
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		ws:     bufio.NewWriter(w),
		Indent: "  ",
	}
	return &ws
}

func (w *Writer) Write(value any) error {
	defer w.reset()
	if err := w.writeValue(value); err != nil {
		return err
	}
	return w.ws.Flush()
}

func (w *Writer) writeValue(value any) error {
	switch v := value.(type) {
	case Object:
		return w.writeObject(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := make(Object, 0, len(keys))
		for _, k := range keys {
			obj = append(obj, Pair{Key: k, Value: v[k]})
		}
		return w.writeObject(obj)
	case []any:
		return w.writeArray(v)
	case []Object:
		arr := make([]any, len(v))
		for i := range v {
			arr[i] = v[i]
		}
		return w.writeArray(arr)
	default:
		return w.writeLiteral(value)
	}
}

func (w *Writer) writeObject(value Object) error {
	if len(value) == 0 {
		w.ws.WriteString("{}")
		return nil
	}
	w.enter()

	w.ws.WriteRune('{')
	w.writeNL()
	for i, p := range value {
		if i > 0 {
			w.ws.WriteRune(',')
			w.writeNL()
		}
		w.writePrefix()
		w.writeKey(p.Key)
		if err := w.writeValue(p.Value); err != nil {
			return err
		}
	}
	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteRune('}')
	return nil
}

func (w *Writer) writeArray(value []any) error {
	if len(value) == 0 {
		w.ws.WriteString("[]")
		return nil
	}
	w.enter()

	w.ws.WriteRune('[')
	w.writeNL()
	for i := range value {
		if i > 0 {
			w.ws.WriteRune(',')
			w.writeNL()
		}
		w.writePrefix()
		if err := w.writeValue(value[i]); err != nil {
			return err
		}
	}
	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteRune(']')
	return nil
}

func (w *Writer) writeLiteral(value any) error {
	if value == nil {
		w.ws.WriteString("null")
		return nil
	}
	switch v := value.(type) {
	case bool:
		w.ws.WriteString(strconv.FormatBool(v))
	case int:
		w.ws.WriteString(strconv.Itoa(v))
	case int64:
		w.ws.WriteString(strconv.FormatInt(v, 10))
	case uint64:
		w.ws.WriteString(strconv.FormatUint(v, 10))
	case float64:
		w.ws.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		w.writeString(v)
	default:
		return fmt.Errorf("unsupported json type %T", value)
	}
	return nil
}

func (w *Writer) writeKey(key string) {
	w.writeString(key)
	w.ws.WriteRune(':')
	if !w.Compact {
		w.ws.WriteRune(' ')
	}
}

const hexdigits = "0123456789abcdef"

// writeString quotes value. Only the quote, the backslash and the control
// characters are escaped: any other rune is written as is.
func (w *Writer) writeString(value string) {
	w.ws.WriteRune('"')
	for _, c := range value {
		switch c {
		case '"':
			w.ws.WriteString(`\"`)
		case '\\':
			w.ws.WriteString(`\\`)
		case '\n':
			w.ws.WriteString(`\n`)
		case '\r':
			w.ws.WriteString(`\r`)
		case '\t':
			w.ws.WriteString(`\t`)
		case '\b':
			w.ws.WriteString(`\b`)
		case '\f':
			w.ws.WriteString(`\f`)
		default:
			if c < 0x20 {
				w.ws.WriteString(`\u00`)
				w.ws.WriteByte(hexdigits[c>>4])
				w.ws.WriteByte(hexdigits[c&0xF])
				continue
			}
			w.ws.WriteRune(c)
		}
	}
	w.ws.WriteRune('"')
}

func (w *Writer) writePrefix() {
	if w.Compact || w.level == 0 {
		return
	}
	w.ws.WriteString(strings.Repeat(w.Indent, w.level))
}

func (w *Writer) writeNL() {
	if w.Compact {
		return
	}
	w.ws.WriteRune('\n')
}

func (w *Writer) enter() {
	w.level++
}

func (w *Writer) leave() {
	w.level--
}

func (w *Writer) reset() {
	w.level = 0
}
