package selector

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type scanner struct {
	input *bufio.Reader
	char  rune
	eof   bool
	str   bytes.Buffer

	Position
	start  Position
	tokens []Token
}

// Tokenize splits query into its raw tokens. Compound operators are merged
// and zero argument functions separated by blanks get an arity of 0, but
// no conjunction is inserted yet: see Conjoin.
func Tokenize(query string) ([]Token, error) {
	return scan(strings.NewReader(query))
}

func scan(r io.Reader) ([]Token, error) {
	s := scanner{
		input: bufio.NewReader(r),
	}
	s.Line = 1
	return s.scan()
}

func (s *scanner) scan() ([]Token, error) {
	for s.read(); !s.done(); s.read() {
		switch {
		case isQuote(s.char):
			if err := s.scanPhrase(); err != nil {
				return nil, err
			}
		case unicode.IsSpace(s.char):
			s.flush()
			if n := len(s.tokens); n > 0 && s.tokens[n-1].isFunction() {
				s.tokens[n-1].Arity = 0
			}
		case isSeparator(s.char):
			s.flush()
			s.scanSeparator()
		default:
			s.write()
		}
	}
	s.flush()
	return s.tokens, nil
}

func (s *scanner) scanPhrase() error {
	s.flush()

	var (
		closer = s.char
		pos    = s.Position
	)
	for s.read(); !s.done() && s.char != closer; s.read() {
		s.str.WriteRune(s.char)
	}
	if s.done() {
		return lexError(pos, "unterminated quoted phrase")
	}
	s.tokens = append(s.tokens, makePhrase(s.str.String(), pos))
	s.str.Reset()
	return nil
}

func (s *scanner) scanSeparator() {
	n := len(s.tokens)
	if n > 0 {
		prev := s.tokens[n-1]
		if prev.Kind != Phrase && isCompound(prev.Word, s.char) {
			s.tokens[n-1] = makeToken(prev.Word+string(s.char), prev.Position)
			return
		}
	}
	s.tokens = append(s.tokens, makeToken(string(s.char), s.Position))
}

func (s *scanner) flush() {
	if s.str.Len() == 0 {
		return
	}
	s.tokens = append(s.tokens, makeToken(s.str.String(), s.start))
	s.str.Reset()
}

func (s *scanner) write() {
	if s.str.Len() == 0 {
		s.start = s.Position
	}
	s.str.WriteRune(s.char)
}

func (s *scanner) read() {
	if s.char == '\n' {
		s.Column = 0
		s.Line++
	}
	s.Column++
	c, _, err := s.input.ReadRune()
	if err != nil {
		s.char = utf8.RuneError
		s.eof = true
	} else {
		s.char = c
	}
}

func (s *scanner) done() bool {
	return s.eof
}
