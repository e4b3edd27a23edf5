package vtt

import (
	"math"
	"unicode"
)

// scanner holds the mutable state of a single pass over VTT source.
type scanner struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based column
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src), line: 1, col: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the rune at the current position without advancing.
func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (s *scanner) peek2() rune {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

// advance consumes one rune and returns it.
func (s *scanner) advance() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	r := s.src[s.pos]
	s.pos++
	if r == '\n' || (r == '\r' && s.peek() != '\n') {
		s.line++
		s.col = 1
	} else if r != '\r' {
		s.col++
	}
	return r
}

func (s *scanner) position() Position {
	return Position{Line: s.line, Column: s.col}
}

// skipBlank discards white space and block comments. An unterminated
// comment is reported as an error.
func (s *scanner) skipBlank() error {
	for !s.eof() {
		switch {
		case unicode.IsSpace(s.peek()):
			s.advance()
		case s.peek() == '/' && s.peek2() == '*':
			start := s.position()
			s.advance()
			s.advance()
			closed := false
			for !s.eof() {
				if s.peek() == '*' && s.peek2() == '/' {
					s.advance()
					s.advance()
					closed = true
					break
				}
				s.advance()
			}
			if !closed {
				return s.errorAt(start, "unterminated comment")
			}
		default:
			return nil
		}
	}
	return nil
}

// scanIdent consumes letters, digits and underscores.
func (s *scanner) scanIdent() string {
	start := s.pos
	for !s.eof() && isIdentRune(s.peek()) {
		s.advance()
	}
	return string(s.src[start:s.pos])
}

// scanInt consumes an optionally signed decimal integer.
func (s *scanner) scanInt() (int, error) {
	at := s.position()
	neg := false
	if s.peek() == '-' || s.peek() == '+' {
		neg = s.advance() == '-'
	}
	if !isDigit(s.peek()) {
		return 0, s.errorAt(at, "expected integer")
	}
	n := 0
	for isDigit(s.peek()) {
		n = 10*n + int(s.advance()-'0')
		if n > math.MaxInt32 {
			return 0, s.errorAt(at, "integer out of range")
		}
	}
	if neg {
		n = -n
	}
	return n, nil
}

// expect consumes rune r, possibly preceded by blanks.
func (s *scanner) expect(r rune) error {
	if err := s.skipBlank(); err != nil {
		return err
	}
	if s.peek() != r {
		return s.errorf("expected %q, found %s", r, s.describe())
	}
	s.advance()
	return nil
}

// describe names the rune at the current position for error messages.
func (s *scanner) describe() string {
	if s.eof() {
		return "end of input"
	}
	return "'" + string(s.peek()) + "'"
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return r == '_' || isDigit(r) || (r < unicode.MaxASCII && unicode.IsLetter(r))
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
