package vtt

import (
	"strings"
)

// Parse splits VTT source into a sequence of tokens.
// Comments are discarded. On malformed input Parse returns a *ParseError
// and no tokens.
func Parse(src string) ([]Token, error) {
	s := newScanner(src)
	var tokens []Token
	for {
		if err := s.skipBlank(); err != nil {
			return nil, err
		}
		if s.eof() {
			break
		}
		var t Token
		var err error
		switch c := s.peek(); {
		case c == '#':
			t, err = s.pragma()
		case isUpper(c):
			t, err = s.instruction()
		default:
			err = s.errorf("unexpected %s", s.describe())
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	tracer().Debugf("parsed %d VTT tokens", len(tokens))
	return tokens, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(src string) []Token {
	tokens, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return tokens
}

// pragma parses "#IDENT" followed either by a colon (label definition)
// or by stack items.
func (s *scanner) pragma() (Token, error) {
	t := Token{Kind: Pragma, Pos: s.position()}
	s.advance() // '#'
	name := s.scanIdent()
	if name == "" {
		return t, s.errorf("expected pragma name after '#', found %s", s.describe())
	}
	t.Mnemonic = "#" + name
	if s.peek() == ':' {
		s.advance()
		t.Kind = LabelDef
		return t, nil
	}
	err := s.stackItems(&t)
	return t, err
}

// instruction parses "MNEMONIC[flags]" or "MNEMONIC[deltas]", followed by
// stack items.
func (s *scanner) instruction() (Token, error) {
	t := Token{Kind: Instruction, Pos: s.position()}
	t.Mnemonic = s.scanIdent()
	for _, r := range t.Mnemonic {
		if !isUpper(r) && !isDigit(r) {
			return t, s.errorAt(t.Pos, "mnemonic must consist of upper-case letters and digits: "+t.Mnemonic)
		}
	}
	if err := s.expect('['); err != nil {
		return t, err
	}
	if err := s.skipBlank(); err != nil {
		return t, err
	}
	var err error
	if s.peek() == '(' {
		err = s.deltas(&t)
	} else {
		err = s.flags(&t)
	}
	if err != nil {
		return t, err
	}
	if err = s.expect(']'); err != nil {
		return t, err
	}
	err = s.stackItems(&t)
	return t, err
}

// flags parses flag letters up to the closing bracket.
func (s *scanner) flags(t *Token) error {
	var letters strings.Builder
	var cols []Position
	for !s.eof() && s.peek() != ']' {
		if s.peek() == ' ' || s.peek() == '\t' {
			s.advance()
			continue
		}
		if s.peek() > 0x7f || s.peek() == '\n' || s.peek() == '\r' {
			return s.errorf("unknown flag letter %s", s.describe())
		}
		cols = append(cols, s.position())
		letters.WriteRune(s.advance())
	}
	t.Letters = letters.String()
	bits, at, err := EncodeFlags(t.Letters)
	if err != nil {
		return s.errorAt(cols[at], err.Error())
	}
	t.Flags = bits
	return nil
}

// deltas parses one or more delta specifications "(point @ppem step[/8])".
func (s *scanner) deltas(t *Token) error {
	for {
		if err := s.skipBlank(); err != nil {
			return err
		}
		if s.peek() != '(' {
			return nil
		}
		s.advance()
		var d Delta
		var err error
		if err = s.skipBlank(); err != nil {
			return err
		}
		if d.Point, err = s.scanInt(); err != nil {
			return err
		}
		if err = s.expect('@'); err != nil {
			return err
		}
		if err = s.skipBlank(); err != nil {
			return err
		}
		if d.PPEM, err = s.scanInt(); err != nil {
			return err
		}
		if err = s.skipBlank(); err != nil {
			return err
		}
		if d.Step, err = s.scanInt(); err != nil {
			return err
		}
		if err = s.skipBlank(); err != nil {
			return err
		}
		if s.peek() == '/' {
			s.advance()
			at := s.position()
			denom, err := s.scanInt()
			if err != nil {
				return err
			}
			if denom != 8 {
				return s.errorAt(at, "delta step denominator must be 8")
			}
		}
		if err = s.expect(')'); err != nil {
			return err
		}
		t.Deltas = append(t.Deltas, d)
	}
}

// stackItems parses a (possibly empty) sequence of comma-prefixed stack
// items and variable bindings.
func (s *scanner) stackItems(t *Token) error {
	for {
		if err := s.skipBlank(); err != nil {
			return err
		}
		if s.peek() != ',' {
			return nil
		}
		s.advance()
		if err := s.skipBlank(); err != nil {
			return err
		}
		switch c := s.peek(); {
		case c == '*':
			s.advance()
			t.Stack = append(t.Stack, StackItem{Kind: Wildcard})
		case c == '-' || c == '+' || isDigit(c):
			n, err := s.scanInt()
			if err != nil {
				return err
			}
			t.Stack = append(t.Stack, Int(n))
		case c == '(':
			bnd, err := s.binding()
			if err != nil {
				return err
			}
			t.Bindings = append(t.Bindings, bnd)
		case c != '_' && isIdentRune(c) && !isDigit(c):
			t.Stack = append(t.Stack, StackItem{Kind: Variable, Name: s.scanIdent()})
		default:
			return s.errorf("expected stack item, found %s", s.describe())
		}
	}
}

// binding parses "(Var=#Label)".
func (s *scanner) binding() (Binding, error) {
	var bnd Binding
	s.advance() // '('
	if err := s.skipBlank(); err != nil {
		return bnd, err
	}
	if bnd.Var = s.scanIdent(); bnd.Var == "" {
		return bnd, s.errorf("expected variable name, found %s", s.describe())
	}
	if err := s.expect('='); err != nil {
		return bnd, err
	}
	if err := s.expect('#'); err != nil {
		return bnd, err
	}
	if bnd.Label = s.scanIdent(); bnd.Label == "" {
		return bnd, s.errorf("expected label name, found %s", s.describe())
	}
	err := s.expect(')')
	return bnd, err
}
