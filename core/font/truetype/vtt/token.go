package vtt

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenKind discriminates instructions from pragmas.
type TokenKind int8

// Kinds of tokens.
const (
	Instruction TokenKind = iota // MNEMONIC[flags], items
	Pragma                       // #IDENT, items
	LabelDef                     // #Label:
)

// Position is a location in VTT source, counting from 1.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a parsed VTT instruction, pragma or label definition.
// Tokens are not modified after parsing.
type Token struct {
	Kind     TokenKind
	Mnemonic string      // instruction mnemonic, or '#'-prefixed pragma/label name
	Letters  string      // flag letters as written in the source
	Flags    string      // encoded flag bits
	Stack    []StackItem // stack items, in source order
	Deltas   []Delta     // delta specifications of delta instructions
	Bindings []Binding   // jump variable bindings
	Pos      Position
}

// Canonical returns the instruction in canonical assembly form, i.e.
// the mnemonic followed by the encoded flags in brackets.
func (t Token) Canonical() string {
	return t.Mnemonic + "[" + t.Flags + "]"
}

// String returns the token in VTT source form.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Mnemonic)
	switch t.Kind {
	case LabelDef:
		b.WriteByte(':')
		return b.String()
	case Instruction:
		b.WriteByte('[')
		b.WriteString(t.Letters)
		for _, d := range t.Deltas {
			b.WriteString(d.String())
		}
		b.WriteByte(']')
	}
	for _, item := range t.Stack {
		b.WriteString(", ")
		b.WriteString(item.String())
	}
	for _, bnd := range t.Bindings {
		b.WriteString(", ")
		b.WriteString(bnd.String())
	}
	return b.String()
}

// ItemKind discriminates stack items.
type ItemKind int8

// Kinds of stack items.
const (
	Literal  ItemKind = iota // a signed integer
	Wildcard                 // '*', value supplied elsewhere
	Variable                 // a named jump offset
)

// StackItem is an operand of an instruction or pragma.
type StackItem struct {
	Kind  ItemKind
	Value int    // value of a literal
	Name  string // name of a variable
}

// Int creates a literal stack item.
func Int(n int) StackItem {
	return StackItem{Kind: Literal, Value: n}
}

func (item StackItem) String() string {
	switch item.Kind {
	case Wildcard:
		return "*"
	case Variable:
		return item.Name
	}
	return strconv.Itoa(item.Value)
}

// Delta is a delta specification (point @ppem step). The step is the
// number of 1/8 pixel units to move, in the range -8…8 without 0.
type Delta struct {
	Point int
	PPEM  int
	Step  int
}

func (d Delta) String() string {
	return fmt.Sprintf("(%d @%d %d)", d.Point, d.PPEM, d.Step)
}

// Binding binds a jump variable to the offset of a label, relative to
// the instruction carrying the binding.
type Binding struct {
	Var   string
	Label string
}

func (bnd Binding) String() string {
	return fmt.Sprintf("(%s=#%s)", bnd.Var, bnd.Label)
}
