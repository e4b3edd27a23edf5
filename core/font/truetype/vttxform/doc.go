/*
Package vttxform transforms VTT assembly into canonical TrueType assembly.

VTT assembly lets programmers write operands right after an instruction,
while TrueType bytecode expects all operands to be pushed to the stack
beforehand. The transformation collects operands into push scopes and
emits one coalesced PUSH per scope. Scopes are opened and closed with
the pragmas #BEGIN and #END; the outermost scope spans the whole
program. Pragmas #PUSHOFF and #PUSHON switch operand collection off and
on, #PUSH pushes its operands in place.

VTT pseudo-instructions are consumed by the transformation: composite
glyph info (OFFSET, ANCHOR and flags preceding them) is returned as a
list of components, OVERLAP is dropped. Delta instructions carry their
deltas in brackets; these are packed into push values and the
instruction is renamed to its canonical spelling.

Jump offsets may be written symbolically:

	#PUSH, Var1
	JMPR[], (Var1=#Label1)
	…
	#Label1:

After coalescing, a separate pass measures the byte size of every
instruction and replaces variables by the distance from the binding
instruction to the label.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package vttxform

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}

// StructuralError is returned for token streams which violate structural
// rules, e.g. unbalanced #BEGIN/#END or operands on instructions while
// operand collection is switched off.
type StructuralError struct {
	Pos      vtt.Position
	Mnemonic string
	Msg      string
}

func (e *StructuralError) Error() string {
	if e.Mnemonic == "" {
		return fmt.Sprintf("vtt: %s", e.Msg)
	}
	return fmt.Sprintf("vtt: line %d: %s: %s", e.Pos.Line, e.Mnemonic, e.Msg)
}

// ErrorCode is part of interface core.AppError.
func (e *StructuralError) ErrorCode() int {
	return core.ESTRUCTURE
}

// UserMessage is part of interface core.AppError.
func (e *StructuralError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = &StructuralError{}

func errStructure(t vtt.Token, format string, v ...interface{}) error {
	return &StructuralError{Pos: t.Pos, Mnemonic: t.Mnemonic, Msg: fmt.Sprintf(format, v...)}
}
