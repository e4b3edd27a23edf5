/*
Package vtt parses hinting programs written in VTT assembly, the dialect
of TrueType assembly used by Microsoft's Visual TrueType.

A VTT program is a sequence of instructions, pragmas and block comments
in C style, which Parse discards:

	#PUSHOFF
	SVTCA[Y]
	MIAP[R], 5, 2
	DLTP1[(17 @9 -8/8)(17 @10 2)]
	#PUSH, 1, Var1
	#Label1:
	JMPR[], (Var1=#Label1)

Instructions carry flag letters between brackets, which are encoded to
binary digits through a fixed table (see EncodeFlags). Delta instructions
carry delta specifications instead of flag letters. Stack items follow an
instruction, separated by commas; a stack item is a signed integer, the
wildcard '*' or the name of a jump variable.

Parse does not interpret instructions: any upper-case mnemonic is
accepted, leaving it to the bytecode assembler to reject unknown ones.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package vtt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}
