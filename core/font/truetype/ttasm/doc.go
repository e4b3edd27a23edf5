/*
Package ttasm deals with the canonical text form of TrueType assembly,
i.e. the text a TrueType bytecode assembler consumes and a disassembler
produces.

Assembling text into bytecode is not done here. Clients plug in an
Assembler or Disassembler for that. Package ttasm knows how an assembler
lays out push instructions (EncodePush), which is enough to compute the
byte size of canonical instructions, and it pretty-prints disassembled
instruction lists (Format).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttasm

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vttc/core"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}

func errAssembly(x string) error {
	return core.Error(core.EINVALID, "TrueType assembly: %s", x)
}
