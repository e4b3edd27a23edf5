/*
Package vttcomp handles composite glyph information in VTT glyph programs.

VTT keeps the component structure of a composite glyph in its glyph
program, with pseudo-instructions which have no bytecode representation:

	USEMYMETRICS[]
	SCALEDCOMPONENTOFFSET[]
	OFFSET[R], 12, 0, 0
	ANCHOR[], 13, 32, 4

Transforming a glyph program extracts these into Components. Validate
compares them with the composite glyph as stored in the font, Regenerate
rewrites them from the font's data.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package vttcomp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}
