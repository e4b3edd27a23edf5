/*
Package tt reads glyph geometry from TrueType fonts.

Package tt is a small, read-only SFNT reader. It exposes the table
directory of a font and decodes the components of composite glyphs from
tables 'loca' and 'glyf', which is what checking VTT composite info
needs. Glyph names are taken from the font's 'post' table with the help
of golang.org/x/image/font/sfnt.

Outlines of simple glyphs are not decoded.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package tt

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vttc/core"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "TrueType font format: %s", x)
}
