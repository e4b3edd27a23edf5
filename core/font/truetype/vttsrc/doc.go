/*
Package vttsrc handles VTT source programs as VTT stores them.

VTT keeps its sources in private font tables, UTF-8 encoded, with
Macintosh line endings (CR). Decode and Encode convert between the stored
form and text with LF line endings. Normalize strips volatile comments
(timestamps, glyph indices) which would otherwise make every save of a
font produce differences. ControlValues reads the control value table
from VTT's control program.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package vttsrc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}
