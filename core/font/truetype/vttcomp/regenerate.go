package vttcomp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype"
)

// ScaledOffsetVersion is the first VTT version knowing about scaled and
// unscaled component offsets.
const ScaledOffsetVersion = 6

// compositeInfoPattern matches lines of composite info pseudo-instructions,
// including their line terminator.
var compositeInfoPattern = regexp.MustCompile(`(?m)^(?:` +
	`USEMYMETRICS\[\]|` +
	`(?:UN)?SCALEDCOMPONENTOFFSET\[\]|` +
	`ANCHOR\[\](?:, *-?[0-9]+){3}|` +
	`OFFSET\[[rR]\](?:, *-?[0-9]+){3}` +
	`)(?:\r\n|[\r\n])?`)

// Regenerate rewrites the composite info in a VTT glyph program from the
// components of the glyph in the font. Existing composite info lines are
// removed from program, all other text is kept. The new block of
// pseudo-instructions is placed where the last of the removed lines was,
// or at the start of program if it contained no composite info.
//
// Scaled and unscaled component offsets are written only for VTT versions
// from ScaledOffsetVersion on.
func Regenerate(glyf []truetype.GlyphComponent, order *truetype.GlyphOrder,
	program string, version int) (string, error) {
	//
	var head strings.Builder
	last := 0
	for _, loc := range compositeInfoPattern.FindAllStringIndex(program, -1) {
		head.WriteString(program[last:loc[0]])
		last = loc[1]
	}
	tail := program[last:]
	block, err := compositeInfo(glyf, order, version)
	if err != nil {
		return "", err
	}
	return head.String() + block + tail, nil
}

// compositeInfo writes pseudo-instructions for a list of glyph components.
func compositeInfo(glyf []truetype.GlyphComponent, order *truetype.GlyphOrder,
	version int) (string, error) {
	//
	var b strings.Builder
	for _, gc := range glyf {
		gid, ok := order.Index(gc.BaseGlyph)
		if !ok {
			return "", core.Error(core.EMISSING, "base glyph '%s' not in glyph order", gc.BaseGlyph)
		}
		if gc.Flags.Has(truetype.UseMyMetrics) {
			b.WriteString("USEMYMETRICS[]\n")
		}
		if version >= ScaledOffsetVersion {
			if gc.Flags.Has(truetype.ScaledComponentOffset) {
				b.WriteString("SCALEDCOMPONENTOFFSET[]\n")
			}
			if gc.Flags.Has(truetype.UnscaledComponentOffset) {
				b.WriteString("UNSCALEDCOMPONENTOFFSET[]\n")
			}
		}
		if gc.Anchored() {
			fmt.Fprintf(&b, "ANCHOR[], %d, %d, %d\n", gid, gc.FirstPt, gc.SecondPt)
			continue
		}
		round := "r"
		if gc.Flags.Has(truetype.RoundXYToGrid) {
			round = "R"
		}
		fmt.Fprintf(&b, "OFFSET[%s], %d, %d, %d\n", round, gid, gc.X, gc.Y)
	}
	return b.String(), nil
}
