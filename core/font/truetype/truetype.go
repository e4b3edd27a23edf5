/*
Package truetype handles TrueType hinting programs written in the
Visual TrueType (VTT) assembly dialect.

Sub-packages parse VTT source (vtt), transform it into the canonical
assembly text of a TrueType bytecode assembler (vttxform), extract and
check composite glyph information (vttcomp), lay out push instructions
and pretty-print assembly (ttasm), read glyph geometry from font files
(tt), handle VTT source storage conventions (vttsrc) and compile whole
fonts (vttbuild).

This package holds the vocabulary shared between them: composite glyph
component flags, components as stored in a font's 'glyf' table, and the
glyph order of a font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package truetype

import (
	"fmt"
	"strings"
)

// --- Composite glyph flags -------------------------------------------------

// ComponentFlags is the flags field of a composite glyph component record
// in table 'glyf'.
type ComponentFlags uint16

// Flags of composite glyph components, see
// https://learn.microsoft.com/en-us/typography/opentype/spec/glyf#composite-glyph-description
const (
	Arg1And2AreWords        ComponentFlags = 0x0001
	ArgsAreXYValues         ComponentFlags = 0x0002
	RoundXYToGrid           ComponentFlags = 0x0004
	WeHaveAScale            ComponentFlags = 0x0008
	MoreComponents          ComponentFlags = 0x0020
	WeHaveAnXAndYScale      ComponentFlags = 0x0040
	WeHaveATwoByTwo         ComponentFlags = 0x0080
	WeHaveInstructions      ComponentFlags = 0x0100
	UseMyMetrics            ComponentFlags = 0x0200
	OverlapCompound         ComponentFlags = 0x0400
	ScaledComponentOffset   ComponentFlags = 0x0800
	UnscaledComponentOffset ComponentFlags = 0x1000
)

var flagNames = []struct {
	flag ComponentFlags
	name string
}{
	{Arg1And2AreWords, "ARG_1_AND_2_ARE_WORDS"},
	{ArgsAreXYValues, "ARGS_ARE_XY_VALUES"},
	{RoundXYToGrid, "ROUND_XY_TO_GRID"},
	{WeHaveAScale, "WE_HAVE_A_SCALE"},
	{MoreComponents, "MORE_COMPONENTS"},
	{WeHaveAnXAndYScale, "WE_HAVE_AN_X_AND_Y_SCALE"},
	{WeHaveATwoByTwo, "WE_HAVE_A_TWO_BY_TWO"},
	{WeHaveInstructions, "WE_HAVE_INSTRUCTIONS"},
	{UseMyMetrics, "USE_MY_METRICS"},
	{OverlapCompound, "OVERLAP_COMPOUND"},
	{ScaledComponentOffset, "SCALED_COMPONENT_OFFSET"},
	{UnscaledComponentOffset, "UNSCALED_COMPONENT_OFFSET"},
}

// Has is a predicate: are all bits of f set?
func (flags ComponentFlags) Has(f ComponentFlags) bool {
	return flags&f == f
}

func (flags ComponentFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if flags&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// --- Components ------------------------------------------------------------

// GlyphComponent is a component of a composite glyph, as stored in a
// font's 'glyf' table. Components are either positioned by an offset
// (X, Y) or by aligning a point of the composite (FirstPt) with a
// point of the component (SecondPt).
type GlyphComponent struct {
	BaseGlyph         string         // name of the referenced glyph
	Flags             ComponentFlags // flags of the component record
	X, Y              int            // offset, if not anchored
	FirstPt, SecondPt int            // point numbers, if anchored
}

// Anchored is a predicate: is this component positioned by matching points?
func (c GlyphComponent) Anchored() bool {
	return c.Flags&ArgsAreXYValues == 0
}

func (c GlyphComponent) String() string {
	if c.Anchored() {
		return fmt.Sprintf("<%s anchor %d→%d flags=%s>", c.BaseGlyph, c.FirstPt, c.SecondPt, c.Flags)
	}
	return fmt.Sprintf("<%s offset (%d,%d) flags=%s>", c.BaseGlyph, c.X, c.Y, c.Flags)
}

// --- Glyph order -----------------------------------------------------------

// GlyphOrder maps glyph names to glyph indices and vice versa.
type GlyphOrder struct {
	names []string
	index map[string]int
}

// NewGlyphOrder creates a glyph order from a list of glyph names, indexed
// by glyph ID. If a name occurs more than once, the first position wins.
func NewGlyphOrder(names []string) *GlyphOrder {
	order := &GlyphOrder{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, n := range order.names {
		if _, dup := order.index[n]; !dup {
			order.index[n] = i
		}
	}
	return order
}

// Index returns the glyph index of a glyph name.
func (order *GlyphOrder) Index(name string) (int, bool) {
	if order == nil {
		return 0, false
	}
	i, ok := order.index[name]
	return i, ok
}

// Name returns the name of glyph gid, or "" if out of range.
func (order *GlyphOrder) Name(gid int) string {
	if order == nil || gid < 0 || gid >= len(order.names) {
		return ""
	}
	return order.names[gid]
}

// Len returns the number of glyphs.
func (order *GlyphOrder) Len() int {
	if order == nil {
		return 0
	}
	return len(order.names)
}

// Names returns the glyph names in glyph order.
func (order *GlyphOrder) Names() []string {
	if order == nil {
		return nil
	}
	return append([]string(nil), order.names...)
}
