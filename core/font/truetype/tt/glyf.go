package tt

import (
	"fmt"

	"github.com/npillmayer/vttc/core/font/truetype"
)

// glyphHeaderSize is the size of a glyph header: numberOfContours followed
// by the bounding box.
const glyphHeaderSize = 10

// IsComposite returns true if glyph gid is made up of other glyphs.
func (f *Font) IsComposite(gid int) (bool, error) {
	data, err := f.glyphData(gid)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	n, err := data.i16(0)
	if err != nil {
		return false, errFontFormat(fmt.Sprintf("glyph %d: truncated header", gid))
	}
	return n < 0, nil
}

// Components decodes the component records of glyph gid. Glyphs which are
// not composite have no components. Base glyphs are named using order;
// glyphs without a name in order are named "glyphNNNNN".
func (f *Font) Components(gid int, order *truetype.GlyphOrder) ([]truetype.GlyphComponent, error) {
	composite, err := f.IsComposite(gid)
	if err != nil || !composite {
		return nil, err
	}
	data, _ := f.glyphData(gid)
	var comps []truetype.GlyphComponent
	pos := glyphHeaderSize
	for {
		c, next, err := decodeComponent(data, pos, order)
		if err != nil {
			return nil, errFontFormat(fmt.Sprintf("glyph %d, component %d: %v", gid, len(comps), err))
		}
		comps = append(comps, c)
		if !c.Flags.Has(truetype.MoreComponents) {
			break
		}
		pos = next
	}
	tracer().Debugf("glyph %d has %d components", gid, len(comps))
	return comps, nil
}

// decodeComponent decodes the component record starting at pos and
// returns the position of the next record.
func decodeComponent(data binarySegm, pos int, order *truetype.GlyphOrder) (truetype.GlyphComponent, int, error) {
	var c truetype.GlyphComponent
	flags, err := data.u16(pos)
	if err != nil {
		return c, 0, err
	}
	base, err := data.u16(pos + 2)
	if err != nil {
		return c, 0, err
	}
	c.Flags = truetype.ComponentFlags(flags)
	c.BaseGlyph = glyphName(int(base), order)
	pos += 4
	var arg1, arg2 int
	if c.Flags.Has(truetype.Arg1And2AreWords) {
		a, err := data.u16(pos)
		if err != nil {
			return c, 0, err
		}
		b, err := data.u16(pos + 2)
		if err != nil {
			return c, 0, err
		}
		if c.Flags.Has(truetype.ArgsAreXYValues) {
			arg1, arg2 = int(int16(a)), int(int16(b))
		} else {
			arg1, arg2 = int(a), int(b)
		}
		pos += 4
	} else {
		a, err := data.u8(pos)
		if err != nil {
			return c, 0, err
		}
		b, err := data.u8(pos + 1)
		if err != nil {
			return c, 0, err
		}
		if c.Flags.Has(truetype.ArgsAreXYValues) {
			arg1, arg2 = int(int8(a)), int(int8(b))
		} else {
			arg1, arg2 = int(a), int(b)
		}
		pos += 2
	}
	if c.Flags.Has(truetype.ArgsAreXYValues) {
		c.X, c.Y = arg1, arg2
	} else {
		c.FirstPt, c.SecondPt = arg1, arg2
	}
	switch { // transformation data is F2Dot14 and not needed here
	case c.Flags.Has(truetype.WeHaveAScale):
		pos += 2
	case c.Flags.Has(truetype.WeHaveAnXAndYScale):
		pos += 4
	case c.Flags.Has(truetype.WeHaveATwoByTwo):
		pos += 8
	}
	if pos > len(data) {
		return c, 0, errBufferBounds
	}
	return c, pos, nil
}

func glyphName(gid int, order *truetype.GlyphOrder) string {
	if name := order.Name(gid); name != "" {
		return name
	}
	return fmt.Sprintf("glyph%05d", gid)
}
