package tt

import (
	"fmt"

	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype"
	"golang.org/x/image/font/sfnt"
)

// Geometry is the composite glyph geometry of a font, addressed by glyph
// name.
type Geometry struct {
	font  *Font
	order *truetype.GlyphOrder
}

// LoadGeometry parses a TrueType font and its glyph names.
func LoadGeometry(data []byte) (*Geometry, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	names, err := GlyphNames(data)
	if err != nil {
		return nil, err
	}
	return NewGeometry(f, truetype.NewGlyphOrder(names)), nil
}

// NewGeometry combines a parsed font with a glyph order.
func NewGeometry(f *Font, order *truetype.GlyphOrder) *Geometry {
	return &Geometry{font: f, order: order}
}

// GlyphNames returns the names of all glyphs, in glyph index order, as
// given by the font's 'post' table. Glyphs without a name are named
// "glyphNNNNN".
func GlyphNames(data []byte) ([]string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read glyph names")
	}
	var buf sfnt.Buffer
	names := make([]string, f.NumGlyphs())
	for i := range names {
		name, err := f.GlyphName(&buf, sfnt.GlyphIndex(i))
		if err != nil || name == "" {
			name = fmt.Sprintf("glyph%05d", i)
		}
		names[i] = name
	}
	return names, nil
}

// GlyphOrder returns the glyph order of the font.
func (g *Geometry) GlyphOrder() *truetype.GlyphOrder {
	return g.order
}

// Components returns the components of a glyph, or nil for a simple glyph.
func (g *Geometry) Components(glyph string) ([]truetype.GlyphComponent, error) {
	gid, ok := g.order.Index(glyph)
	if !ok {
		return nil, core.Error(core.EMISSING, "font has no glyph '%s'", glyph)
	}
	return g.font.Components(gid, g.order)
}
