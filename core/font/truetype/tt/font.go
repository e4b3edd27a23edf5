package tt

import (
	"fmt"
)

// Tag identifies a font table.
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("glyf"))
func MakeTag(b []byte) Tag {
	if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter than 4 letters, it will be padded with spaces.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Font is a TrueType font, parsed as far as needed to access glyph data.
type Font struct {
	tables    map[Tag]binarySegm
	numGlyphs int
	longLoca  bool
	loca      binarySegm
	glyf      binarySegm
}

// Parse parses the table directory of a TrueType font and the tables
// needed to locate glyphs ('head', 'maxp', 'loca' and 'glyf').
// Checksums are not verified.
func Parse(font []byte) (*Font, error) {
	src := binarySegm(font)
	version, err := src.u32(0)
	if err != nil {
		return nil, errFontFormat("header too short")
	}
	if version != 0x00010000 && version != 0x74727565 { // 'true'
		return nil, errFontFormat(fmt.Sprintf("not a TrueType font: %08x", version))
	}
	count, _ := src.u16(4)
	f := &Font{tables: make(map[Tag]binarySegm, count)}
	// the offset table is followed by table records, 16 bytes each
	buf, err := src.view(12, 16*int(count))
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b := buf; len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		off, size := u32(b[8:12]), u32(b[12:16])
		if uint64(off)+uint64(size) > uint64(len(font)) {
			return nil, errFontFormat(fmt.Sprintf("table %s exceeds font data", tag))
		}
		f.tables[tag] = src[off : off+size]
	}
	tracer().Debugf("font has %d tables", len(f.tables))
	if err := f.locateGlyphs(); err != nil {
		return nil, err
	}
	return f, nil
}

// Table returns the data of a table, or nil if the font has no such table.
func (f *Font) Table(tag Tag) []byte {
	return f.tables[tag]
}

// NumGlyphs returns the number of glyphs, as stated in table 'maxp'.
func (f *Font) NumGlyphs() int {
	return f.numGlyphs
}

func (f *Font) locateGlyphs() error {
	head, ok := f.tables[T("head")]
	if !ok {
		return errFontFormat("missing table 'head'")
	}
	format, err := head.i16(50)
	if err != nil {
		return errFontFormat("table 'head' too short")
	}
	f.longLoca = format == 1
	maxp, ok := f.tables[T("maxp")]
	if !ok {
		return errFontFormat("missing table 'maxp'")
	}
	n, err := maxp.u16(4)
	if err != nil {
		return errFontFormat("table 'maxp' too short")
	}
	f.numGlyphs = int(n)
	if f.loca, ok = f.tables[T("loca")]; !ok {
		return errFontFormat("missing table 'loca'; no TrueType outlines")
	}
	if f.glyf, ok = f.tables[T("glyf")]; !ok {
		return errFontFormat("missing table 'glyf'; no TrueType outlines")
	}
	entrySize := 2
	if f.longLoca {
		entrySize = 4
	}
	if len(f.loca) < (f.numGlyphs+1)*entrySize {
		return errFontFormat("table 'loca' too short")
	}
	return nil
}

// glyphData returns the 'glyf' data of glyph gid, which is empty for glyphs
// without outline.
func (f *Font) glyphData(gid int) (binarySegm, error) {
	if gid < 0 || gid >= f.numGlyphs {
		return nil, errFontFormat(fmt.Sprintf("glyph index out of range: %d", gid))
	}
	var from, to int
	if f.longLoca {
		from, to = int(u32(f.loca[4*gid:])), int(u32(f.loca[4*gid+4:]))
	} else {
		from, to = 2*int(u16(f.loca[2*gid:])), 2*int(u16(f.loca[2*gid+2:]))
	}
	if from > to || to > len(f.glyf) {
		return nil, errFontFormat(fmt.Sprintf("invalid 'loca' entry for glyph %d", gid))
	}
	return f.glyf[from:to], nil
}
