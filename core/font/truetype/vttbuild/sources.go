package vttbuild

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype"
	"github.com/npillmayer/vttc/core/font/truetype/vttsrc"
)

// Sources gives access to the VTT sources of a font.
type Sources interface {
	ExtraProgram(tag string) (string, bool)  // "cvt", "ppgm" or "fpgm"
	GlyphProgram(glyph string) (string, bool) // glyph program by glyph name
}

// MutableSources are sources which accept changed glyph programs.
type MutableSources interface {
	Sources
	SetGlyphProgram(glyph string, program string)
}

// Geometry gives access to the glyphs of a font.
type Geometry interface {
	GlyphOrder() *truetype.GlyphOrder
	Components(glyph string) ([]truetype.GlyphComponent, error)
}

// ExtraTag maps the name of an extra program to the tag it is stored
// under: "prep" is stored as "ppgm" and "cvt " as "cvt".
func ExtraTag(name string) string {
	name = strings.TrimSpace(name)
	if name == "prep" {
		return "ppgm"
	}
	return name
}

// MapSources holds VTT sources in memory.
type MapSources struct {
	Extra  map[string]string // extra programs by tag
	Glyphs map[string]string // glyph programs by glyph name
}

// NewMapSources creates an empty set of sources.
func NewMapSources() *MapSources {
	return &MapSources{
		Extra:  make(map[string]string),
		Glyphs: make(map[string]string),
	}
}

// ExtraProgram is part of interface Sources.
func (s *MapSources) ExtraProgram(tag string) (string, bool) {
	p, ok := s.Extra[ExtraTag(tag)]
	return p, ok
}

// GlyphProgram is part of interface Sources.
func (s *MapSources) GlyphProgram(glyph string) (string, bool) {
	p, ok := s.Glyphs[glyph]
	return p, ok
}

// SetGlyphProgram is part of interface MutableSources.
func (s *MapSources) SetGlyphProgram(glyph string, program string) {
	s.Glyphs[glyph] = program
}

// Source files have this suffix.
const Suffix = ".vtt"

// LoadSources reads VTT sources from a file system. Extra programs are
// stored as "cvt.vtt", "ppgm.vtt" (or "prep.vtt") and "fpgm.vtt" at the
// root, glyph programs as "glyphs/NAME.vtt".
func LoadSources(fsys fs.FS) (*MapSources, error) {
	src := NewMapSources()
	for _, tag := range []string{"cvt", "ppgm", "prep", "fpgm"} {
		p, err := readSource(fsys, tag+Suffix)
		if err != nil {
			if core.Code(err) == core.EMISSING {
				continue
			}
			return nil, err
		}
		src.Extra[ExtraTag(tag)] = p
	}
	files, err := fs.Glob(fsys, "glyphs/*"+Suffix)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot list glyph programs")
	}
	for _, f := range files {
		p, err := readSource(fsys, f)
		if err != nil {
			return nil, err
		}
		src.Glyphs[strings.TrimSuffix(path.Base(f), Suffix)] = p
	}
	tracer().Infof("loaded %d extra and %d glyph programs", len(src.Extra), len(src.Glyphs))
	return src, nil
}

func readSource(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", core.WrapError(err, core.EMISSING, "no source %s", name)
	} else if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot open %s", name)
	}
	defer f.Close()
	p, err := vttsrc.Decode(f)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot read %s", name)
	}
	return p, nil
}
