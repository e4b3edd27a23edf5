package main

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype/tt"
	"github.com/npillmayer/vttc/core/font/truetype/vttsrc"
)

// loadGeometry loads a TrueType font, given either as a path or as the
// name of an installed font.
func loadGeometry(fontname string) (*tt.Geometry, error) {
	if fontname == "" {
		return nil, core.Error(core.EMISSING, "no font given; use flag --font")
	}
	path := fontname
	if _, err := os.Stat(path); err != nil {
		if path, err = findfont.Find(fontname); err != nil {
			return nil, core.WrapError(err, core.EMISSING, "font not found: %s", fontname)
		}
	}
	tracer().Infof("loading font %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font %s", path)
	}
	return tt.LoadGeometry(data)
}

// readProgram reads a VTT source file.
func readProgram(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot open %s", path)
	}
	defer f.Close()
	return vttsrc.Decode(f)
}
