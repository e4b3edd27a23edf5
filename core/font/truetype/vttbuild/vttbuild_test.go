package vttbuild

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGeometry is a font with glyphs A, acute and the composite Aacute.
type testGeometry struct {
	order *truetype.GlyphOrder
	comps map[string][]truetype.GlyphComponent
}

func newTestGeometry() *testGeometry {
	flags := truetype.ArgsAreXYValues | truetype.RoundXYToGrid
	return &testGeometry{
		order: truetype.NewGlyphOrder([]string{".notdef", "A", "acute", "Aacute"}),
		comps: map[string][]truetype.GlyphComponent{
			"Aacute": {
				{BaseGlyph: "A", Flags: flags | truetype.MoreComponents},
				{BaseGlyph: "acute", Flags: flags, X: 100, Y: 200},
			},
		},
	}
}

func (g *testGeometry) GlyphOrder() *truetype.GlyphOrder {
	return g.order
}

func (g *testGeometry) Components(glyph string) ([]truetype.GlyphComponent, error) {
	if _, ok := g.order.Index(glyph); !ok {
		return nil, core.Error(core.EMISSING, "no glyph '%s'", glyph)
	}
	return g.comps[glyph], nil
}

const (
	aacute    = "OFFSET[R], 1, 0, 0\nOFFSET[R], 2, 100, 200\nSVTCA[Y]\n"
	aacuteBad = "OFFSET[R], 1, 0, 0\nOFFSET[R], 2, 100, 210\nSVTCA[Y]\n"
)

func testSources() *MapSources {
	src := NewMapSources()
	src.Extra["cvt"] = "0: 100\n1: -5\n"
	src.Extra["ppgm"] = "SVTCA[X]\n"
	src.Extra["fpgm"] = "#PUSH, 0\nFDEF[]\nENDF[]\n"
	src.Glyphs["A"] = "SVTCA[Y]\nMDAP[R], 1\n"
	src.Glyphs["acute"] = "MDAP[R"
	src.Glyphs["Aacute"] = aacute
	src.Glyphs["unused"] = "SVTCA[X]\n"
	return src
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	out, err := Compile(context.Background(), testSources(), newTestGeometry())
	require.NoError(t, err)
	assert.Equal(t, []int16{100, -5}, out.ControlValues)
	assert.Equal(t, "SVTCA[1]", out.Programs["prep"])
	assert.Equal(t, "PUSH[] 0\nFDEF[]\nENDF[]", out.Programs["fpgm"])
	assert.Equal(t, "PUSH[] 1\nSVTCA[0]\nMDAP[1]", out.Glyphs["A"].Text)
	assert.Len(t, out.Glyphs["Aacute"].Components, 2)
	assert.NotContains(t, out.Glyphs, "unused")
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "acute", out.Failures[0].Glyph)
	var perr *vtt.ParseError
	assert.True(t, errors.As(out.Failures[0], &perr))
	assert.Equal(t, core.ESYNTAX, core.Code(out.Failures[0]))
	assert.Empty(t, out.Regenerated)
}

func TestCompileWorkers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	one, err := Compile(context.Background(), testSources(), newTestGeometry(), Workers(1))
	require.NoError(t, err)
	many, err := Compile(context.Background(), testSources(), newTestGeometry(), Workers(16))
	require.NoError(t, err)
	assert.Equal(t, one, many)
}

func TestCompileCompositeMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	src := testSources()
	src.Glyphs["Aacute"] = aacuteBad
	out, err := Compile(context.Background(), src, newTestGeometry())
	require.NoError(t, err)
	require.Len(t, out.Failures, 2)
	assert.Equal(t, "Aacute", out.Failures[1].Glyph)
	var verr *vttcomp.ValidationError
	require.True(t, errors.As(out.Failures[1], &verr))
	assert.Equal(t, vttcomp.YOffsetMismatch, verr.Kind)
	assert.Equal(t, 1, verr.Component)
	//
	out, err = Compile(context.Background(), src, newTestGeometry(), Regenerate(true))
	require.NoError(t, err)
	assert.Len(t, out.Failures, 1)
	assert.Equal(t, aacute, out.Regenerated["Aacute"])
	assert.Contains(t, out.Glyphs, "Aacute")
}

func TestCompileRequired(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	src := testSources()
	src.Extra["fpgm"] = "/* nothing to do */\n"
	_, err := Compile(context.Background(), src, newTestGeometry())
	var eerr *EmptyProgramError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, "fpgm", eerr.Program)
	assert.Equal(t, core.EEMPTY, core.Code(err))
	//
	delete(src.Extra, "fpgm")
	_, err = Compile(context.Background(), src, newTestGeometry())
	assert.NoError(t, err, "absent required program is not an error")
	//
	src.Extra["fpgm"] = "/* nothing to do */\n"
	src.Glyphs["A"] = ""
	out, err := Compile(context.Background(), src, newTestGeometry(), Require("A"))
	require.NoError(t, err)
	require.Len(t, out.Failures, 2)
	assert.Equal(t, "A", out.Failures[0].Glyph)
	assert.Equal(t, core.EEMPTY, core.Code(out.Failures[0]))
}

func TestCompileFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	src := testSources()
	src.Extra["ppgm"] = "#BEGIN\nSVTCA[X]\n"
	_, err := Compile(context.Background(), src, newTestGeometry())
	var gerr *GlyphError
	require.True(t, errors.As(err, &gerr))
	assert.True(t, gerr.Extra)
	assert.Equal(t, "prep", gerr.Glyph)
	assert.Equal(t, core.ESTRUCTURE, core.Code(err))
	//
	src = testSources()
	src.Extra["cvt"] = "0: 99999"
	_, err = Compile(context.Background(), src, newTestGeometry())
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	_, err = Compile(context.Background(), src, nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Compile(ctx, testSources(), newTestGeometry())
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		"vtt.workers":    2,
		"vtt.regenerate": "true",
		"vtt.require":    "fpgm, prep,",
	}
	opts := defaultOptions()
	OptionsFromConfig(conf)(opts)
	assert.Equal(t, &Options{Workers: 2, Version: 6, Regenerate: true,
		Require: []string{"fpgm", "prep"}}, opts)
	opts = defaultOptions()
	OptionsFromConfig(testconfig.Conf{"vtt.workers": 0})(opts)
	assert.Equal(t, 4, opts.Workers)
}

func TestUpdateComposites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	src := testSources()
	src.Glyphs["Aacute"] = aacuteBad
	changed, err := UpdateComposites(src, newTestGeometry(), nil, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aacute"}, changed)
	assert.Equal(t, aacute, src.Glyphs["Aacute"])
	changed, err = UpdateComposites(src, newTestGeometry(), []string{"Aacute"}, 6)
	require.NoError(t, err)
	assert.Empty(t, changed)
	//
	delete(src.Glyphs, "Aacute")
	_, err = UpdateComposites(src, newTestGeometry(), nil, 6)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = UpdateComposites(src, newTestGeometry(), []string{"B"}, 6)
	assert.Error(t, err)
}

func TestLoadSources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"cvt.vtt":          {Data: []byte("0: 10\r1: 20\r")},
		"prep.vtt":         {Data: []byte("SVTCA[X]\r")},
		"glyphs/A.vtt":     {Data: []byte("\ufeffSVTCA[Y]\r\nIUP[Y]\r\n")},
		"glyphs/notes.txt": {Data: []byte("ignored")},
	}
	src, err := LoadSources(fsys)
	require.NoError(t, err)
	p, ok := src.ExtraProgram("cvt ")
	assert.True(t, ok)
	assert.Equal(t, "0: 10\n1: 20\n", p)
	p, ok = src.ExtraProgram("prep")
	assert.True(t, ok)
	assert.Equal(t, "SVTCA[X]\n", p)
	_, ok = src.ExtraProgram("fpgm")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"A": "SVTCA[Y]\nIUP[Y]\n"}, src.Glyphs)
}
