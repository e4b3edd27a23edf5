package vttbuild

import (
	"context"
	"errors"

	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
	"github.com/npillmayer/vttc/core/font/truetype/vttsrc"
	"github.com/npillmayer/vttc/core/font/truetype/vttxform"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Output is the result of compiling the VTT sources of a font.
type Output struct {
	ControlValues []int16                     // from the control program
	Programs      map[string]string           // canonical assembly of "prep" and "fpgm"
	Glyphs        map[string]*vttxform.Result // compiled glyph programs
	Regenerated   map[string]string           // glyph programs with regenerated composite info
	Failures      []*GlyphError               // glyphs which did not compile, in glyph order
}

// Compile compiles the VTT sources of a font: the control values, the
// extra programs and every glyph program of a glyph in the glyph order of
// geom.
//
// Errors in the control program or in extra programs are fatal. Errors in
// glyph programs are collected in Output.Failures. A required program
// which is present but compiles to nothing is an *EmptyProgramError;
// a required program which is absent is not an error.
func Compile(ctx context.Context, src Sources, geom Geometry, options ...Option) (*Output, error) {
	if geom == nil {
		return nil, core.Error(core.EMISSING, "no glyph geometry; not a TrueType font")
	}
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}
	out := &Output{
		Programs:    make(map[string]string),
		Glyphs:      make(map[string]*vttxform.Result),
		Regenerated: make(map[string]string),
	}
	if cvt, ok := src.ExtraProgram("cvt"); ok {
		values, err := vttsrc.ControlValues(cvt)
		if err != nil {
			return nil, &GlyphError{Glyph: "cvt", Extra: true, Err: err}
		}
		out.ControlValues = values
	}
	for _, tag := range []string{"prep", "fpgm"} {
		program, ok := src.ExtraProgram(tag)
		if !ok {
			continue
		}
		r, err := vttxform.Transform(program)
		if err != nil {
			return nil, &GlyphError{Glyph: tag, Extra: true, Err: err}
		}
		if r.Empty() && opts.required(tag) {
			return nil, &EmptyProgramError{Program: tag}
		}
		out.Programs[tag] = r.Text
	}
	var names []string
	var programs []string
	for _, name := range geom.GlyphOrder().Names() {
		if p, ok := src.GlyphProgram(name); ok {
			names = append(names, name)
			programs = append(programs, p)
		}
	}
	results, err := compileGlyphs(ctx, names, programs, geom, opts)
	if err != nil {
		return nil, err
	}
	for i, r := range results {
		if r.err != nil {
			out.Failures = append(out.Failures, &GlyphError{Glyph: names[i], Err: r.err})
			continue
		}
		out.Glyphs[names[i]] = r.result
		if r.regenerated != "" {
			out.Regenerated[names[i]] = r.regenerated
		}
	}
	tracer().Infof("compiled %d glyph programs, %d failures", len(out.Glyphs), len(out.Failures))
	return out, nil
}

type glyphResult struct {
	result      *vttxform.Result
	regenerated string
	err         error
}

// compileGlyphs compiles glyph programs in parallel, with at most
// opts.Workers compilations at a time. Results are in the order of names.
func compileGlyphs(ctx context.Context, names, programs []string, geom Geometry,
	opts *Options) ([]glyphResult, error) {
	//
	results := make([]glyphResult, len(names))
	sem := semaphore.NewWeighted(int64(opts.Workers))
	g, gctx := errgroup.WithContext(ctx)
	for i := range names {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			defer sem.Release(1)
			results[i] = compileGlyph(names[i], programs[i], geom, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "compilation canceled")
	}
	return results, nil
}

// compileGlyph transforms a glyph program and checks its composite info.
func compileGlyph(name, program string, geom Geometry, opts *Options) glyphResult {
	r, err := vttxform.Transform(program)
	if err != nil {
		tracer().Errorf("glyph %s: %v", name, err)
		return glyphResult{err: err}
	}
	if r.Empty() && len(r.Components) == 0 && opts.required(name) {
		return glyphResult{err: &EmptyProgramError{Program: name}}
	}
	if len(r.Components) == 0 {
		return glyphResult{result: r}
	}
	glyf, err := geom.Components(name)
	if err != nil {
		return glyphResult{err: err}
	}
	err = vttcomp.Validate(name, glyf, r.Components, geom.GlyphOrder())
	var mismatch *vttcomp.ValidationError
	if err == nil || !errors.As(err, &mismatch) || !opts.Regenerate {
		return glyphResult{result: r, err: err}
	}
	tracer().Infof("regenerating composite info of glyph %s: %v", name, err)
	program, err = vttcomp.Regenerate(glyf, geom.GlyphOrder(), program, opts.Version)
	if err != nil {
		return glyphResult{err: err}
	}
	if r, err = vttxform.Transform(program); err != nil {
		return glyphResult{err: err}
	}
	if err = vttcomp.Validate(name, glyf, r.Components, geom.GlyphOrder()); err != nil {
		return glyphResult{err: err}
	}
	return glyphResult{result: r, regenerated: program}
}

// UpdateComposites rewrites the composite info in the glyph programs of
// composite glyphs from the components in the font. If glyphs is empty,
// all glyphs are considered. Glyphs which are not composite are skipped.
// It returns the names of the glyphs whose program changed.
func UpdateComposites(src MutableSources, geom Geometry, glyphs []string, version int) ([]string, error) {
	if len(glyphs) == 0 {
		glyphs = geom.GlyphOrder().Names()
	}
	var changed []string
	for _, name := range glyphs {
		glyf, err := geom.Components(name)
		if err != nil {
			return changed, err
		}
		if len(glyf) == 0 {
			continue
		}
		program, ok := src.GlyphProgram(name)
		if !ok {
			return changed, core.Error(core.EMISSING, "glyph program missing: '%s'", name)
		}
		updated, err := vttcomp.Regenerate(glyf, geom.GlyphOrder(), program, version)
		if err != nil {
			return changed, &GlyphError{Glyph: name, Err: err}
		}
		if updated != program {
			src.SetGlyphProgram(name, updated)
			changed = append(changed, name)
		}
	}
	return changed, nil
}
