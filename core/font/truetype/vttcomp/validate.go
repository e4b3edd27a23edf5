package vttcomp

import (
	"fmt"

	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype"
)

// Mismatch names the property in which VTT composite info and a font's
// glyph data disagree.
type Mismatch int8

// Kinds of mismatches between VTT components and glyph components.
const (
	CountMismatch Mismatch = iota + 1
	UnknownGlyph
	IndexMismatch
	TypeMismatch
	XOffsetMismatch
	YOffsetMismatch
	FirstPointMismatch
	SecondPointMismatch
	RoundToGridMismatch
	UseMyMetricsMismatch
	ScaledOffsetMismatch
	UnscaledOffsetMismatch
)

var mismatchNames = map[Mismatch]string{
	CountMismatch:          "component count",
	UnknownGlyph:           "base glyph",
	IndexMismatch:          "glyph index",
	TypeMismatch:           "component type",
	XOffsetMismatch:        "x offset",
	YOffsetMismatch:        "y offset",
	FirstPointMismatch:     "first point",
	SecondPointMismatch:    "second point",
	RoundToGridMismatch:    "ROUND_XY_TO_GRID",
	UseMyMetricsMismatch:   "USE_MY_METRICS",
	ScaledOffsetMismatch:   "SCALED_COMPONENT_OFFSET",
	UnscaledOffsetMismatch: "UNSCALED_COMPONENT_OFFSET",
}

func (m Mismatch) String() string {
	if s, ok := mismatchNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mismatch(%d)", int8(m))
}

// ValidationError reports a difference between the composite info of a VTT
// glyph program and the composite glyph in the font. Expected is the value
// found in the font, Found is the value declared in VTT.
type ValidationError struct {
	Glyph     string
	Component int // index of the component, -1 for count mismatches
	Kind      Mismatch
	Expected  interface{}
	Found     interface{}
}

func (e *ValidationError) Error() string {
	if e.Component < 0 {
		return fmt.Sprintf("%s mismatch for glyph '%s': glyf=%v, VTT=%v",
			e.Kind, e.Glyph, e.Expected, e.Found)
	}
	return fmt.Sprintf("%s mismatch for component %d of glyph '%s': glyf=%v, VTT=%v",
		e.Kind, e.Component, e.Glyph, e.Expected, e.Found)
}

// ErrorCode is part of interface core.AppError.
func (e *ValidationError) ErrorCode() int {
	return core.ECOMPOSITE
}

// UserMessage is part of interface core.AppError.
func (e *ValidationError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = &ValidationError{}

// Validate checks the components declared in the VTT program of a glyph
// against the components of the glyph in the font. It returns the first
// difference found as a *ValidationError.
func Validate(glyph string, glyf []truetype.GlyphComponent, comps []Component,
	order *truetype.GlyphOrder) error {
	//
	if len(glyf) != len(comps) {
		return &ValidationError{Glyph: glyph, Component: -1, Kind: CountMismatch,
			Expected: len(glyf), Found: len(comps)}
	}
	for i, gc := range glyf {
		if err := validateComponent(glyph, i, gc, comps[i], order); err != nil {
			tracer().Debugf("composite info of glyph %s: %v", glyph, err)
			return err
		}
	}
	return nil
}

func validateComponent(glyph string, i int, gc truetype.GlyphComponent, c Component,
	order *truetype.GlyphOrder) error {
	//
	mismatch := func(kind Mismatch, expected, found interface{}) error {
		return &ValidationError{Glyph: glyph, Component: i, Kind: kind,
			Expected: expected, Found: found}
	}
	gid, ok := order.Index(gc.BaseGlyph)
	if !ok {
		return mismatch(UnknownGlyph, gc.BaseGlyph, "?")
	}
	index, metrics, scaling := common(c)
	if gid != index {
		return mismatch(IndexMismatch, gid, index)
	}
	switch c := c.(type) {
	case AnchorComponent:
		if !gc.Anchored() {
			return mismatch(TypeMismatch, "OFFSET", "ANCHOR")
		}
		if gc.FirstPt != c.First {
			return mismatch(FirstPointMismatch, gc.FirstPt, c.First)
		}
		if gc.SecondPt != c.Second {
			return mismatch(SecondPointMismatch, gc.SecondPt, c.Second)
		}
	case OffsetComponent:
		if gc.Anchored() {
			return mismatch(TypeMismatch, "ANCHOR", "OFFSET")
		}
		if gc.X != c.X {
			return mismatch(XOffsetMismatch, gc.X, c.X)
		}
		if gc.Y != c.Y {
			return mismatch(YOffsetMismatch, gc.Y, c.Y)
		}
		if r := gc.Flags.Has(truetype.RoundXYToGrid); r != c.RoundToGrid {
			return mismatch(RoundToGridMismatch, r, c.RoundToGrid)
		}
	}
	if m := gc.Flags.Has(truetype.UseMyMetrics); m != metrics {
		return mismatch(UseMyMetricsMismatch, m, metrics)
	}
	if s := gc.Flags.Has(truetype.ScaledComponentOffset); s != (scaling == Scaled) {
		return mismatch(ScaledOffsetMismatch, s, scaling == Scaled)
	}
	if u := gc.Flags.Has(truetype.UnscaledComponentOffset); u != (scaling == Unscaled) {
		return mismatch(UnscaledOffsetMismatch, u, scaling == Unscaled)
	}
	return nil
}
