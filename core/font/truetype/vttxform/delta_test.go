package vttxform

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tt "github.com/npillmayer/vttc/core/font/truetype"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	for step, sel := range map[int]int{-8: 0, -1: 7, 1: 8, 8: 15, 2: 9, -4: 4} {
		assert.Equal(t, sel, selector(step), "step %d", step)
	}
}

func TestPackDeltas(t *testing.T) {
	values, err := packDeltas("DLTP1", []vtt.Delta{{Point: 5, PPEM: 3, Step: 8}, {Point: 6, PPEM: 2, Step: -1}, {Point: 5, PPEM: 3, Step: -8}, {Point: 5, PPEM: 1, Step: 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{39, 6, 25, 5, 48, 5, 63, 5, 4}, values)
	values, err = packDeltas("DELTAP1", []vtt.Delta{{Point: 5, PPEM: 12, Step: 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{56, 5, 1}, values)
	assert.Equal(t, "DELTAC3", canonicalDelta("DLTC3"))
	assert.Equal(t, "DELTAP2", canonicalDelta("DELTAP2"))
}

func sortDeltas(deltas []vtt.Delta) []vtt.Delta {
	sorted := append([]vtt.Delta(nil), deltas...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Point != b.Point {
			return a.Point < b.Point
		}
		if a.PPEM != b.PPEM {
			return a.PPEM < b.PPEM
		}
		return a.Step < b.Step
	})
	return sorted
}

func TestDeltaRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	relative := []vtt.Delta{
		{Point: 12, PPEM: 0, Step: -8}, {Point: 12, PPEM: 15, Step: 8}, {Point: 3, PPEM: 4, Step: 1}, {Point: 12, PPEM: 7, Step: -1}, {Point: 3, PPEM: 4, Step: -1}, {Point: 40, PPEM: 9, Step: 3}, {Point: 3, PPEM: 2, Step: 5},
	}
	shifted := make([]vtt.Delta, len(relative))
	for i, d := range relative {
		shifted[i] = vtt.Delta{Point: d.Point, PPEM: d.PPEM + deltaBase, Step: d.Step}
	}
	for _, family := range []struct {
		mnemonic string
		deltas   []vtt.Delta
	}{
		{"DLTP1", relative}, {"DLTC2", relative}, {"DELTAP3", shifted}, {"DELTAC1", shifted},
	} {
		values, err := packDeltas(family.mnemonic, family.deltas)
		require.NoError(t, err, family.mnemonic)
		for i := 0; i < len(values)-1; i += 2 {
			assert.True(t, values[i] >= 0 && values[i] <= 255, "packed value %d", values[i])
		}
		decoded, err := DecodeDeltas(family.mnemonic, values)
		require.NoError(t, err)
		assert.Equal(t, sortDeltas(family.deltas), sortDeltas(decoded), family.mnemonic)
	}
	_, err := DecodeDeltas("DLTP1", []int{1, 2, 2})
	assert.Error(t, err)
	_, err = DecodeDeltas("DLTP1", nil)
	assert.Error(t, err)
}

// Regenerated composite info transforms into components which validate
// against the glyph data they were generated from.
func TestRegeneratedComponentsValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	order := tt.NewGlyphOrder([]string{".notdef", "A", "acute", "Aacute"})
	glyf := []tt.GlyphComponent{
		{BaseGlyph: "A", Flags: tt.ArgsAreXYValues | tt.RoundXYToGrid | tt.UseMyMetrics},
		{BaseGlyph: "acute", Flags: tt.ScaledComponentOffset, FirstPt: 30, SecondPt: 2},
	}
	program, err := vttcomp.Regenerate(glyf, order, "SVTCA[Y]\nMDAP[R], 3\n", vttcomp.ScaledOffsetVersion)
	require.NoError(t, err)
	comps, err := Components(program)
	require.NoError(t, err)
	assert.NoError(t, vttcomp.Validate("Aacute", glyf, comps, order))
	r, err := Transform(program)
	require.NoError(t, err)
	assert.Equal(t, "PUSH[] 3\nANCHOR[]\nSVTCA[0]\nMDAP[1]", r.Text)
}
