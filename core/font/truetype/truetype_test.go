package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentFlags(t *testing.T) {
	f := ArgsAreXYValues | RoundXYToGrid | UseMyMetrics
	assert.True(t, f.Has(RoundXYToGrid))
	assert.False(t, f.Has(ScaledComponentOffset))
	assert.Equal(t, "ARGS_ARE_XY_VALUES|ROUND_XY_TO_GRID|USE_MY_METRICS", f.String())
	assert.Equal(t, "0", ComponentFlags(0).String())
}

func TestAnchoredComponent(t *testing.T) {
	c := GlyphComponent{BaseGlyph: "acute", Flags: 0, FirstPt: 3, SecondPt: 7}
	assert.True(t, c.Anchored())
	c.Flags = ArgsAreXYValues
	assert.False(t, c.Anchored())
}

func TestGlyphOrder(t *testing.T) {
	order := NewGlyphOrder([]string{".notdef", "A", "acute", "A"})
	i, ok := order.Index("acute")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	i, ok = order.Index("A")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = order.Index("B")
	assert.False(t, ok)
	assert.Equal(t, "acute", order.Name(2))
	assert.Equal(t, "", order.Name(9))
	assert.Equal(t, 4, order.Len())
	var none *GlyphOrder
	assert.Equal(t, 0, none.Len())
}
