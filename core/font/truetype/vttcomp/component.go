package vttcomp

import (
	"fmt"
)

// Scaling states how a component's offset is to be scaled.
type Scaling int8

// Offset scaling of components.
const (
	DefaultScaling Scaling = iota // unspecified, rasterizer default
	Scaled                        // SCALEDCOMPONENTOFFSET[]
	Unscaled                      // UNSCALEDCOMPONENTOFFSET[]
)

func (s Scaling) String() string {
	switch s {
	case Scaled:
		return "scaled"
	case Unscaled:
		return "unscaled"
	}
	return "default"
}

// Component is a component of a composite glyph as declared in a VTT glyph
// program. It is either an OffsetComponent or an AnchorComponent.
type Component interface {
	isComponent()
}

// OffsetComponent is a component positioned by an offset, declared with
// OFFSET[R] or OFFSET[r].
type OffsetComponent struct {
	Index        int // glyph index of the base glyph
	X, Y         int
	RoundToGrid  bool
	UseMyMetrics bool
	Scaling      Scaling
}

func (OffsetComponent) isComponent() {}

func (c OffsetComponent) String() string {
	return fmt.Sprintf("OFFSET(%d, %d, %d round=%v metrics=%v %s)",
		c.Index, c.X, c.Y, c.RoundToGrid, c.UseMyMetrics, c.Scaling)
}

// AnchorComponent is a component positioned by matching point First of the
// composite with point Second of the component, declared with ANCHOR[].
type AnchorComponent struct {
	Index         int // glyph index of the base glyph
	First, Second int
	UseMyMetrics  bool
	Scaling       Scaling
}

func (AnchorComponent) isComponent() {}

func (c AnchorComponent) String() string {
	return fmt.Sprintf("ANCHOR(%d, %d, %d metrics=%v %s)",
		c.Index, c.First, c.Second, c.UseMyMetrics, c.Scaling)
}

// common returns the properties shared by both kinds of components.
func common(c Component) (index int, metrics bool, scaling Scaling) {
	switch c := c.(type) {
	case OffsetComponent:
		return c.Index, c.UseMyMetrics, c.Scaling
	case AnchorComponent:
		return c.Index, c.UseMyMetrics, c.Scaling
	}
	panic(fmt.Sprintf("unknown component type %T", c))
}
