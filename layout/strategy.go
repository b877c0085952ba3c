package layout

import "github.com/gogpu/canvas/geom"

// Strategy computes the geometry of a container from its members.
//
// Implementations are selected by composition: a Manager holds one Strategy
// and may be handed another at any time. [Base] provides the default clip
// path and reset policies, and [CalcBoundingBox] the default geometry.
type Strategy interface {
	// Type returns the tag identifying the strategy in serialized form.
	Type() string

	// CalcLayoutResult returns the new size and center of ctx.Target, or
	// nil to skip the layout.
	CalcLayoutResult(ctx *StrictContext, objects []Object) *StrategyResult

	// ShouldLayoutClipPath reports whether the container's clip path is
	// translated along with the members.
	ShouldLayoutClipPath(ctx *StrictContext) bool

	// ShouldResetTransform reports whether the container's transform is
	// reset after the layout.
	ShouldResetTransform(ctx *StrictContext) bool
}

// Base implements the clip path and reset policies shared by the built-in
// strategies. Embed it to inherit them.
//
// Base is not zero-size, so every strategy allocated with new gets its own
// address and a swap to a fresh instance of the same type is detected.
type Base struct {
	_ byte
}

// ShouldLayoutClipPath reports true after initialization when the container
// has a clip path that is positioned relative to it.
func (Base) ShouldLayoutClipPath(ctx *StrictContext) bool {
	if ctx.Type == TriggerInitialization {
		return false
	}
	clip := ctx.Target.ClipPath()
	return clip != nil && !clip.AbsolutePositioned()
}

// ShouldResetTransform reports true once a container has lost all of its
// members, so that an empty container collapses back to an identity
// transform.
func (Base) ShouldResetTransform(ctx *StrictContext) bool {
	return ctx.Type != TriggerInitialization && len(ctx.Target.Objects()) == 0
}

// ShouldPerformLayout is the default trigger filter: initialization and
// imperative requests are laid out, as is the first request after the
// strategy was swapped.
func ShouldPerformLayout(ctx *StrictContext) bool {
	switch ctx.Type {
	case TriggerInitialization, TriggerImperative:
		return true
	}
	return ctx.PrevStrategy != nil && ctx.Strategy != ctx.PrevStrategy
}

// InitialSizeFunc adjusts the size computed on initialization.
type InitialSizeFunc func(ctx *StrictContext, size, center geom.Point) geom.Point

// CalcBoundingBox fits the members' transformed extents.
//
// Imperative overrides are returned unchanged. With no members it returns
// nil. On initialization the center is left in the member plane, since the
// container has no transform yet; otherwise it is sent to the parent plane
// through the container's own matrix. initialSize may be nil.
func CalcBoundingBox(ctx *StrictContext, objects []Object, initialSize InitialSizeFunc) *StrategyResult {
	if ctx.Type == TriggerImperative && ctx.Overrides != nil {
		r := *ctx.Overrides
		return &r
	}
	if len(objects) == 0 {
		return nil
	}

	target := ctx.Target
	points := make([]geom.Point, 0, 2*len(objects))
	for _, obj := range objects {
		lo, hi := ObjectBounds(target, obj)
		points = append(points, lo, hi)
	}
	box := geom.BoundingBox(points)
	size, center := box.Size(), box.Center()

	if ctx.Type == TriggerInitialization {
		if initialSize != nil {
			size = initialSize(ctx, size, center)
		}
		return &StrategyResult{Center: center, Size: size}
	}
	return &StrategyResult{
		Center: target.OwnMatrix().TransformPoint(center),
		Size:   size,
	}
}

// ObjectBounds returns the top-left and bottom-right corners of the
// axis-aligned box enclosing obj, measured in the plane of target.
func ObjectBounds(target Target, obj Object) (lo, hi geom.Point) {
	center := obj.RelativeCenterPoint()
	t := geom.Identity()
	if p := obj.Parent(); p != nil && p != target {
		t = geom.PlaneChange(p.TransformMatrix(), target.TransformMatrix())
		center = t.TransformPoint(center)
	}
	dim := obj.Dimensions()
	half := geom.SizeAfterTransform(dim.X, dim.Y, t.Multiply(obj.OwnMatrix())).Div(2)
	return center.Sub(half), center.Add(half)
}
