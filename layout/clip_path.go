package layout

import "github.com/gogpu/canvas/geom"

// ClipPathType is the serialized tag of [ClipPath].
const ClipPathType = "clip-path"

// ClipPath sizes the container to its clip path. Containers without a clip
// path are not laid out.
type ClipPath struct {
	Base
}

// NewClipPath returns a ClipPath strategy.
func NewClipPath() *ClipPath {
	return &ClipPath{}
}

// Type implements Strategy.
func (*ClipPath) Type() string { return ClipPathType }

// ShouldLayoutClipPath implements Strategy. The clip path defines the
// layout, so it is never moved by it.
func (*ClipPath) ShouldLayoutClipPath(*StrictContext) bool { return false }

// CalcLayoutResult implements Strategy.
func (*ClipPath) CalcLayoutResult(ctx *StrictContext, objects []Object) *StrategyResult {
	if ctx.Type == TriggerImperative && ctx.Overrides != nil {
		r := *ctx.Overrides
		return &r
	}
	target := ctx.Target
	clip := target.ClipPath()
	if clip == nil || !ShouldPerformLayout(ctx) {
		return nil
	}

	lo, hi := ObjectBounds(target, clip)
	size := geom.BoundingBox([]geom.Point{lo, hi}).Size()

	if clip.AbsolutePositioned() {
		// Absolute clip paths live in the canvas plane.
		center := clip.RelativeCenterPoint()
		if p := target.Parent(); p != nil {
			center = p.TransformMatrix().Invert().TransformPoint(center)
		}
		return &StrategyResult{Center: center, Size: size}
	}

	clipCenter := target.OwnMatrix().TransformVector(clip.RelativeCenterPoint())
	var center, correction geom.Point
	if fit := CalcBoundingBox(ctx, objects, nil); fit != nil {
		center, correction = fit.Center, fit.Correction
	}
	return &StrategyResult{
		Center:     center.Add(clipCenter),
		Correction: correction.Sub(clipCenter),
		Size:       size,
	}
}
