package layout

import "github.com/gogpu/canvas/geom"

// FixedType is the serialized tag of [Fixed].
const FixedType = "fixed"

// Fixed keeps the container's explicit size. It lays out on
// initialization, on imperative requests and right after being swapped in;
// member changes leave the container alone.
type Fixed struct {
	Base
}

// NewFixed returns a Fixed strategy.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Type implements Strategy.
func (*Fixed) Type() string { return FixedType }

// CalcLayoutResult implements Strategy.
func (*Fixed) CalcLayoutResult(ctx *StrictContext, objects []Object) *StrategyResult {
	if !ShouldPerformLayout(ctx) {
		return nil
	}
	return CalcBoundingBox(ctx, objects, fixedInitialSize)
}

// fixedInitialSize prefers the dimensions the container was created with.
func fixedInitialSize(ctx *StrictContext, size, _ geom.Point) geom.Point {
	dim := ctx.Target.Dimensions()
	if dim.X != 0 {
		size.X = dim.X
	}
	if dim.Y != 0 {
		size.Y = dim.Y
	}
	return size
}
