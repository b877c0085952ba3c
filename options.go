package canvas

import "github.com/gogpu/canvas/geom"

// Option configures an object's geometry. Options are accepted by the
// constructors and by [Object.Set].
//
// Example:
//
//	r := canvas.NewRect(
//	    canvas.WithPosition(10, 10),
//	    canvas.WithSize(40, 20),
//	    canvas.WithAngle(30),
//	)
type Option func(*Object)

// WithPosition sets the left/top position in the parent plane.
func WithPosition(left, top float64) Option {
	return func(o *Object) {
		o.left, o.top = left, top
	}
}

// WithSize sets the untransformed width and height.
func WithSize(width, height float64) Option {
	return func(o *Object) {
		o.width, o.height = width, height
	}
}

// WithScale sets the horizontal and vertical scale factors.
func WithScale(x, y float64) Option {
	return func(o *Object) {
		o.scaleX, o.scaleY = x, y
	}
}

// WithAngle sets the rotation in degrees, clockwise.
func WithAngle(degrees float64) Option {
	return func(o *Object) {
		o.angle = degrees
	}
}

// WithSkew sets the skew angles in degrees.
func WithSkew(x, y float64) Option {
	return func(o *Object) {
		o.skewX, o.skewY = x, y
	}
}

// WithFlip mirrors the object horizontally and/or vertically.
func WithFlip(x, y bool) Option {
	return func(o *Object) {
		o.flipX, o.flipY = x, y
	}
}

// WithOrigin sets which point of the object left/top refer to.
func WithOrigin(x, y geom.Origin) Option {
	return func(o *Object) {
		o.originX, o.originY = x, y
	}
}

// WithAbsolutePositioned marks a clip path as positioned in the canvas
// plane instead of its owner's plane.
func WithAbsolutePositioned(v bool) Option {
	return func(o *Object) {
		o.absolutePositioned = v
	}
}
