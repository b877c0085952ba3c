package canvas

import (
	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/layout"
)

// Shape is any object that can be placed on the canvas or in a group.
// It is implemented by [Rect], [Text] and [Group].
type Shape interface {
	layout.Object

	object() *Object
}

// Object holds the state shared by every shape: geometry relative to the
// parent plane, the parent group and event subscribers.
//
// Object is embedded by concrete shapes and is not used on its own.
type Object struct {
	event.Emitter

	left, top     float64
	width, height float64
	scaleX        float64
	scaleY        float64
	angle         float64
	skewX, skewY  float64
	flipX, flipY  bool

	originX, originY geom.Origin

	absolutePositioned bool

	// owner is the concrete shape embedding this Object.
	owner Shape
	group *Group

	dirty  bool
	coords [4]geom.Point
}

func (o *Object) init(owner Shape, opts []Option) {
	o.owner = owner
	o.scaleX, o.scaleY = 1, 1
	for _, opt := range opts {
		opt(o)
	}
	o.SetCoords()
}

func (o *Object) object() *Object { return o }

// Set applies opts and marks the object dirty. Coordinates are not
// refreshed; call SetCoords once all changes are done.
func (o *Object) Set(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
	o.dirty = true
}

// Modify applies opts like an interactive transform would and fires
// [event.Modified] once done, which relayouts the parent group.
func (o *Object) Modify(opts ...Option) {
	o.Set(opts...)
	o.SetCoords()
	o.Fire(event.Modified, &event.Event{Target: o.owner})
}

// Left returns the horizontal position in the parent plane.
func (o *Object) Left() float64 { return o.left }

// Top returns the vertical position in the parent plane.
func (o *Object) Top() float64 { return o.top }

// Width returns the untransformed width.
func (o *Object) Width() float64 { return o.width }

// Height returns the untransformed height.
func (o *Object) Height() float64 { return o.height }

// Angle returns the rotation in degrees.
func (o *Object) Angle() float64 { return o.angle }

// Scale returns the horizontal and vertical scale factors.
func (o *Object) Scale() (x, y float64) { return o.scaleX, o.scaleY }

// Skew returns the skew angles in degrees.
func (o *Object) Skew() (x, y float64) { return o.skewX, o.skewY }

// Flip reports whether the object is mirrored on each axis.
func (o *Object) Flip() (x, y bool) { return o.flipX, o.flipY }

// Origin returns the anchors of the left/top position.
func (o *Object) Origin() (x, y geom.Origin) { return o.originX, o.originY }

// Position returns left/top.
func (o *Object) Position() geom.Point { return geom.Pt(o.left, o.top) }

// SetPosition sets left/top in one update.
func (o *Object) SetPosition(p geom.Point) {
	o.Set(WithPosition(p.X, p.Y))
}

// Dimensions returns the untransformed width and height.
func (o *Object) Dimensions() geom.Point { return geom.Pt(o.width, o.height) }

// SetSize sets width and height in one update.
func (o *Object) SetSize(size geom.Point) {
	o.Set(WithSize(size.X, size.Y))
}

// AbsolutePositioned reports whether the object, used as a clip path, is
// measured in the canvas plane.
func (o *Object) AbsolutePositioned() bool { return o.absolutePositioned }

// Parent returns the group holding the object, or nil.
func (o *Object) Parent() layout.Target {
	if o.group == nil {
		return nil
	}
	return o.group
}

// Group returns the group holding the object, or nil.
func (o *Object) Group() *Group { return o.group }

// Dirty reports whether the object changed since the last [Object.ClearDirty].
func (o *Object) Dirty() bool { return o.dirty }

// SetDirty flags the object for re-render.
func (o *Object) SetDirty() { o.dirty = true }

// ClearDirty resets the dirty flag, typically after rendering.
func (o *Object) ClearDirty() { o.dirty = false }

// Transform returns the decomposed transform relative to the parent plane.
// The translation is the object's center.
func (o *Object) Transform() geom.Transform {
	t := o.linearTransform()
	c := o.RelativeCenterPoint()
	t.TranslateX, t.TranslateY = c.X, c.Y
	return t
}

// linearTransform is the transform without translation. It must not depend
// on the position, which is itself resolved through the object's size.
func (o *Object) linearTransform() geom.Transform {
	return geom.Transform{
		Angle:  o.angle,
		ScaleX: o.scaleX,
		ScaleY: o.scaleY,
		SkewX:  o.skewX,
		SkewY:  o.skewY,
		FlipX:  o.flipX,
		FlipY:  o.flipY,
	}
}

// OwnMatrix returns the transform from the object's plane to its parent's.
func (o *Object) OwnMatrix() geom.Matrix {
	return geom.Compose(o.Transform())
}

// TransformMatrix returns the transform from the object's plane to the
// canvas plane.
func (o *Object) TransformMatrix() geom.Matrix {
	m := o.OwnMatrix()
	if o.group != nil {
		m = o.group.TransformMatrix().Multiply(m)
	}
	return m
}

// transformedDimensions is the axis-aligned size after scale, skew and flip.
func (o *Object) transformedDimensions() geom.Point {
	return geom.SizeAfterTransform(o.width, o.height, o.linearTransform().DimensionsMatrix())
}

// translateToGivenOrigin moves p, anchored at from, to the point anchored
// at to, ignoring rotation.
func (o *Object) translateToGivenOrigin(p geom.Point, fromX, fromY, toX, toY geom.Origin) geom.Point {
	dx := toX.Offset() - fromX.Offset()
	dy := toY.Offset() - fromY.Offset()
	if dx == 0 && dy == 0 {
		return p
	}
	dim := o.transformedDimensions()
	return geom.Pt(p.X+dx*dim.X, p.Y+dy*dim.Y)
}

func (o *Object) translateToCenterPoint(p geom.Point, originX, originY geom.Origin) geom.Point {
	c := o.translateToGivenOrigin(p, originX, originY, geom.OriginCenter, geom.OriginCenter)
	if o.angle != 0 {
		c = c.RotateAround(geom.Radians(o.angle), p)
	}
	return c
}

func (o *Object) translateToOriginPoint(center geom.Point, originX, originY geom.Origin) geom.Point {
	p := o.translateToGivenOrigin(center, geom.OriginCenter, geom.OriginCenter, originX, originY)
	if o.angle != 0 {
		p = p.RotateAround(geom.Radians(o.angle), center)
	}
	return p
}

// RelativeCenterPoint returns the center in the parent plane.
func (o *Object) RelativeCenterPoint() geom.Point {
	return o.translateToCenterPoint(o.Position(), o.originX, o.originY)
}

// CenterPoint returns the center in the canvas plane.
func (o *Object) CenterPoint() geom.Point {
	c := o.RelativeCenterPoint()
	if o.group != nil {
		c = o.group.TransformMatrix().TransformPoint(c)
	}
	return c
}

// PointByOrigin returns the point identified by originX/originY in the
// parent plane.
func (o *Object) PointByOrigin(originX, originY geom.Origin) geom.Point {
	return o.translateToOriginPoint(o.RelativeCenterPoint(), originX, originY)
}

// SetPositionByOrigin moves the object so that its point identified by
// originX/originY lands on p, measured in the parent plane.
func (o *Object) SetPositionByOrigin(p geom.Point, originX, originY geom.Origin) {
	center := o.translateToCenterPoint(p, originX, originY)
	o.SetPosition(o.translateToOriginPoint(center, o.originX, o.originY))
}

// SetCoords recomputes the corner coordinates in the canvas plane.
func (o *Object) SetCoords() {
	m := o.TransformMatrix()
	hw, hh := o.width/2, o.height/2
	o.coords = [4]geom.Point{
		m.TransformPoint(geom.Pt(-hw, -hh)),
		m.TransformPoint(geom.Pt(hw, -hh)),
		m.TransformPoint(geom.Pt(hw, hh)),
		m.TransformPoint(geom.Pt(-hw, hh)),
	}
}

// Coords returns the corners cached by the last [Object.SetCoords], in
// top-left, top-right, bottom-right, bottom-left order.
func (o *Object) Coords() [4]geom.Point { return o.coords }

// BoundingRect returns the axis-aligned bounds of the cached corners.
func (o *Object) BoundingRect() geom.Rect {
	return geom.BoundingBox(o.coords[:])
}

// ResetTransform clears rotation, scale, skew, flip and position.
func (o *Object) ResetTransform() {
	o.Set(
		WithPosition(0, 0),
		WithAngle(0),
		WithScale(1, 1),
		WithSkew(0, 0),
		WithFlip(false, false),
	)
}

// applyMatrix replaces the object's transform with m, a transform from
// its plane to its parent's. Flips are folded into the scale.
func (o *Object) applyMatrix(m geom.Matrix) {
	t := geom.Decompose(m)
	o.Set(
		WithScale(t.ScaleX, t.ScaleY),
		WithAngle(t.Angle),
		WithSkew(t.SkewX, t.SkewY),
		WithFlip(false, false),
	)
	o.SetPositionByOrigin(geom.Pt(t.TranslateX, t.TranslateY), geom.OriginCenter, geom.OriginCenter)
}
