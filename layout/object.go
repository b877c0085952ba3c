package layout

import (
	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
)

// Object is the capability the manager needs from a container member.
type Object interface {
	// On subscribes h to the named event on the object.
	On(name string, h event.Handler) event.Subscription
	// Off removes a subscription previously returned by On.
	Off(s event.Subscription)

	// Parent returns the container the object currently belongs to, or nil.
	Parent() Target

	// Position returns the left/top position in the parent plane.
	Position() geom.Point
	// SetPosition moves the object in one atomic update.
	SetPosition(p geom.Point)
	// Dimensions returns the untransformed width and height.
	Dimensions() geom.Point
	// RelativeCenterPoint returns the center in the parent plane.
	RelativeCenterPoint() geom.Point
	// OwnMatrix returns the object's transform relative to its parent.
	OwnMatrix() geom.Matrix

	// AbsolutePositioned reports whether the object, used as a clip path,
	// is measured in the canvas plane rather than in its owner's plane.
	AbsolutePositioned() bool
}

// Target is a container laid out by a Manager.
type Target interface {
	Object

	// Fire dispatches a named event to the container's subscribers.
	Fire(name string, e *event.Event)

	// Objects returns the current members in stacking order.
	Objects() []Object
	// ClipPath returns the container's clip path, or nil.
	ClipPath() Object
	// LayoutManager returns the manager owning the container's layout, or
	// nil for containers that are not laid out.
	LayoutManager() *Manager

	// TransformMatrix returns the total transform from the container's
	// plane to the canvas plane.
	TransformMatrix() geom.Matrix
	// Origin returns the anchors of the container's left/top position.
	Origin() (x, y geom.Origin)

	// SetSize sets width and height in one atomic update.
	SetSize(size geom.Point)
	// SetPositionByOrigin places the point of the container identified by
	// originX/originY at p, measured in the parent plane.
	SetPositionByOrigin(p geom.Point, originX, originY geom.Origin)
	// SetCoords recomputes the cached corner coordinates.
	SetCoords()
	// SetDirty flags the container for re-render.
	SetDirty()
	// ResetTransform clears rotation, scale, skew, flip and position in one
	// atomic update.
	ResetTransform()
}
