package canvas

import (
	"encoding/json"
	"slices"

	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/layout"
)

// Group is a container whose size and position follow its members.
//
// Members are positioned in the group's plane, whose origin is the group's
// center. The group's layout manager recomputes the group's geometry when
// members are added, removed or modified, then asks the parent group to do
// the same.
type Group struct {
	Object

	objects       []Shape
	clipPath      Shape
	layoutManager *layout.Manager
}

var _ layout.Target = (*Group)(nil)

// GroupOption configures a Group during creation.
type GroupOption func(*groupOptions)

type groupOptions struct {
	object   []Option
	manager  *layout.Manager
	strategy layout.Strategy
	relative bool
	clipPath Shape
	x, y     *float64
}

// WithLayoutManager makes the group use m instead of a new manager.
func WithLayoutManager(m *layout.Manager) GroupOption {
	return func(o *groupOptions) {
		o.manager = m
	}
}

// WithStrategy sets the strategy of the group's layout manager.
func WithStrategy(s layout.Strategy) GroupOption {
	return func(o *groupOptions) {
		o.strategy = s
	}
}

// WithObjectsRelativeToGroup reports that member positions are already
// expressed relative to the group's center, as when a group is restored
// from a saved scene. The initial layout then leaves members in place.
func WithObjectsRelativeToGroup(v bool) GroupOption {
	return func(o *groupOptions) {
		o.relative = v
	}
}

// WithClipPath sets the group's clip path.
func WithClipPath(s Shape) GroupOption {
	return func(o *groupOptions) {
		o.clipPath = s
	}
}

// WithGroupPosition sets the group's left/top, overriding the position
// computed by the initial layout. Without it the group is placed around
// its members.
func WithGroupPosition(left, top float64) GroupOption {
	return func(o *groupOptions) {
		o.x, o.y = &left, &top
	}
}

// WithGroupLeft overrides only the left computed by the initial layout.
func WithGroupLeft(left float64) GroupOption {
	return func(o *groupOptions) {
		o.x = &left
	}
}

// WithGroupTop overrides only the top computed by the initial layout.
func WithGroupTop(top float64) GroupOption {
	return func(o *groupOptions) {
		o.y = &top
	}
}

// WithObjectOptions applies object options such as angle, scale or origin
// to the group itself.
func WithObjectOptions(opts ...Option) GroupOption {
	return func(o *groupOptions) {
		o.object = append(o.object, opts...)
	}
}

// NewGroup creates a group holding objects and runs its initial layout.
//
// Members keep their positions, which become relative to the group. An
// object that belongs to another group is first removed from it.
func NewGroup(objects []Shape, opts ...GroupOption) (*Group, error) {
	var o groupOptions
	for _, opt := range opts {
		opt(&o)
	}

	for i, obj := range objects {
		if obj == nil {
			return nil, ErrNilObject
		}
		if slices.Contains(objects[:i], obj) {
			return nil, ErrObjectInGroup
		}
	}

	g := &Group{
		clipPath:      o.clipPath,
		layoutManager: o.manager,
	}
	if g.layoutManager == nil {
		g.layoutManager = layout.NewManager()
	}
	if o.strategy != nil {
		g.layoutManager.SetStrategy(o.strategy)
	}
	g.init(g, o.object)
	if o.x != nil {
		g.left = *o.x
	}
	if o.y != nil {
		g.top = *o.y
	}

	g.objects = slices.Clone(objects)
	for _, obj := range g.objects {
		g.enterGroup(obj, false)
	}

	g.layoutManager.PerformLayout(layout.Context{
		Type:                   layout.TriggerInitialization,
		Target:                 g,
		Targets:                asLayoutObjects(g.objects),
		X:                      o.x,
		Y:                      o.y,
		ObjectsRelativeToGroup: o.relative,
	})
	g.SetCoords()
	return g, nil
}

// Objects returns the members in stacking order.
func (g *Group) Objects() []layout.Object {
	return asLayoutObjects(g.objects)
}

// Shapes returns a copy of the members in stacking order.
func (g *Group) Shapes() []Shape {
	return slices.Clone(g.objects)
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.objects) }

// Contains reports whether s is a direct member of the group.
func (g *Group) Contains(s Shape) bool {
	return slices.Contains(g.objects, s)
}

// ClipPath returns the clip path, or nil.
func (g *Group) ClipPath() layout.Object {
	if g.clipPath == nil {
		return nil
	}
	return g.clipPath
}

// SetClipPath replaces the clip path. It is picked up by the next layout.
func (g *Group) SetClipPath(s Shape) {
	g.clipPath = s
	g.dirty = true
}

// LayoutManager returns the group's layout manager.
func (g *Group) LayoutManager() *layout.Manager { return g.layoutManager }

// Add appends objects to the group, keeping their position on the canvas,
// and relayouts the group.
func (g *Group) Add(objects ...Shape) error {
	return g.Insert(len(g.objects), objects...)
}

// Insert inserts objects at index, keeping their position on the canvas,
// and relayouts the group.
func (g *Group) Insert(index int, objects ...Shape) error {
	if index < 0 || index > len(g.objects) {
		Logger().Warn("canvas: insert index out of range", "index", index, "len", len(g.objects))
		return ErrIndexOutOfRange
	}
	if err := g.canEnter(objects); err != nil {
		return err
	}
	if len(objects) == 0 {
		return nil
	}

	for _, obj := range objects {
		g.enterGroup(obj, true)
	}
	g.objects = slices.Insert(g.objects, index, objects...)
	for _, obj := range objects {
		g.Fire(event.ObjectAdded, &event.Event{Target: obj})
		obj.object().Fire(event.Added, &event.Event{Target: g})
	}
	Logger().Debug("canvas: objects added", "count", len(objects), "len", len(g.objects))

	g.layoutManager.PerformLayout(layout.Context{
		Type:    layout.TriggerAdded,
		Target:  g,
		Targets: asLayoutObjects(objects),
	})
	return nil
}

// Remove takes objects out of the group, keeping their position on the
// canvas, and relayouts the group. Objects that are not members are
// ignored. It returns the removed objects.
func (g *Group) Remove(objects ...Shape) []Shape {
	var removed []Shape
	for _, obj := range objects {
		i := slices.Index(g.objects, obj)
		if obj == nil || i < 0 {
			continue
		}
		g.objects = slices.Delete(g.objects, i, i+1)
		g.exitGroup(obj, true)
		removed = append(removed, obj)
		g.Fire(event.ObjectRemoved, &event.Event{Target: obj})
		obj.object().Fire(event.Removed, &event.Event{Target: g})
	}
	if len(removed) == 0 {
		return nil
	}
	Logger().Debug("canvas: objects removed", "count", len(removed), "len", len(g.objects))

	g.layoutManager.PerformLayout(layout.Context{
		Type:    layout.TriggerRemoved,
		Target:  g,
		Targets: asLayoutObjects(removed),
	})
	return removed
}

// TriggerLayout runs an imperative layout. opts.Strategy, when set, is used
// for this layout only.
func (g *Group) TriggerLayout(opts layout.ImperativeOptions) {
	g.layoutManager.PerformLayout(layout.Imperative(g, opts))
}

// Dispose detaches the layout manager, and those of nested groups, from
// every member. The tree is left in place but no longer relayouts itself.
func (g *Group) Dispose() {
	for _, obj := range g.objects {
		if child, ok := obj.(*Group); ok {
			child.Dispose()
		}
	}
	g.layoutManager.Dispose()
}

// LayoutJSON returns the serialized layout manager, which records the
// active strategy.
func (g *Group) LayoutJSON() ([]byte, error) {
	return json.Marshal(g.layoutManager)
}

func (g *Group) canEnter(objects []Shape) error {
	for i, obj := range objects {
		if obj == nil {
			return ErrNilObject
		}
		if obj.object().group == g || slices.Contains(objects[:i], obj) {
			return ErrObjectInGroup
		}
		if child, ok := obj.(*Group); ok {
			for p := g; p != nil; p = p.group {
				if p == child {
					return ErrCyclicGroup
				}
			}
		}
	}
	return nil
}

// enterGroup makes g the parent of obj. With removeParentTransform the
// object's canvas placement is preserved by expressing its transform in
// the group's plane.
func (g *Group) enterGroup(obj Shape, removeParentTransform bool) {
	o := obj.object()
	if prev := o.group; prev != nil && prev != g {
		prev.Remove(obj)
	}
	if removeParentTransform {
		o.applyMatrix(geom.PlaneChange(o.TransformMatrix(), g.TransformMatrix()))
	}
	o.group = g
	o.SetCoords()
}

// exitGroup detaches obj from g. With removeParentTransform the object's
// canvas placement is preserved.
func (g *Group) exitGroup(obj Shape, removeParentTransform bool) {
	o := obj.object()
	total := o.TransformMatrix()
	o.group = nil
	if removeParentTransform {
		o.applyMatrix(total)
	}
	o.SetCoords()
}

func asLayoutObjects(objects []Shape) []layout.Object {
	out := make([]layout.Object, len(objects))
	for i, obj := range objects {
		out[i] = obj
	}
	return out
}
