package layout

import (
	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
)

// fakeObject is an unrotated member whose position is anchored by its
// origin, enough geometry to exercise the manager.
type fakeObject struct {
	event.Emitter
	parent           *fakeGroup
	pos              geom.Point
	size             geom.Point
	scaleX, scaleY   float64
	originX, originY geom.Origin
	absolute         bool
	log              *[]string
}

func newFakeObject(left, top, w, h float64) *fakeObject {
	return &fakeObject{pos: geom.Pt(left, top), size: geom.Pt(w, h), scaleX: 1, scaleY: 1}
}

func (o *fakeObject) record(s string) {
	if o.log != nil {
		*o.log = append(*o.log, s)
	}
}

func (o *fakeObject) setParent(g *fakeGroup) { o.parent = g }

func (o *fakeObject) Parent() Target {
	if o.parent == nil {
		return nil
	}
	return o.parent
}

func (o *fakeObject) Position() geom.Point { return o.pos }

func (o *fakeObject) SetPosition(p geom.Point) {
	o.record("setPosition")
	o.pos = p
}

func (o *fakeObject) Dimensions() geom.Point { return o.size }

func (o *fakeObject) scaled() geom.Point {
	return geom.Pt(o.size.X*o.scaleX, o.size.Y*o.scaleY)
}

func (o *fakeObject) RelativeCenterPoint() geom.Point {
	s := o.scaled()
	return o.pos.Sub(geom.Pt(s.X*o.originX.Offset(), s.Y*o.originY.Offset()))
}

func (o *fakeObject) OwnMatrix() geom.Matrix {
	c := o.RelativeCenterPoint()
	return geom.Translate(c.X, c.Y).Multiply(geom.Scale(o.scaleX, o.scaleY))
}

func (o *fakeObject) AbsolutePositioned() bool { return o.absolute }

type parentSetter interface {
	setParent(g *fakeGroup)
}

type fakeGroup struct {
	fakeObject
	objects []Object
	clip    Object
	manager *Manager
	dirty   bool
	resets  int
}

// newFakeGroup builds a center-anchored group and runs its initialization
// layout with the default strategy.
func newFakeGroup(objects ...Object) *fakeGroup {
	return newFakeGroupWith(NewManager(), objects...)
}

func newFakeGroupWith(m *Manager, objects ...Object) *fakeGroup {
	g := &fakeGroup{
		fakeObject: fakeObject{scaleX: 1, scaleY: 1, originX: geom.OriginCenter, originY: geom.OriginCenter},
		objects:    objects,
		manager:    m,
	}
	for _, obj := range objects {
		obj.(parentSetter).setParent(g)
	}
	if m != nil {
		m.PerformLayout(Context{Type: TriggerInitialization, Target: g, Targets: objects})
	}
	return g
}

func (g *fakeGroup) Objects() []Object { return g.objects }

func (g *fakeGroup) ClipPath() Object { return g.clip }

func (g *fakeGroup) LayoutManager() *Manager { return g.manager }

func (g *fakeGroup) TransformMatrix() geom.Matrix {
	m := g.OwnMatrix()
	if g.parent != nil {
		m = g.parent.TransformMatrix().Multiply(m)
	}
	return m
}

func (g *fakeGroup) Origin() (x, y geom.Origin) { return g.originX, g.originY }

func (g *fakeGroup) SetSize(size geom.Point) {
	g.record("setSize")
	g.size = size
}

func (g *fakeGroup) SetPositionByOrigin(p geom.Point, originX, originY geom.Origin) {
	g.record("setPositionByOrigin")
	s := g.scaled()
	center := p.Sub(geom.Pt(s.X*originX.Offset(), s.Y*originY.Offset()))
	g.pos = center.Add(geom.Pt(s.X*g.originX.Offset(), s.Y*g.originY.Offset()))
}

func (g *fakeGroup) SetCoords() { g.record("setCoords") }

func (g *fakeGroup) SetDirty() {
	g.record("setDirty")
	g.dirty = true
}

func (g *fakeGroup) ResetTransform() {
	g.resets++
	g.pos = geom.Point{}
	g.scaleX, g.scaleY = 1, 1
}

func (g *fakeGroup) remove(obj Object) {
	for i, o := range g.objects {
		if o == obj {
			g.objects = append(g.objects[:i:i], g.objects[i+1:]...)
			break
		}
	}
	obj.(parentSetter).setParent(nil)
	g.manager.PerformLayout(Context{Type: TriggerRemoved, Target: g, Targets: []Object{obj}})
}

// stubStrategy returns a canned result and records its calls.
type stubStrategy struct {
	Base
	result *StrategyResult
	reset  bool
	calls  int
	log    *[]string
}

func (*stubStrategy) Type() string { return "stub" }

func (s *stubStrategy) CalcLayoutResult(*StrictContext, []Object) *StrategyResult {
	s.calls++
	if s.log != nil {
		*s.log = append(*s.log, "calc")
	}
	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

func (s *stubStrategy) ShouldResetTransform(*StrictContext) bool { return s.reset }

// layoutEvents collects the contexts of layout events fired on targets.
type layoutEvents struct {
	before []*StrictContext
	after  []*AfterEvent
}

func watch(t Target) *layoutEvents {
	le := &layoutEvents{}
	t.On(event.LayoutBefore, func(e *event.Event) {
		le.before = append(le.before, e.Data.(*BeforeEvent).Context)
	})
	t.On(event.LayoutAfter, func(e *event.Event) {
		le.after = append(le.after, e.Data.(*AfterEvent))
	})
	return le
}
