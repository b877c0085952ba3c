package layout

import (
	"reflect"
	"testing"

	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
)

const epsilon = 1e-9

func TestNewManagerDefaultsToFitContent(t *testing.T) {
	m := NewManager()
	if _, ok := m.Strategy().(*FitContent); !ok {
		t.Errorf("default strategy = %T, want *FitContent", m.Strategy())
	}
	if m.PrevStrategy() != nil {
		t.Errorf("PrevStrategy() = %v before any layout, want nil", m.PrevStrategy())
	}
	fixed := NewFixed()
	if got := NewManager(WithStrategy(fixed)).Strategy(); got != fixed {
		t.Errorf("WithStrategy: Strategy() = %v, want %v", got, fixed)
	}
	if _, ok := NewManager(WithStrategy(nil)).Strategy().(*FitContent); !ok {
		t.Error("WithStrategy(nil) replaced the default strategy")
	}
}

func TestPerformLayoutGuardsInitialization(t *testing.T) {
	g := newFakeGroupWith(nil, newFakeObject(0, 0, 10, 10))
	g.manager = NewManager()
	events := watch(g)

	for _, tr := range []Trigger{TriggerImperative, TriggerAdded, TriggerRemoved, TriggerObjectModified, TriggerObjectModifying} {
		g.manager.PerformLayout(Context{Type: tr, Target: g})
	}
	if len(events.before) != 0 || len(events.after) != 0 {
		t.Fatalf("hooks fired before initialization: before=%d after=%d", len(events.before), len(events.after))
	}
	if g.size != (geom.Point{}) {
		t.Fatalf("geometry changed before initialization: size=%v", g.size)
	}
	if g.manager.Initialized() {
		t.Fatal("Initialized() = true before initialization")
	}

	g.manager.PerformLayout(Context{Type: TriggerInitialization, Target: g, Targets: g.objects})
	if len(events.before) != 1 || len(events.after) != 1 {
		t.Errorf("initialization: before=%d after=%d, want 1 and 1", len(events.before), len(events.after))
	}
	if !g.manager.Initialized() {
		t.Error("Initialized() = false after initialization")
	}
}

func TestPerformLayoutLifecycle(t *testing.T) {
	for _, produce := range []bool{true, false} {
		produce := produce
		name := "declined"
		if produce {
			name = "result"
		}
		t.Run(name, func(t *testing.T) {
			var log []string
			stub := &stubStrategy{log: &log}
			if produce {
				stub.result = &StrategyResult{Center: geom.Pt(5, 5), Size: geom.Pt(10, 10)}
			}
			obj := newFakeObject(0, 0, 10, 10)
			g := newFakeGroupWith(nil, obj)
			g.manager = NewManager(WithStrategy(stub))
			g.log = &log
			g.On(event.LayoutBefore, func(*event.Event) { log = append(log, "before") })
			var after *AfterEvent
			g.On(event.LayoutAfter, func(e *event.Event) {
				after = e.Data.(*AfterEvent)
				log = append(log, "after")
			})

			g.manager.PerformLayout(Context{Type: TriggerInitialization, Target: g, Targets: g.objects})

			want := []string{"before", "calc", "after"}
			if produce {
				want = []string{"before", "calc", "setSize", "setPosition", "after"}
			}
			if !reflect.DeepEqual(log, want) {
				t.Errorf("lifecycle = %v, want %v", log, want)
			}
			if after == nil {
				t.Fatal("layout:after not fired")
			}
			if (after.Result != nil) != produce {
				t.Errorf("layout:after result = %v, want present=%v", after.Result, produce)
			}
			ctx := after.Context
			if ctx.Strategy != stub || ctx.PrevStrategy != nil || !ctx.Bubbling() || ctx.Target != g {
				t.Errorf("strict context = %+v", ctx)
			}
			if !g.manager.Initialized() {
				t.Error("declined initialization left the manager uninitialized")
			}
		})
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	obj := newFakeObject(0, 0, 10, 10)
	g := newFakeGroup(obj)
	events := watch(g)
	ctx := &StrictContext{Context: Context{Target: g}}

	g.manager.subscribe(ctx, obj)
	g.manager.subscribe(ctx, obj)

	for _, name := range append([]string{event.Modified}, modifyingEvents...) {
		if n := obj.Count(name); n != 1 {
			t.Errorf("%s handlers = %d, want 1", name, n)
		}
	}
	obj.Fire(event.Modified, &event.Event{})
	if len(events.before) != 1 {
		t.Errorf("modified triggered %d layouts, want 1", len(events.before))
	}
}

func TestSubscribedObjectTriggersLayout(t *testing.T) {
	obj := newFakeObject(0, 0, 10, 10)
	g := newFakeGroup(obj)
	events := watch(g)

	triggers := append([]string{event.Modified}, modifyingEvents...)
	for _, name := range triggers {
		obj.Fire(name, &event.Event{Data: "payload"})
	}

	if len(events.before) != len(triggers) {
		t.Fatalf("got %d layouts, want %d", len(events.before), len(triggers))
	}
	for i, ctx := range events.before {
		wantType := TriggerObjectModifying
		if i == 0 {
			wantType = TriggerObjectModified
		}
		if ctx.Type != wantType {
			t.Errorf("layout %d type = %s, want %s", i, ctx.Type, wantType)
		}
		if ctx.EventName != triggers[i] {
			t.Errorf("layout %d event = %q, want %q", i, ctx.EventName, triggers[i])
		}
		if ctx.Event == nil || ctx.Event.Target != Object(obj) || ctx.Event.Data != "payload" {
			t.Errorf("layout %d member event = %+v", i, ctx.Event)
		}
		if ctx.Target != g {
			t.Errorf("layout %d target = %v, want the group", i, ctx.Target)
		}
	}
}

func TestRemovedTriggerUnsubscribes(t *testing.T) {
	a := newFakeObject(0, 0, 10, 10)
	b := newFakeObject(20, 20, 10, 10)
	g := newFakeGroup(a, b)

	foreign := 0
	a.On(event.Modified, func(*event.Event) { foreign++ })

	g.remove(a)
	if g.manager.Subscribed(a) {
		t.Fatal("removed member is still subscribed")
	}
	if !g.manager.Subscribed(b) {
		t.Fatal("remaining member lost its subscription")
	}

	events := watch(g)
	a.Fire(event.Modified, &event.Event{})
	if len(events.before) != 0 {
		t.Errorf("removed member triggered %d layouts", len(events.before))
	}
	if foreign != 1 {
		t.Errorf("foreign handler ran %d times, want 1", foreign)
	}

	// Unsubscribing an unknown object is a no-op.
	g.manager.unsubscribe(nil, newFakeObject(0, 0, 1, 1))
}

func TestDispose(t *testing.T) {
	a := newFakeObject(0, 0, 10, 10)
	b := newFakeObject(20, 20, 10, 10)
	g := newFakeGroup(a, b)
	g.manager.Dispose()

	for _, obj := range []*fakeObject{a, b} {
		if n := obj.Count(event.Modified); n != 0 {
			t.Errorf("disposed manager left %d modified handlers", n)
		}
		if g.manager.Subscribed(obj) {
			t.Error("disposed manager still reports a subscription")
		}
	}
}

func TestGetLayoutResult(t *testing.T) {
	stub := &stubStrategy{result: &StrategyResult{
		Center:             geom.Pt(50, 100),
		Size:               geom.Pt(200, 250),
		Correction:         geom.Pt(10, 20),
		RelativeCorrection: geom.Pt(-5, -5),
	}}

	tests := []struct {
		name     string
		ctx      Context
		wantPrev geom.Point
		want     geom.Point
	}{
		{
			name:     "initialization",
			ctx:      Context{Type: TriggerInitialization},
			wantPrev: geom.Point{},
			// (0,0) - (50,100) + (10,20), identity, then (-5,-5)
			want: geom.Pt(-45, -85),
		},
		{
			name:     "initialization relative to group",
			ctx:      Context{Type: TriggerInitialization, ObjectsRelativeToGroup: true},
			wantPrev: geom.Point{},
			want:     geom.Point{},
		},
		{
			name:     "imperative",
			ctx:      Context{Type: TriggerImperative},
			wantPrev: geom.Pt(100, 100),
			// (100,100) - (50,100) + (10,20) = (60,20), inverse scale -> (30,40), then (-5,-5)
			want: geom.Pt(25, 35),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newFakeGroupWith(nil)
			g.pos = geom.Pt(100, 100)
			g.scaleX, g.scaleY = 2, 0.5
			m := NewManager(WithStrategy(stub))
			g.manager = m

			ctx := &StrictContext{Context: tt.ctx, bubbles: true}
			ctx.Target = g
			ctx.Strategy = stub
			res := m.getLayoutResult(ctx)
			if res == nil {
				t.Fatal("getLayoutResult returned nil")
			}
			if !res.PrevCenter.Eq(tt.wantPrev, epsilon) {
				t.Errorf("PrevCenter = %v, want %v", res.PrevCenter, tt.wantPrev)
			}
			if !res.NextCenter.Eq(geom.Pt(50, 100), epsilon) {
				t.Errorf("NextCenter = %v, want (50,100)", res.NextCenter)
			}
			if !res.Offset.Eq(tt.want, epsilon) {
				t.Errorf("Offset = %v, want %v", res.Offset, tt.want)
			}
			if res.StrategyResult != *stub.result {
				t.Errorf("StrategyResult = %+v, want %+v", res.StrategyResult, *stub.result)
			}
		})
	}
}

func TestGetLayoutResultDeclined(t *testing.T) {
	g := newFakeGroupWith(nil)
	m := NewManager()
	ctx := &StrictContext{Context: Context{Type: TriggerImperative, Target: g, Strategy: m.Strategy()}}
	if res := m.getLayoutResult(ctx); res != nil {
		t.Errorf("empty container produced %+v, want nil", res)
	}
}

func TestCommitLayoutInitialization(t *testing.T) {
	x, y := 10.0, 20.0
	tests := []struct {
		name string
		x, y *float64
		want geom.Point
	}{
		{"derived", nil, nil, geom.Pt(0, 0)},
		{"x", &x, nil, geom.Pt(10, 0)},
		{"y", nil, &y, geom.Pt(0, 20)},
		{"x and y", &x, &y, geom.Pt(10, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			g := newFakeGroupWith(nil)
			g.originX, g.originY = geom.OriginLeft, geom.OriginTop
			g.log = &log
			m := NewManager()
			ctx := &StrictContext{Context: Context{Type: TriggerInitialization, Target: g, Strategy: m.Strategy(), X: tt.x, Y: tt.y}}
			res := &Result{
				StrategyResult: StrategyResult{Center: geom.Pt(5, 5), Size: geom.Pt(10, 10)},
				NextCenter:     geom.Pt(5, 5),
				Offset:         geom.Pt(-5, -5),
			}

			m.commitLayout(ctx, res)

			if want := []string{"setSize", "setPosition"}; !reflect.DeepEqual(log, want) {
				t.Errorf("calls = %v, want %v", log, want)
			}
			if g.size != geom.Pt(10, 10) {
				t.Errorf("size = %v, want (10,10)", g.size)
			}
			if !g.pos.Eq(tt.want, epsilon) {
				t.Errorf("position = %v, want %v", g.pos, tt.want)
			}
			if g.dirty {
				t.Error("initialization commit marked the container dirty")
			}
		})
	}
}

func TestCommitLayoutInvalidatesTarget(t *testing.T) {
	var log []string
	obj := newFakeObject(0, 0, 10, 10)
	g := newFakeGroup(obj)
	g.log = &log
	obj.log = &log

	ctx := &StrictContext{Context: Context{Type: TriggerAdded, Target: g, Strategy: g.manager.Strategy()}}
	res := &Result{
		StrategyResult: StrategyResult{Center: geom.Pt(40, 40), Size: geom.Pt(20, 20)},
		NextCenter:     geom.Pt(40, 40),
		Offset:         geom.Pt(1, 2),
	}
	before := obj.pos
	g.manager.commitLayout(ctx, res)

	want := []string{"setSize", "setPosition", "setPositionByOrigin", "setCoords", "setDirty"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("calls = %v, want %v", log, want)
	}
	if !obj.pos.Eq(before.Add(geom.Pt(1, 2)), epsilon) {
		t.Errorf("member position = %v, want %v", obj.pos, before.Add(geom.Pt(1, 2)))
	}
	// Round trip: the committed center is what the container reports.
	if c := g.RelativeCenterPoint(); !c.Eq(geom.Pt(40, 40), epsilon) {
		t.Errorf("center after commit = %v, want (40,40)", c)
	}
}

func TestLayoutObjectsSkipsForeignMembers(t *testing.T) {
	a := newFakeObject(0, 0, 10, 10)
	b := newFakeObject(0, 0, 10, 10)
	g := newFakeGroup(a, b)
	b.parent = nil

	ctx := &StrictContext{Context: Context{Type: TriggerImperative, Target: g, Strategy: g.manager.Strategy()}}
	pa, pb := a.pos, b.pos
	g.manager.layoutObjects(ctx, &Result{Offset: geom.Pt(3, 3)})
	if a.pos == pa {
		t.Error("member parented to the container was not moved")
	}
	if b.pos != pb {
		t.Error("member parented elsewhere was moved")
	}
}

func TestLayoutObjectsClipPath(t *testing.T) {
	for _, absolute := range []bool{false, true} {
		obj := newFakeObject(0, 0, 10, 10)
		g := newFakeGroup(obj)
		clip := newFakeObject(0, 0, 5, 5)
		clip.absolute = absolute
		g.clip = clip

		ctx := &StrictContext{Context: Context{Type: TriggerImperative, Target: g, Strategy: g.manager.Strategy()}}
		g.manager.layoutObjects(ctx, &Result{Offset: geom.Pt(3, 4)})
		moved := clip.pos != geom.Point{}
		if moved == absolute {
			t.Errorf("absolute=%v: clip path moved=%v", absolute, moved)
		}
	}
}

func TestObjectsRelativeToGroupKeepsMembers(t *testing.T) {
	a := newFakeObject(-5, -5, 10, 10)
	g := newFakeGroupWith(nil, a)
	g.manager = NewManager()
	g.manager.PerformLayout(Context{
		Type:                   TriggerInitialization,
		Target:                 g,
		Targets:                g.objects,
		ObjectsRelativeToGroup: true,
	})
	if a.pos != geom.Pt(-5, -5) {
		t.Errorf("member moved to %v, want (-5,-5)", a.pos)
	}
}

func TestOnAfterLayoutResetTransform(t *testing.T) {
	for _, reset := range []bool{true, false} {
		obj := newFakeObject(0, 0, 10, 10)
		g := newFakeGroup(obj)
		g.pos = geom.Pt(50, 50)
		stub := &stubStrategy{reset: reset}
		ctx := &StrictContext{Context: Context{Type: TriggerRemoved, Target: g, Strategy: stub}}

		g.manager.onAfterLayout(ctx, nil)

		want := geom.Pt(50, 50)
		if reset {
			want = geom.Point{}
		}
		if g.pos != want {
			t.Errorf("reset=%v: position = %v, want %v", reset, g.pos, want)
		}
	}
}

// chain builds leaf ⊂ a ⊂ b ⊂ c and returns the containers.
func chain() (leaf *fakeObject, a, b, c *fakeGroup) {
	leaf = newFakeObject(0, 0, 10, 10)
	a = newFakeGroup(leaf, newFakeObject(20, 0, 10, 10))
	b = newFakeGroup(a, newFakeObject(100, 100, 10, 10))
	c = newFakeGroup(b)
	return leaf, a, b, c
}

func TestBubblingReachesRoot(t *testing.T) {
	leaf, a, b, c := chain()
	ea, eb, ec := watch(a), watch(b), watch(c)
	var order []Target
	for _, g := range []*fakeGroup{a, b, c} {
		g := g
		g.On(event.LayoutAfter, func(*event.Event) { order = append(order, g) })
	}

	leaf.Fire(event.Modified, &event.Event{})

	if want := []Target{a, b, c}; !reflect.DeepEqual(order, want) {
		t.Fatalf("layout:after order = %v, want a, b, c", order)
	}
	wantPaths := [][]Target{nil, {a}, {a, b}}
	for i, ev := range []*layoutEvents{ea, eb, ec} {
		if len(ev.after) != 1 {
			t.Fatalf("container %d: %d layouts, want 1", i, len(ev.after))
		}
		ctx := ev.after[0].Context
		if !reflect.DeepEqual(ctx.Path, wantPaths[i]) {
			t.Errorf("container %d path = %v, want %v", i, ctx.Path, wantPaths[i])
		}
		if ctx.Type != TriggerObjectModified {
			t.Errorf("container %d type = %s, want %s", i, ctx.Type, TriggerObjectModified)
		}
		if ctx.Strategy != ctx.Target.LayoutManager().Strategy() {
			t.Errorf("container %d used a foreign strategy", i)
		}
	}
}

func TestStopPropagation(t *testing.T) {
	leaf, _, b, c := chain()
	eb, ec := watch(b), watch(c)
	b.On(event.LayoutBefore, func(e *event.Event) {
		e.Data.(*BeforeEvent).Context.StopPropagation()
	})

	b.dirty = false
	leaf.Fire(event.Modified, &event.Event{})

	if len(ec.before) != 0 {
		t.Errorf("root received %d layouts after StopPropagation", len(ec.before))
	}
	if len(eb.after) != 1 || eb.after[0].Result == nil {
		t.Fatal("stopped container did not complete its own layout")
	}
	if !b.dirty {
		t.Error("stopped container was not committed")
	}
	if eb.after[0].Context.Bubbling() {
		t.Error("Bubbling() = true after StopPropagation")
	}
}

func TestImperativeBubblesOverride(t *testing.T) {
	_, a, b, _ := chain()
	eb := watch(b)
	no := false
	a.manager.PerformLayout(Imperative(a, ImperativeOptions{Bubbles: &no}))
	if len(eb.before) != 0 {
		t.Errorf("Bubbles=false still reached the parent %d times", len(eb.before))
	}
	a.manager.PerformLayout(Imperative(a, ImperativeOptions{}))
	if len(eb.before) != 1 {
		t.Errorf("default imperative reached the parent %d times, want 1", len(eb.before))
	}
}

func TestDeepImperativeLayout(t *testing.T) {
	_, a, b, c := chain()
	var order []Target
	var contexts []*StrictContext
	for _, g := range []*fakeGroup{a, b, c} {
		g := g
		g.On(event.LayoutBefore, func(e *event.Event) {
			order = append(order, g)
			contexts = append(contexts, e.Data.(*BeforeEvent).Context)
		})
	}
	override := NewFixed()

	c.manager.PerformLayout(Imperative(c, ImperativeOptions{Deep: true, Strategy: override}))

	if want := []Target{c, b, a}; !reflect.DeepEqual(order, want) {
		t.Fatalf("layout:before order = %v, want c, b, a (pre-order)", order)
	}
	if contexts[0].Strategy != override {
		t.Error("root did not use the strategy override")
	}
	for _, ctx := range contexts[1:] {
		if ctx.Bubbling() {
			t.Errorf("nested layout of %v bubbles", ctx.Target)
		}
		if !ctx.Deep || ctx.Type != TriggerImperative {
			t.Errorf("nested context = %+v, want deep imperative", ctx.Context)
		}
		if ctx.Strategy != ctx.Target.LayoutManager().Strategy() {
			t.Errorf("nested layout of %v used the ancestor's strategy", ctx.Target)
		}
	}
}

func TestStrategySwapPrevStrategy(t *testing.T) {
	obj := newFakeObject(0, 0, 10, 10)
	g := newFakeGroup(obj)
	events := watch(g)
	initial := g.manager.Strategy()
	fixed := NewFixed()

	g.manager.SetStrategy(fixed)
	g.manager.PerformLayout(Imperative(g, ImperativeOptions{}))
	g.manager.PerformLayout(Imperative(g, ImperativeOptions{}))

	if got := events.before[0].PrevStrategy; got != initial {
		t.Errorf("first layout after swap PrevStrategy = %v, want %v", got, initial)
	}
	if got := events.before[1].PrevStrategy; got != fixed {
		t.Errorf("second layout after swap PrevStrategy = %v, want %v", got, fixed)
	}
	if g.manager.PrevStrategy() != fixed {
		t.Errorf("PrevStrategy() = %v, want %v", g.manager.PrevStrategy(), fixed)
	}
}

func TestAddedTriggerSubscribes(t *testing.T) {
	a := newFakeObject(0, 0, 10, 10)
	g := newFakeGroup(a)
	b := newFakeObject(30, 30, 10, 10)
	b.parent = g
	g.objects = append(g.objects, b)
	g.manager.PerformLayout(Context{Type: TriggerAdded, Target: g, Targets: []Object{b}})

	if !g.manager.Subscribed(b) {
		t.Fatal("added member not subscribed")
	}
	// a spans (-5,-5)..(5,5) in the group plane, b spans (30,30)..(40,40).
	if !g.size.Eq(geom.Pt(45, 45), epsilon) {
		t.Errorf("size after add = %v, want (45,45)", g.size)
	}
}
