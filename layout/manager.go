package layout

import (
	"slices"

	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
)

// modifyingEvents are the member events reported as object_modifying.
var modifyingEvents = []string{
	event.Moving,
	event.Resizing,
	event.Rotating,
	event.Scaling,
	event.Skewing,
	event.Changed,
}

// Manager runs the layout of a single container.
//
// A Manager is owned by exactly one container and never owns it back. It
// rejects every request until an initialization layout has run.
type Manager struct {
	strategy        Strategy
	prevStrategy    Strategy
	firstLayoutDone bool
	subscriptions   map[Object][]event.Subscription
}

// ManagerOption configures a Manager during creation.
type ManagerOption func(*Manager)

// WithStrategy sets the manager's initial strategy. A nil strategy keeps
// the default.
func WithStrategy(s Strategy) ManagerOption {
	return func(m *Manager) {
		if s != nil {
			m.strategy = s
		}
	}
}

// NewManager creates a manager using [FitContent] unless configured
// otherwise.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		strategy:      NewFitContent(),
		subscriptions: make(map[Object][]event.Subscription),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Strategy returns the current strategy.
func (m *Manager) Strategy() Strategy {
	return m.strategy
}

// SetStrategy replaces the strategy. The change is picked up by the next
// layout, which sees the replaced strategy as its PrevStrategy.
func (m *Manager) SetStrategy(s Strategy) {
	if s == nil {
		s = NewFitContent()
	}
	m.strategy = s
}

// PrevStrategy returns the strategy of the last layout, nil before the
// first one.
func (m *Manager) PrevStrategy() Strategy {
	return m.prevStrategy
}

// Initialized reports whether an initialization layout has run.
func (m *Manager) Initialized() bool {
	return m.firstLayoutDone
}

// PerformLayout runs one layout pass for ctx.Target.
//
// Requests other than initialization are ignored until the first layout.
// Nested containers (deep imperative requests) and the parent container
// (bubbling) are laid out by recursive calls before PerformLayout returns.
// Panics raised by the strategy or the object model are not recovered.
func (m *Manager) PerformLayout(ctx Context) {
	if !m.firstLayoutDone && ctx.Type != TriggerInitialization {
		slogger().Debug("layout: request before initialization ignored", "trigger", ctx.Type)
		return
	}

	strict := &StrictContext{
		Context:      ctx,
		PrevStrategy: m.prevStrategy,
		bubbles:      true,
	}
	if strict.Strategy == nil {
		strict.Strategy = m.strategy
	}
	if ctx.Bubbles != nil {
		strict.bubbles = *ctx.Bubbles
	}

	m.onBeforeLayout(strict)

	result := m.getLayoutResult(strict)
	if result != nil {
		m.commitLayout(strict, result)
	}

	slogger().Debug("layout: performed",
		"trigger", ctx.Type,
		"strategy", strict.Strategy.Type(),
		"committed", result != nil,
	)
	m.firstLayoutDone = true
	m.onAfterLayout(strict, result)
	m.prevStrategy = strict.Strategy
}

func (m *Manager) onBeforeLayout(ctx *StrictContext) {
	target := ctx.Target

	switch ctx.Type {
	case TriggerInitialization, TriggerAdded:
		for _, obj := range ctx.Targets {
			m.subscribe(ctx, obj)
		}
	case TriggerRemoved:
		for _, obj := range ctx.Targets {
			m.unsubscribe(ctx, obj)
		}
	}

	target.Fire(event.LayoutBefore, &event.Event{
		Target: target,
		Data:   &BeforeEvent{Context: ctx},
	})

	if ctx.Type == TriggerImperative && ctx.Deep {
		// Nested containers use their own strategy and never bubble back.
		trickling := ctx.Context
		trickling.Strategy = nil
		noBubbles := false
		trickling.Bubbles = &noBubbles
		for _, obj := range target.Objects() {
			child, ok := obj.(Target)
			if !ok {
				continue
			}
			cm := child.LayoutManager()
			if cm == nil {
				continue
			}
			slogger().Debug("layout: deep layout of nested container", "depth", len(ctx.Path))
			next := trickling
			next.Target = child
			cm.PerformLayout(next)
		}
	}
}

func (m *Manager) getLayoutResult(ctx *StrictContext) *Result {
	target := ctx.Target
	initializing := ctx.Type == TriggerInitialization

	var prevCenter geom.Point
	if !initializing {
		prevCenter = target.RelativeCenterPoint()
	}

	res := ctx.Strategy.CalcLayoutResult(ctx, target.Objects())
	if res == nil {
		slogger().Debug("layout: strategy declined", "trigger", ctx.Type, "strategy", ctx.Strategy.Type())
		return nil
	}

	nextCenter := res.Center
	var offset geom.Point
	if !initializing || !ctx.ObjectsRelativeToGroup {
		// Centers are measured in the parent plane, members live in the
		// container plane. On initialization the container has no transform
		// applied to its members yet.
		t := geom.Identity()
		if !initializing {
			t = target.OwnMatrix().Invert()
		}
		offset = t.TransformVector(prevCenter.Sub(nextCenter).Add(res.Correction)).
			Add(res.RelativeCorrection)
	}

	return &Result{
		StrategyResult: *res,
		PrevCenter:     prevCenter,
		NextCenter:     nextCenter,
		Offset:         offset,
	}
}

func (m *Manager) commitLayout(ctx *StrictContext, res *Result) {
	target := ctx.Target
	size := res.StrategyResult.Size

	target.SetSize(size)
	m.layoutObjects(ctx, res)

	if ctx.Type == TriggerInitialization {
		originX, originY := target.Origin()
		pos := geom.Pt(
			res.NextCenter.X+size.X*originX.Offset(),
			res.NextCenter.Y+size.Y*originY.Offset(),
		)
		if ctx.X != nil {
			pos.X = *ctx.X
		}
		if ctx.Y != nil {
			pos.Y = *ctx.Y
		}
		target.SetPosition(pos)
		return
	}

	target.SetPositionByOrigin(res.NextCenter, geom.OriginCenter, geom.OriginCenter)
	target.SetCoords()
	target.SetDirty()
}

func (m *Manager) layoutObjects(ctx *StrictContext, res *Result) {
	target := ctx.Target
	if ctx.Type != TriggerInitialization || !ctx.ObjectsRelativeToGroup {
		for _, obj := range target.Objects() {
			if obj.Parent() == target {
				m.layoutObject(ctx, res, obj)
			}
		}
	}
	if ctx.Strategy.ShouldLayoutClipPath(ctx) {
		if clip := target.ClipPath(); clip != nil {
			m.layoutObject(ctx, res, clip)
		}
	}
}

func (m *Manager) layoutObject(_ *StrictContext, res *Result, obj Object) {
	obj.SetPosition(obj.Position().Add(res.Offset))
}

func (m *Manager) onAfterLayout(ctx *StrictContext, res *Result) {
	target := ctx.Target

	if ctx.Strategy.ShouldResetTransform(ctx) {
		target.ResetTransform()
	}

	target.Fire(event.LayoutAfter, &event.Event{
		Target: target,
		Data:   &AfterEvent{Context: ctx, Result: res},
	})

	parent := target.Parent()
	if !ctx.bubbles || parent == nil {
		return
	}
	pm := parent.LayoutManager()
	if pm == nil {
		return
	}

	// The parent resolves its own strategy and bubbling.
	bubbling := ctx.Context
	bubbling.Strategy = nil
	bubbling.Bubbles = nil
	bubbling.Path = append(slices.Clone(ctx.Path), target)
	bubbling.Target = parent
	slogger().Debug("layout: bubbling to parent", "trigger", ctx.Type, "depth", len(bubbling.Path))
	pm.PerformLayout(bubbling)
}
