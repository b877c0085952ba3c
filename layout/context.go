package layout

import (
	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/geom"
)

// Trigger tells why a layout was requested.
type Trigger string

// Layout triggers.
const (
	TriggerInitialization  Trigger = "initialization"
	TriggerAdded           Trigger = "added"
	TriggerRemoved         Trigger = "removed"
	TriggerObjectModified  Trigger = "object_modified"
	TriggerObjectModifying Trigger = "object_modifying"
	TriggerImperative      Trigger = "imperative"
)

// Context describes one layout request. Which fields are meaningful
// depends on Type.
type Context struct {
	Type Trigger

	// Target is the container being laid out.
	Target Target

	// Strategy overrides the manager's strategy for this request only.
	Strategy Strategy

	// Path lists the containers already laid out by the current bubbling
	// wave, starting from the one where the wave began.
	Path []Target

	// Targets are the affected members of initialization, added and
	// removed requests.
	Targets []Object

	// X and Y force the container's left/top on initialization.
	X, Y *float64

	// ObjectsRelativeToGroup reports, on initialization, that member
	// positions are already expressed relative to the container's center.
	ObjectsRelativeToGroup bool

	// EventName and Event carry the member event behind object_modified and
	// object_modifying requests. Event.Target is the member.
	EventName string
	Event     *event.Event

	// Deep lays out nested containers first on imperative requests.
	Deep bool

	// Bubbles overrides whether the request propagates to the parent.
	Bubbles *bool

	// Overrides replaces the strategy output on imperative requests.
	Overrides *StrategyResult
}

// ImperativeOptions are the knobs of an imperative layout request.
type ImperativeOptions struct {
	Strategy  Strategy
	Deep      bool
	Bubbles   *bool
	Overrides *StrategyResult
}

// Imperative builds an imperative Context for target.
func Imperative(target Target, opts ImperativeOptions) Context {
	return Context{
		Type:      TriggerImperative,
		Target:    target,
		Strategy:  opts.Strategy,
		Deep:      opts.Deep,
		Bubbles:   opts.Bubbles,
		Overrides: opts.Overrides,
	}
}

// StrictContext is the Context of a running layout pass. Strategy is always
// resolved. It lives for one PerformLayout call.
type StrictContext struct {
	Context

	// PrevStrategy is the strategy of the manager's previous layout, nil on
	// the first one.
	PrevStrategy Strategy

	bubbles bool
}

// Bubbling reports whether the pass will propagate to the parent container.
func (c *StrictContext) Bubbling() bool {
	return c.bubbles
}

// StopPropagation prevents the current wave from reaching the parent
// container. The layout of the current container is not affected.
func (c *StrictContext) StopPropagation() {
	c.bubbles = false
}

// StrategyResult is what a strategy computes for a container.
type StrategyResult struct {
	// Center is the new center in the container's parent plane.
	Center geom.Point

	// Correction translates members, measured in the same plane as Center.
	Correction geom.Point

	// RelativeCorrection translates members, measured in the container's
	// own plane.
	RelativeCorrection geom.Point

	// Size is the new width and height of the container.
	Size geom.Point
}

// Result is a committed or committable layout.
type Result struct {
	StrategyResult StrategyResult
	PrevCenter     geom.Point
	NextCenter     geom.Point

	// Offset is the translation applied to every member, in the
	// container's own plane.
	Offset geom.Point
}

// BeforeEvent is the Data of a layout:before event.
type BeforeEvent struct {
	Context *StrictContext
}

// AfterEvent is the Data of a layout:after event. Result is nil when the
// strategy did not produce a layout.
type AfterEvent struct {
	Context *StrictContext
	Result  *Result
}
