// Package layout recomputes the size and position of container objects.
//
// Every container owns one [Manager]. The manager listens to its members'
// modification events, and whenever a member is added, removed or
// transformed, or when the application asks for it imperatively, it runs one
// layout pass:
//
//	onBeforeLayout -> Strategy.CalcLayoutResult -> commit -> onAfterLayout
//
// The new size and center come from a pluggable [Strategy]. [FitContent],
// the default, fits the container tightly around its members. [Fixed] keeps
// the container's size and only lays out when asked to, and [ClipPath] sizes
// the container to its clip path.
//
// After its own pass a manager hands the context to the manager of the
// parent container, so a single change bubbles up to the scene root. A
// layout:before listener may call [StrictContext.StopPropagation] to end the
// wave at the current container.
//
// The package consumes the object model only through the [Object] and
// [Target] interfaces; the canvas package provides the concrete types.
// Layout is synchronous and re-entrant, and not safe for concurrent use.
package layout
