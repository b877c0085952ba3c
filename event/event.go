// Package event implements the synchronous observer used by canvas objects.
//
// Handlers are invoked on the caller's goroutine, in subscription order,
// before Fire returns. An Emitter is not safe for concurrent use; the object
// model it serves is single threaded.
package event

// Object modification events. Interactive tools fire the *ing variants while
// a gesture is in progress and Modified once it ends. Changed is fired by
// editable text.
const (
	Modified = "modified"
	Moving   = "moving"
	Resizing = "resizing"
	Rotating = "rotating"
	Scaling  = "scaling"
	Skewing  = "skewing"
	Changed  = "changed"
)

// Membership events.
const (
	Added         = "added"
	Removed       = "removed"
	ObjectAdded   = "object:added"
	ObjectRemoved = "object:removed"
)

// Layout events fired on a container by its layout manager.
const (
	LayoutBefore = "layout:before"
	LayoutAfter  = "layout:after"
)

// Event is the payload delivered to handlers.
type Event struct {
	// Name is the fired event name.
	Name string

	// Target is the object the event is about. Emitters do not fill it in;
	// the firing side decides what it refers to.
	Target any

	// Data carries event specific information, for example the layout
	// context of a layout:before event.
	Data any
}

// Clone returns a shallow copy of e.
func (e *Event) Clone() *Event {
	if e == nil {
		return &Event{}
	}
	c := *e
	return &c
}

// Handler receives fired events.
type Handler func(e *Event)
