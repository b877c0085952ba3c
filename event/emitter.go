package event

// Subscription identifies one handler registered on one Emitter.
// The zero Subscription is never returned by On and is ignored by Off.
type Subscription struct {
	Name string
	id   uint64
}

// Valid reports whether s was returned by On.
func (s Subscription) Valid() bool {
	return s.id != 0
}

type entry struct {
	id      uint64
	handler Handler
}

// Emitter dispatches named events to subscribed handlers.
// The zero value is ready to use.
type Emitter struct {
	nextID   uint64
	handlers map[string][]entry
}

// On subscribes h to the named event and returns the token that removes it.
func (em *Emitter) On(name string, h Handler) Subscription {
	if em.handlers == nil {
		em.handlers = make(map[string][]entry)
	}
	em.nextID++
	em.handlers[name] = append(em.handlers[name], entry{id: em.nextID, handler: h})
	return Subscription{Name: name, id: em.nextID}
}

// Off removes exactly the handler registered under s. Handlers registered
// by other subscribers for the same event are left in place. Removing an
// unknown or already removed subscription is a no-op.
func (em *Emitter) Off(s Subscription) {
	if !s.Valid() {
		return
	}
	list := em.handlers[s.Name]
	for i, e := range list {
		if e.id != s.id {
			continue
		}
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(em.handlers, s.Name)
		} else {
			em.handlers[s.Name] = next
		}
		return
	}
}

// Fire delivers e to every handler subscribed to name at the moment of the
// call. Handlers added or removed while dispatching take effect for the next
// Fire. A nil e is replaced by an empty Event. e.Name is set to name.
func (em *Emitter) Fire(name string, e *Event) {
	list := em.handlers[name]
	if len(list) == 0 {
		return
	}
	if e == nil {
		e = &Event{}
	}
	e.Name = name
	for _, en := range list {
		en.handler(e)
	}
}

// Count returns the number of handlers subscribed to name.
func (em *Emitter) Count(name string) int {
	return len(em.handlers[name])
}
