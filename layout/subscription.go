package layout

import "github.com/gogpu/canvas/event"

// subscribe attaches the layout triggers of obj, replacing any previous
// subscription of this manager on it.
func (m *Manager) subscribe(ctx *StrictContext, obj Object) {
	target := ctx.Target
	m.unsubscribe(ctx, obj)

	subs := make([]event.Subscription, 0, len(modifyingEvents)+1)
	subs = append(subs, obj.On(event.Modified, func(e *event.Event) {
		m.PerformLayout(Context{
			Type:      TriggerObjectModified,
			Target:    target,
			EventName: event.Modified,
			Event:     memberEvent(e, obj),
		})
	}))
	for _, name := range modifyingEvents {
		name := name
		subs = append(subs, obj.On(name, func(e *event.Event) {
			m.PerformLayout(Context{
				Type:      TriggerObjectModifying,
				Target:    target,
				EventName: name,
				Event:     memberEvent(e, obj),
			})
		}))
	}
	if m.subscriptions == nil {
		m.subscriptions = make(map[Object][]event.Subscription)
	}
	m.subscriptions[obj] = subs
}

// unsubscribe detaches the handlers this manager attached to obj.
func (m *Manager) unsubscribe(_ *StrictContext, obj Object) {
	for _, s := range m.subscriptions[obj] {
		obj.Off(s)
	}
	delete(m.subscriptions, obj)
}

// Subscribed reports whether the manager currently listens to obj.
func (m *Manager) Subscribed(obj Object) bool {
	_, ok := m.subscriptions[obj]
	return ok
}

// Dispose unsubscribes from every member. The manager stays usable; members
// added later are subscribed again.
func (m *Manager) Dispose() {
	for obj, subs := range m.subscriptions {
		for _, s := range subs {
			obj.Off(s)
		}
	}
	clear(m.subscriptions)
}

func memberEvent(e *event.Event, obj Object) *event.Event {
	c := e.Clone()
	c.Target = obj
	return c
}
