package model

import (
	"slices"

	"github.com/signadot/nodebase/debug"
)

// PropertyChangedEvent describes a change to a property of Sender.
type PropertyChangedEvent struct {
	Sender   Node
	Property string
}

// PropertyChangedHandler is called synchronously after a property changes.
// A handler that panics is not recovered.
type PropertyChangedHandler func(ev *PropertyChangedEvent)

type handlerEntry struct {
	id uint64
	h  PropertyChangedHandler
}

// Subscription is the registration of a handler with a node.
type Subscription struct {
	b  *Base
	id uint64
}

// Unsubscribe removes the handler.  Calling it more than once has no effect.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.b == nil {
		return
	}
	b := s.b
	s.b = nil
	// replace rather than modify in place, a notification in progress keeps
	// its snapshot.
	b.handlers = slices.DeleteFunc(slices.Clone(b.handlers), func(e handlerEntry) bool {
		return e.id == s.id
	})
}

// OnPropertyChanged registers h to be called after each property change.
// Handlers are called in registration order.
func (b *Base) OnPropertyChanged(h PropertyChangedHandler) *Subscription {
	b.nextID++
	b.handlers = append(b.handlers, handlerEntry{id: b.nextID, h: h})
	return &Subscription{b: b, id: b.nextID}
}

// HasPropertyChangedHandlers reports whether any handler is registered.
func (b *Base) HasPropertyChangedHandlers() bool {
	return len(b.handlers) != 0
}

// NotifyPropertyChanged is called by setters of sender after property has
// changed.  With no handlers registered it returns without building an
// event.
func (b *Base) NotifyPropertyChanged(sender Node, property string) {
	if len(b.handlers) == 0 {
		return
	}
	handlers := b.handlers
	if debug.Notify() {
		debug.Logf("notify %d handlers of %s.%s\n", len(handlers), sender, property)
	}
	ev := &PropertyChangedEvent{Sender: sender, Property: property}
	for _, e := range handlers {
		e.h(ev)
	}
}
