// Package hooks provides the named-channel registry every scrolling component
// uses to publish and observe motion events.
package hooks

import (
	"fmt"
	"sort"
)

// Handler receives the arguments passed to Trigger.
// Returning true marks the event as handled, which lets the publisher skip
// its default follow-up behaviour.
type Handler func(args ...any) bool

// ListenerID identifies one registration made through On or Once.
type ListenerID uint64

type listener struct {
	id   ListenerID
	fn   Handler
	once bool
}

// Registry is a set of named channels, each holding an ordered listener list.
// A Registry is owned by a single component and is not safe for concurrent use;
// all dispatch happens on the frame loop.
type Registry struct {
	events map[string][]listener
	nextID ListenerID
}

// New creates a registry with the given channels declared.
func New(names ...string) *Registry {
	r := &Registry{events: make(map[string][]listener, len(names))}
	r.RegisterType(names...)
	return r
}

// RegisterType declares new channels. Declaring an existing channel keeps its listeners.
func (r *Registry) RegisterType(names ...string) {
	for _, name := range names {
		if _, ok := r.events[name]; !ok {
			r.events[name] = nil
		}
	}
}

// Has reports whether a channel has been declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.events[name]
	return ok
}

// Names returns the declared channel names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.events))
	for name := range r.events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of listeners registered on a channel.
func (r *Registry) Len(name string) int {
	return len(r.events[name])
}

// On appends a listener to a declared channel.
// Panics if the channel was never declared: subscribing to a channel nobody
// publishes is a wiring bug.
func (r *Registry) On(name string, fn Handler) ListenerID {
	return r.add(name, fn, false)
}

// Once appends a listener that is removed after its first invocation.
func (r *Registry) Once(name string, fn Handler) ListenerID {
	return r.add(name, fn, true)
}

func (r *Registry) add(name string, fn Handler, once bool) ListenerID {
	if !r.Has(name) {
		panic(fmt.Sprintf("hooks: event %q is not registered, registered events: %v", name, r.Names()))
	}
	r.nextID++
	r.events[name] = append(r.events[name], listener{id: r.nextID, fn: fn, once: once})
	return r.nextID
}

// Off removes the given listeners from a channel.
// With no ids it removes every listener on the channel. Removing unknown
// listeners or clearing an empty channel is a no-op.
func (r *Registry) Off(name string, ids ...ListenerID) {
	current, ok := r.events[name]
	if !ok {
		return
	}
	if len(ids) == 0 {
		r.events[name] = nil
		return
	}
	drop := make(map[ListenerID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := current[:0:0]
	for _, l := range current {
		if !drop[l.id] {
			kept = append(kept, l)
		}
	}
	r.events[name] = kept
}

// Trigger invokes the channel's listeners in registration order until one of
// them returns true, and reports whether one did. Listeners after the one that
// handled the event are not called.
// Triggering an undeclared channel does nothing and returns false.
func (r *Registry) Trigger(name string, args ...any) bool {
	current := r.events[name]
	if len(current) == 0 {
		return false
	}
	// Listeners may subscribe or unsubscribe while we dispatch.
	snapshot := make([]listener, len(current))
	copy(snapshot, current)

	for _, l := range snapshot {
		if l.once {
			r.Off(name, l.id)
		}
		if l.fn(args...) {
			return true
		}
	}
	return false
}

// Destroy clears every channel. Channel declarations survive so late
// publishers still get a silent no-op.
func (r *Registry) Destroy() {
	for name := range r.events {
		r.events[name] = nil
	}
}
