// Package reactive holds observable values for UI data binding.
//
// Notification is synchronous: Set invokes every subscriber on the calling
// goroutine before it returns. A subscriber that calls Set on the variable it
// is subscribed to re-enters the notification loop, so subscribers should not
// do that. Goroutines that want to follow a value should use Observe and select
// on the stream instead of subscribing.
package reactive

import (
	observer "github.com/imkira/go-observer/v2"
)

// Producer is the read-only side of a Variable.
type Producer[T any] interface {
	// Current returns the latest value.
	Current() T
	// Changes calls fn with every new value until lt is destroyed.
	Changes(lt *Lifetime, fn func(T))
	// Value calls fn with the current value and then with every new value.
	Value(lt *Lifetime, fn func(T))
	// Observe returns a stream positioned at the current value.
	Observe() observer.Stream[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Variable is a value cell that notifies subscribers when it changes.
// Setting a value equal to the current one does nothing.
type Variable[T comparable] struct {
	prop   observer.Property[T]
	subs   []subscriber[T]
	nextID uint64
}

// NewVariable creates a Variable holding initial.
func NewVariable[T comparable](initial T) *Variable[T] {
	return &Variable[T]{
		prop: observer.NewProperty(initial),
	}
}

// Current returns the latest value.
func (v *Variable[T]) Current() T {
	return v.prop.Value()
}

// Set stores val and, if it differs from the current value, notifies
// subscribers in registration order. It reports whether the value changed.
func (v *Variable[T]) Set(val T) bool {
	if v.prop.Value() == val {
		return false
	}
	v.prop.Update(val)

	// Snapshot so subscribers may unsubscribe while being notified.
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	for _, s := range subs {
		s.fn(val)
	}
	return true
}

// Changes subscribes fn to future values. A nil lifetime keeps the
// subscription for as long as the variable lives.
func (v *Variable[T]) Changes(lt *Lifetime, fn func(T)) {
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	if lt != nil {
		lt.Add(func() { v.unsubscribe(id) })
	}
}

// Value calls fn with the current value, then subscribes it to future values.
func (v *Variable[T]) Value(lt *Lifetime, fn func(T)) {
	fn(v.Current())
	v.Changes(lt, fn)
}

// Observe returns a stream for consumers running their own loop.
func (v *Variable[T]) Observe() observer.Stream[T] {
	return v.prop.Observe()
}

// Subscribers returns the number of live subscriptions.
func (v *Variable[T]) Subscribers() int {
	return len(v.subs)
}

func (v *Variable[T]) unsubscribe(id uint64) {
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
			return
		}
	}
}
