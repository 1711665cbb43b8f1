// Package state provides an observable value container.
//
// A State holds one value and notifies its subscribers after every change, in
// registration order. Changes and the notifications that follow them are
// serialised, so subscribers observe values in the same order they were stored
// even when Set is called from several goroutines.
//
// Subscribers may call Get but must not Set or Update the State that is
// notifying them.
package state

import "sync"

// Unsubscribe removes a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// State wraps a value and notifies subscribers when it changes.
type State[T any] struct {
	loop sync.Mutex // serialises transitions and their notifications

	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   []subscriber[T]
}

// New creates a State holding initial.
func New[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and notifies subscribers.
func (s *State[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) and notifies subscribers.
// The read-modify-write is atomic with respect to other Set and Update calls.
func (s *State[T]) Update(fn func(T) T) T {
	s.loop.Lock()
	defer s.loop.Unlock()

	s.mu.Lock()
	next := fn(s.value)
	s.value = next
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return next
}

// Subscribe registers fn to be called with the new value after every change.
func (s *State[T]) Subscribe(fn func(T)) Unsubscribe {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
