package form

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Sessions keeps one AddRestaurant per page session.
// All sessions submit into the same append callback.
type Sessions struct {
	mu       sync.RWMutex
	forms    map[string]*session
	onAppend AppendFunc
	onCount  func(open int)
	now      func() time.Time
}

type session struct {
	form *AddRestaurant
	// seen is the unix nano time of the last Lookup or Open.
	seen atomic.Int64
}

func (s *session) touch(t time.Time) { s.seen.Store(t.UnixNano()) }

// NewSessions creates an empty session registry whose forms submit into onAppend.
func NewSessions(onAppend AppendFunc) *Sessions {
	return &Sessions{
		forms:    make(map[string]*session),
		onAppend: onAppend,
		now:      time.Now,
	}
}

// OnCount registers fn to be called with the number of open sessions whenever
// a session is opened or evicted.
func (s *Sessions) OnCount(fn func(open int)) {
	s.mu.Lock()
	s.onCount = fn
	s.mu.Unlock()
}

// Lookup returns the form of an existing session and marks the session as used.
func (s *Sessions) Lookup(id string) (*AddRestaurant, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.forms[id]
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess.form, true
}

// Open returns the form for id, creating a fresh session when id is empty or unknown.
// The returned id is the one the caller must use from now on.
func (s *Sessions) Open(id string) (string, *AddRestaurant) {
	if f, ok := s.Lookup(id); ok {
		return id, f
	}

	sess := &session{form: NewAddRestaurant(s.onAppend)}
	sess.touch(s.now())

	s.mu.Lock()
	id = uuid.NewString()
	s.forms[id] = sess
	open := len(s.forms)
	hook := s.onCount
	s.mu.Unlock()

	if hook != nil {
		hook(open)
	}
	return id, sess.form
}

// Evict drops every session not used for longer than maxIdle and returns how many were dropped.
// A draft that was being edited in an evicted session is discarded; submitted restaurants are not affected.
func (s *Sessions) Evict(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle).UnixNano()

	s.mu.Lock()
	n := 0
	for id, sess := range s.forms {
		if sess.seen.Load() < cutoff {
			delete(s.forms, id)
			n++
		}
	}
	open := len(s.forms)
	hook := s.onCount
	s.mu.Unlock()

	if n > 0 && hook != nil {
		hook(open)
	}
	return n
}

// EvictIdle runs Evict every interval until ctx is done.
func (s *Sessions) EvictIdle(ctx context.Context, interval, maxIdle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Evict(maxIdle)
		}
	}
}

// Len returns the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}
