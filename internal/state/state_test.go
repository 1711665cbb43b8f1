package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_GetSet(t *testing.T) {
	s := New(1)
	assert.Equal(t, 1, s.Get())

	s.Set(2)
	assert.Equal(t, 2, s.Get())
}

func TestState_Update(t *testing.T) {
	s := New([]string{"a"})
	got := s.Update(func(v []string) []string { return append(v, "b") })

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{"a", "b"}, s.Get())
}

func TestState_SubscribeOrder(t *testing.T) {
	s := New(0)
	var calls []string

	s.Subscribe(func(v int) { calls = append(calls, "first") })
	s.Subscribe(func(v int) { calls = append(calls, "second") })

	s.Set(5)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestState_SubscriberSeesStoredValue(t *testing.T) {
	s := New("")
	var seen string
	s.Subscribe(func(v string) {
		// Get from inside a subscriber must not deadlock and must match.
		seen = s.Get()
		assert.Equal(t, v, seen)
	})

	s.Set("hello")
	assert.Equal(t, "hello", seen)
}

func TestState_Unsubscribe(t *testing.T) {
	s := New(0)
	var n int
	unsub := s.Subscribe(func(int) { n++ })
	keep := 0
	s.Subscribe(func(int) { keep++ })

	s.Set(1)
	unsub()
	unsub()
	s.Set(2)

	assert.Equal(t, 1, n)
	assert.Equal(t, 2, keep)
}

func TestState_ConcurrentUpdates(t *testing.T) {
	s := New(0)
	var (
		mu   sync.Mutex
		seen []int
	)
	s.Subscribe(func(v int) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Get())
	require.Len(t, seen, 50)
	for i, v := range seen {
		assert.Equal(t, i+1, v)
	}
}
