package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
	assert.Equal(t, 2, lm.Len())
}

func TestWithLock_Serializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("session", func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestWithLock_ReturnsError(t *testing.T) {
	lm := NewLockManager()
	want := errors.New("boom")

	assert.ErrorIs(t, lm.WithLock("k", func() error { return want }), want)
	// The lock must have been released
	assert.True(t, lm.GetLock("k").TryLock())
}

func TestRemove(t *testing.T) {
	lm := NewLockManager()
	first := lm.GetLock("k")

	lm.Remove("k")

	assert.Zero(t, lm.Len())
	assert.NotSame(t, first, lm.GetLock("k"))
}
