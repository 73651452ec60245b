package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserLocksSerializesSameUser(t *testing.T) {
	locks := newUserLocks()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock(42)
			defer locks.Unlock(42)

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen, "at most one writer per user")
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()

	locks.Lock(1)
	done := make(chan struct{})
	go func() {
		locks.Lock(2)
		locks.Unlock(2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on user 2 blocked by user 1")
	}
	locks.Unlock(1)
}

func TestUserLocksDropsIdleEntries(t *testing.T) {
	locks := newUserLocks()

	locks.Lock(7)
	locks.Unlock(7)

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}
