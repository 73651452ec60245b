package services

import "sync"

// userLocks serializes read-modify-write cycles per user so an interactive
// update and the reminder sweep never interleave on the same account.
// Users are independent; there is no cross-user ordering.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*lockEntry)}
}

// Lock acquires the mutex for one user, creating it on first use.
func (l *userLocks) Lock(userID int64) {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &lockEntry{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the user's mutex and drops it once nobody waits on it.
func (l *userLocks) Unlock(userID int64) {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if ok {
		entry.refs--
		if entry.refs <= 0 {
			delete(l.locks, userID)
		}
	}
	l.mu.Unlock()

	if ok {
		entry.mu.Unlock()
	}
}
