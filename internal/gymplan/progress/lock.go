package progress

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes schedule writes per user. Entries are dropped when
// the last holder unlocks.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	mu      sync.Mutex
	holders int
}

func newUserLocks() *userLocks {
	return &userLocks{
		locks: make(map[uuid.UUID]*userLock),
	}
}

func (l *userLocks) Lock(userID uuid.UUID) (unlock func()) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.holders++
	l.mu.Unlock()

	ul.mu.Lock()
	return func() {
		ul.mu.Unlock()

		l.mu.Lock()
		ul.holders--
		if ul.holders == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}

func (l *userLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
