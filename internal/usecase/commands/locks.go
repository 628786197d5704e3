package commands

import (
	"sync"

	"github.com/google/uuid"
)

// ShopperLocks serializes work on one shopper's cart across requests.
// Entries are dropped once nobody holds or waits for them.
type ShopperLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*shopperLock
}

type shopperLock struct {
	mu   sync.Mutex
	refs int
}

func NewShopperLocks() *ShopperLocks {
	return &ShopperLocks{locks: make(map[uuid.UUID]*shopperLock)}
}

// Lock blocks until the shopper's lock is held and returns its release func.
func (l *ShopperLocks) Lock(shopperID uuid.UUID) func() {
	l.mu.Lock()
	sl, ok := l.locks[shopperID]
	if !ok {
		sl = &shopperLock{}
		l.locks[shopperID] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, shopperID)
		}
		l.mu.Unlock()
	}
}

func (l *ShopperLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
