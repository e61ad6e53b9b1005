package services

import "sync"

// userLocks serializes checkout per user: two concurrent checkouts on the
// same cart must not both read the item set before either clears it.
// Works for a single process; a multi-instance deployment on postgres
// should hold a row lock on the cart instead (clause.Locking).
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *userLocks) lock(userID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
