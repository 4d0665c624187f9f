package Repos

import (
	"sync"
	"time"

	"github.com/g-m-twostay/repobench/Resource"
)

// RWLocked is Locked with a read-write lock. Every mutation still takes the write lock, so only Len benefits; it shows what the reader side costs writers.
// Duplicate ids are ignored.
type RWLocked struct {
	timed
	lock sync.RWMutex
	m    map[string]*Resource.Disposable
}

func NewRWLocked() *RWLocked {
	return &RWLocked{timed: newTimed(), m: make(map[string]*Resource.Disposable)}
}

func (u *RWLocked) Type() string {
	return RWLockedKind
}

func (u *RWLocked) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.lock.Lock()
	if _, ok := u.m[r.ID]; !ok {
		u.m[r.ID] = r
	}
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
	return nil
}

func (u *RWLocked) Remove(id string) {
	start := time.Now()
	u.lock.Lock()
	delete(u.m, id)
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
}

func (u *RWLocked) Clear() {
	start := time.Now()
	u.lock.Lock()
	defer u.lock.Unlock()
	for _, r := range u.m {
		r.Dispose()
	}
	clear(u.m)
	u.record(start)
}

func (u *RWLocked) Len() int {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return len(u.m)
}
