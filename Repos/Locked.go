package Repos

import (
	"sync"
	"time"

	"github.com/g-m-twostay/repobench/Resource"
)

// Locked is a plain map behind one exclusive lock.
type Locked struct {
	timed
	lock sync.Mutex
	m    map[string]*Resource.Disposable
}

// NewLocked is the constructor for Locked.
func NewLocked() *Locked {
	return &Locked{timed: newTimed(), m: make(map[string]*Resource.Disposable)}
}

func (u *Locked) Type() string {
	return LockedKind
}

// Add fails with *DuplicateKeyError when r.ID is already present; the store is left unchanged in that case.
func (u *Locked) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.lock.Lock()
	_, dup := u.m[r.ID]
	if !dup {
		u.m[r.ID] = r
	}
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
	if dup {
		return &DuplicateKeyError{r.ID}
	}
	return nil
}

func (u *Locked) Remove(id string) {
	start := time.Now()
	u.lock.Lock()
	delete(u.m, id)
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
}

// Clear releases and empties inside a single critical section.
func (u *Locked) Clear() {
	start := time.Now()
	u.lock.Lock()
	defer u.lock.Unlock()
	for _, r := range u.m {
		r.Dispose()
	}
	clear(u.m)
	u.record(start)
}

func (u *Locked) Len() int {
	u.lock.Lock()
	defer u.lock.Unlock()
	return len(u.m)
}
