package Repos

import (
	"time"

	"github.com/g-m-twostay/repobench/Resource"
	"github.com/puzpuzpuz/xsync/v3"
)

// Concurrent is backed by a lock-free xsync.MapOf. Cross-call atomicity is not provided.
type Concurrent struct {
	timed
	m *xsync.MapOf[string, *Resource.Disposable]
}

func NewConcurrent() *Concurrent {
	return &Concurrent{timed: newTimed(), m: xsync.NewMapOf[string, *Resource.Disposable]()}
}

func (u *Concurrent) Type() string {
	return ConcurrentKind
}

// Add ignores r when its id is already present.
func (u *Concurrent) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.m.LoadOrStore(r.ID, r)
	u.record(start)
	return nil
}

func (u *Concurrent) Remove(id string) {
	start := time.Now()
	u.m.Delete(id)
	u.record(start)
}

// Clear isn't atomic with concurrent Add and Remove.
func (u *Concurrent) Clear() {
	start := time.Now()
	u.m.Range(func(_ string, r *Resource.Disposable) bool {
		r.Dispose()
		return true
	})
	u.m.Clear()
	u.record(start)
}

func (u *Concurrent) Len() int {
	return u.m.Size()
}
