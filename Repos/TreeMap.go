package Repos

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/g-m-twostay/repobench/Resource"
)

// TreeMap is a gods red-black tree map behind one exclusive lock. Duplicate ids are ignored.
type TreeMap struct {
	timed
	lock sync.Mutex
	m    *treemap.Map
}

func NewTreeMap() *TreeMap {
	return &TreeMap{timed: newTimed(), m: treemap.NewWithStringComparator()}
}

func (u *TreeMap) Type() string {
	return TreeMapKind
}

func (u *TreeMap) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.lock.Lock()
	if _, found := u.m.Get(r.ID); !found {
		u.m.Put(r.ID, r)
	}
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
	return nil
}

func (u *TreeMap) Remove(id string) {
	start := time.Now()
	u.lock.Lock()
	u.m.Remove(id)
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
}

func (u *TreeMap) Clear() {
	start := time.Now()
	u.lock.Lock()
	defer u.lock.Unlock()
	u.m.Each(func(_, v any) {
		v.(*Resource.Disposable).Dispose()
	})
	u.m.Clear()
	u.record(start)
}

func (u *TreeMap) Len() int {
	u.lock.Lock()
	defer u.lock.Unlock()
	return u.m.Size()
}
