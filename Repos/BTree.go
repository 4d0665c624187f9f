package Repos

import (
	"sync"
	"time"

	"github.com/g-m-twostay/repobench/Resource"
	"github.com/google/btree"
)

const btreeDegree = 32

func lessID(a, b *Resource.Disposable) bool {
	return a.ID < b.ID
}

// BTree is an ordered google/btree behind one exclusive lock. Duplicate ids are ignored.
type BTree struct {
	timed
	lock sync.Mutex
	t    *btree.BTreeG[*Resource.Disposable]
}

func NewBTree() *BTree {
	return &BTree{timed: newTimed(), t: btree.NewG[*Resource.Disposable](btreeDegree, lessID)}
}

func (u *BTree) Type() string {
	return BTreeKind
}

func (u *BTree) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.lock.Lock()
	if !u.t.Has(r) {
		u.t.ReplaceOrInsert(r)
	}
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
	return nil
}

func (u *BTree) Remove(id string) {
	probe := &Resource.Disposable{ID: id}
	start := time.Now()
	u.lock.Lock()
	u.t.Delete(probe)
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
}

func (u *BTree) Clear() {
	start := time.Now()
	u.lock.Lock()
	defer u.lock.Unlock()
	u.t.Ascend(func(r *Resource.Disposable) bool {
		r.Dispose()
		return true
	})
	u.t.Clear(true)
	u.record(start)
}

func (u *BTree) Len() int {
	u.lock.Lock()
	defer u.lock.Unlock()
	return u.t.Len()
}
