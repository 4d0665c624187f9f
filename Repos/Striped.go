package Repos

import (
	"math/bits"
	"sync"
	"time"

	"github.com/g-m-twostay/repobench/Resource"
)

// DefaultStripes is the stripe count used by New(StripedKind).
const DefaultStripes uint = 16

type stripe struct {
	sync.Mutex
	m map[string]*Resource.Disposable
}

// Striped splits the store over a power of 2 number of plain maps, each behind its own lock. Only keys hashing to the same stripe contend.
// Duplicate ids are ignored.
type Striped struct {
	timed
	stripes []stripe
	mask    uint
	hasher  Hasher
}

// NewStriped rounds n up to a power of 2; n==0 uses DefaultStripes.
func NewStriped(n uint) *Striped {
	if n == 0 {
		n = DefaultStripes
	}
	n = 1 << bits.Len(n-1)
	s := &Striped{timed: newTimed(), stripes: make([]stripe, n), mask: n - 1, hasher: NewHasher()}
	for i := range s.stripes {
		s.stripes[i].m = make(map[string]*Resource.Disposable)
	}
	return s
}

func (u *Striped) Type() string {
	return StripedKind
}

func (u *Striped) of(id string) *stripe {
	return &u.stripes[u.hasher.HashString(id)&u.mask]
}

func (u *Striped) Add(r *Resource.Disposable) error {
	start := time.Now()
	s := u.of(r.ID)
	s.Lock()
	if _, ok := s.m[r.ID]; !ok {
		s.m[r.ID] = r
	}
	d := time.Since(start)
	s.Unlock()
	u.ledger.Push(d)
	return nil
}

func (u *Striped) Remove(id string) {
	start := time.Now()
	s := u.of(id)
	s.Lock()
	delete(s.m, id)
	d := time.Since(start)
	s.Unlock()
	u.ledger.Push(d)
}

// Clear takes every stripe lock in index order before releasing anything, so it is atomic like Locked.Clear.
func (u *Striped) Clear() {
	start := time.Now()
	for i := range u.stripes {
		u.stripes[i].Lock()
	}
	for i := range u.stripes {
		for _, r := range u.stripes[i].m {
			r.Dispose()
		}
		clear(u.stripes[i].m)
	}
	d := time.Since(start)
	for i := range u.stripes {
		u.stripes[i].Unlock()
	}
	u.ledger.Push(d)
}

func (u *Striped) Len() (n int) {
	for i := range u.stripes {
		u.stripes[i].Lock()
		n += len(u.stripes[i].m)
		u.stripes[i].Unlock()
	}
	return
}
