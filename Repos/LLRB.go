package Repos

import (
	"sync"
	"time"

	"github.com/g-m-twostay/repobench/Resource"
	"github.com/petar/GoLLRB/llrb"
)

// llrbItem orders resources by id.
type llrbItem struct {
	*Resource.Disposable
}

func (a llrbItem) Less(than llrb.Item) bool {
	return a.ID < than.(llrbItem).ID
}

// LLRB is a left-leaning red-black tree behind one exclusive lock. Duplicate ids are ignored.
type LLRB struct {
	timed
	lock sync.Mutex
	t    *llrb.LLRB
}

func NewLLRB() *LLRB {
	return &LLRB{timed: newTimed(), t: llrb.New()}
}

func (u *LLRB) Type() string {
	return LLRBKind
}

// Add checks Has first; InsertNoReplace would keep both copies of a duplicate.
func (u *LLRB) Add(r *Resource.Disposable) error {
	item := llrbItem{r}
	start := time.Now()
	u.lock.Lock()
	if !u.t.Has(item) {
		u.t.ReplaceOrInsert(item)
	}
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
	return nil
}

func (u *LLRB) Remove(id string) {
	probe := llrbItem{&Resource.Disposable{ID: id}}
	start := time.Now()
	u.lock.Lock()
	u.t.Delete(probe)
	d := time.Since(start)
	u.lock.Unlock()
	u.ledger.Push(d)
}

func (u *LLRB) Clear() {
	start := time.Now()
	u.lock.Lock()
	defer u.lock.Unlock()
	if first := u.t.Min(); first != nil {
		u.t.AscendGreaterOrEqual(first, func(i llrb.Item) bool {
			i.(llrbItem).Dispose()
			return true
		})
	}
	u.t = llrb.New()
	u.record(start)
}

func (u *LLRB) Len() int {
	u.lock.Lock()
	defer u.lock.Unlock()
	return u.t.Len()
}
