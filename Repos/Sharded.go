package Repos

import (
	"time"

	"github.com/g-m-twostay/repobench/Resource"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Sharded is backed by orcaman/concurrent-map, a fixed set of read-write locked shards.
type Sharded struct {
	timed
	m cmap.ConcurrentMap[string, *Resource.Disposable]
}

func NewSharded() *Sharded {
	return &Sharded{timed: newTimed(), m: cmap.New[*Resource.Disposable]()}
}

func (u *Sharded) Type() string {
	return ShardedKind
}

func (u *Sharded) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.m.SetIfAbsent(r.ID, r)
	u.record(start)
	return nil
}

func (u *Sharded) Remove(id string) {
	start := time.Now()
	u.m.Remove(id)
	u.record(start)
}

// Clear locks one shard at a time, so it isn't atomic across shards.
func (u *Sharded) Clear() {
	start := time.Now()
	u.m.IterCb(func(_ string, r *Resource.Disposable) {
		r.Dispose()
	})
	u.m.Clear()
	u.record(start)
}

func (u *Sharded) Len() int {
	return u.m.Count()
}
