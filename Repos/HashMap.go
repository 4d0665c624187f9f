package Repos

import (
	"time"

	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/repobench/Resource"
)

// HashMap is backed by a lock-free cornelk/hashmap.Map.
type HashMap struct {
	timed
	m *hashmap.Map[string, *Resource.Disposable]
}

func NewHashMap() *HashMap {
	return &HashMap{timed: newTimed(), m: hashmap.New[string, *Resource.Disposable]()}
}

func (u *HashMap) Type() string {
	return HashMapKind
}

func (u *HashMap) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.m.Insert(r.ID, r)
	u.record(start)
	return nil
}

func (u *HashMap) Remove(id string) {
	start := time.Now()
	u.m.Del(id)
	u.record(start)
}

// Clear deletes each released key; hashmap.Map has no bulk clear.
func (u *HashMap) Clear() {
	start := time.Now()
	var keys []string
	u.m.Range(func(k string, r *Resource.Disposable) bool {
		r.Dispose()
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		u.m.Del(k)
	}
	u.record(start)
}

func (u *HashMap) Len() int {
	return u.m.Len()
}
