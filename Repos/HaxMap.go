package Repos

import (
	"time"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/repobench/Resource"
)

// HaxMap is backed by a lock-free haxmap.Map.
type HaxMap struct {
	timed
	m *haxmap.Map[string, *Resource.Disposable]
}

func NewHaxMap() *HaxMap {
	return &HaxMap{timed: newTimed(), m: haxmap.New[string, *Resource.Disposable]()}
}

func (u *HaxMap) Type() string {
	return HaxMapKind
}

func (u *HaxMap) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.m.GetOrSet(r.ID, r)
	u.record(start)
	return nil
}

func (u *HaxMap) Remove(id string) {
	start := time.Now()
	u.m.Del(id)
	u.record(start)
}

// Clear deletes exactly the keys it visited while releasing them; keys added behind the iterator survive.
func (u *HaxMap) Clear() {
	start := time.Now()
	var keys []string
	u.m.ForEach(func(k string, r *Resource.Disposable) bool {
		r.Dispose()
		keys = append(keys, k)
		return true
	})
	u.m.Del(keys...)
	u.record(start)
}

func (u *HaxMap) Len() int {
	return int(u.m.Len())
}
