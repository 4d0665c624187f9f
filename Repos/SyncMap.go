package Repos

import (
	"sync"
	"time"

	"github.com/g-m-twostay/repobench/Resource"
)

// SyncMap is backed by sync.Map.
type SyncMap struct {
	timed
	m sync.Map
}

func NewSyncMap() *SyncMap {
	return &SyncMap{timed: newTimed()}
}

func (u *SyncMap) Type() string {
	return SyncMapKind
}

func (u *SyncMap) Add(r *Resource.Disposable) error {
	start := time.Now()
	u.m.LoadOrStore(r.ID, r)
	u.record(start)
	return nil
}

func (u *SyncMap) Remove(id string) {
	start := time.Now()
	u.m.Delete(id)
	u.record(start)
}

func (u *SyncMap) Clear() {
	start := time.Now()
	u.m.Range(func(_, v any) bool {
		v.(*Resource.Disposable).Dispose()
		return true
	})
	u.m.Clear()
	u.record(start)
}

// Len walks the map; sync.Map keeps no size.
func (u *SyncMap) Len() (n int) {
	u.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return
}
