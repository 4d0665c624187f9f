/*
Package Repos implements the storage strategies whose per-operation latency is benchmarked against each other.

# Strategies
Locked guards a plain map with one exclusive lock. Concurrent uses a lock-free concurrent map and needs no external lock. The remaining strategies
are the same two ideas over other containers: ordered trees behind one lock (BTree, LLRB, TreeMap), a read-write lock (RWLocked), striped locks (Striped),
and third-party concurrent maps (SyncMap, HaxMap, HashMap, Sharded).

# Timing
Every Add, Remove and Clear appends exactly one duration to the repository's Ledger. Clear records one duration for the whole release-and-empty step, not one per element.
For lock-based strategies the timer starts before the lock is requested and stops inside the critical section, so it includes the time spent waiting for the lock.
Taking the time itself costs a few tens of nanoseconds per call; that cost is part of every measurement and is identical across strategies.

# Duplicates
Locked reports a duplicate id as a *DuplicateKeyError, matching the semantics of an insert into a plain dictionary. Every other strategy ignores a duplicate Add silently (insert-if-absent).

# Clear
Lock-based strategies release and empty inside one critical section, so the store is empty when Clear returns. Lock-free strategies iterate, release and then empty
without any atomicity against concurrent Add or Remove: a resource added during the iteration may or may not be released and may or may not survive.
*/
package Repos

import (
	"time"

	"github.com/g-m-twostay/repobench/Ledger"
	"github.com/g-m-twostay/repobench/Resource"
)

// Repository is the capability shared by all strategies.
type Repository interface {
	// Add inserts r keyed by its id.
	Add(r *Resource.Disposable) error
	// Remove deletes the entry for id if present.
	Remove(id string)
	// Clear releases every held resource and empties the store.
	Clear()
	// ExecutionTimes is the ledger of observed operation durations.
	ExecutionTimes() *Ledger.Ledger
	// Type is the strategy label.
	Type() string
	// Len is the current number of stored resources. It isn't linearizable for lock-free strategies.
	Len() int
}

// timed holds the parts every strategy shares.
type timed struct {
	ledger *Ledger.Ledger
}

func newTimed() timed {
	return timed{Ledger.New()}
}

func (t timed) ExecutionTimes() *Ledger.Ledger {
	return t.ledger
}

// record pushes the time elapsed since start.
func (t timed) record(start time.Time) {
	t.ledger.Push(time.Since(start))
}
