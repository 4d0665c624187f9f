// Package Ledger implements the execution-time ledger of a repository: a lock-free, append-only collection of durations.
package Ledger

import (
	"sync/atomic"
	"time"
)

type node struct {
	d  time.Duration
	nx atomic.Pointer[node]
}

// Ledger is an unordered multiset of durations. Push is lock-free and safe for any number of concurrent writers; no entry is ever lost.
// Readers (Len, Max, Range, ...) may run during Push but only see entries whose Push finished before the read reached them.
type Ledger struct {
	head, tail atomic.Pointer[node]
	sz         atomic.Int64
}

// New creates an empty Ledger.
func New() *Ledger {
	l := new(Ledger)
	l.Reset()
	return l
}

// Push appends d. The tail is linked with CAS and swung forward by whichever goroutine notices it lagging.
func (l *Ledger) Push(d time.Duration) {
	n := &node{d: d}
	var oldTail *node
	for added := false; !added; {
		oldTail = l.tail.Load()
		if next := oldTail.nx.Load(); next != nil {
			l.tail.CompareAndSwap(oldTail, next)
		} else {
			added = oldTail.nx.CompareAndSwap(nil, n)
		}
	}
	l.tail.CompareAndSwap(oldTail, n)
	l.sz.Add(1)
}

// Len is the number of entries pushed since the last Reset.
func (l *Ledger) Len() int {
	return int(l.sz.Load())
}

// Range over the entries in push order until yield returns false.
func (l *Ledger) Range(yield func(time.Duration) bool) {
	for cur := l.head.Load().nx.Load(); cur != nil; cur = cur.nx.Load() {
		if !yield(cur.d) {
			return
		}
	}
}

// Max returns the largest entry, or an *EmptyLedgerError when there is none.
func (l *Ledger) Max() (time.Duration, error) {
	var m time.Duration
	found := false
	l.Range(func(d time.Duration) bool {
		if !found || d > m {
			m, found = d, true
		}
		return true
	})
	if !found {
		return 0, &EmptyLedgerError{}
	}
	return m, nil
}

// Sum of all entries.
func (l *Ledger) Sum() (s time.Duration) {
	l.Range(func(d time.Duration) bool {
		s += d
		return true
	})
	return
}

// Snapshot copies the entries into a slice.
func (l *Ledger) Snapshot() []time.Duration {
	out := make([]time.Duration, 0, l.Len())
	l.Range(func(d time.Duration) bool {
		out = append(out, d)
		return true
	})
	return out
}

// Reset drops every entry. It must not race with Push.
func (l *Ledger) Reset() {
	sentinel := new(node)
	l.head.Store(sentinel)
	l.tail.Store(sentinel)
	l.sz.Store(0)
}
