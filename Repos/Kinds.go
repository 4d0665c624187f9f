package Repos

import "slices"

// Strategy labels, also used as the Type of each repository.
const (
	LockedKind     = "Locked"
	ConcurrentKind = "Concurrent"
	RWLockedKind   = "RWLocked"
	StripedKind    = "Striped"
	SyncMapKind    = "SyncMap"
	HaxMapKind     = "HaxMap"
	HashMapKind    = "HashMap"
	ShardedKind    = "Sharded"
	BTreeKind      = "BTree"
	LLRBKind       = "LLRB"
	TreeMapKind    = "TreeMap"
)

var constructors = map[string]func() Repository{
	LockedKind:     func() Repository { return NewLocked() },
	ConcurrentKind: func() Repository { return NewConcurrent() },
	RWLockedKind:   func() Repository { return NewRWLocked() },
	StripedKind:    func() Repository { return NewStriped(DefaultStripes) },
	SyncMapKind:    func() Repository { return NewSyncMap() },
	HaxMapKind:     func() Repository { return NewHaxMap() },
	HashMapKind:    func() Repository { return NewHashMap() },
	ShardedKind:    func() Repository { return NewSharded() },
	BTreeKind:      func() Repository { return NewBTree() },
	LLRBKind:       func() Repository { return NewLLRB() },
	TreeMapKind:    func() Repository { return NewTreeMap() },
}

var kinds = []string{LockedKind, ConcurrentKind, RWLockedKind, StripedKind, SyncMapKind, HaxMapKind, HashMapKind, ShardedKind, BTreeKind, LLRBKind, TreeMapKind}

// Kinds lists every registered strategy, Locked and Concurrent first.
func Kinds() []string {
	return slices.Clone(kinds)
}

// DefaultKinds is the classic pair: Locked, then Concurrent.
func DefaultKinds() []string {
	return []string{LockedKind, ConcurrentKind}
}

// New creates a fresh repository of the given strategy.
func New(kind string) (Repository, error) {
	if c, ok := constructors[kind]; ok {
		return c(), nil
	}
	return nil, &UnknownKindError{kind}
}
