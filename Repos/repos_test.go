package Repos

import (
	"errors"
	"sync"
	"testing"

	"github.com/g-m-twostay/repobench/Resource"
)

func TestNew_AllKinds(t *testing.T) {
	for _, k := range Kinds() {
		r, err := New(k)
		if err != nil {
			t.Fatalf("New(%q): %v", k, err)
		}
		if r.Type() != k {
			t.Errorf("New(%q).Type() is %q", k, r.Type())
		}
		if r.ExecutionTimes() == nil || r.ExecutionTimes().Len() != 0 {
			t.Errorf("%s: fresh ledger isn't empty", k)
		}
	}
}

func TestNew_Unknown(t *testing.T) {
	var unknown *UnknownKindError
	if _, err := New("Nope"); !errors.As(err, &unknown) || unknown.Kind != "Nope" {
		t.Errorf("New(Nope) returned %v, want *UnknownKindError", err)
	}
}

func TestDefaultKinds(t *testing.T) {
	d := DefaultKinds()
	if len(d) != 2 || d[0] != LockedKind || d[1] != ConcurrentKind {
		t.Errorf("default kinds are %v", d)
	}
	if k := Kinds(); k[0] != LockedKind || k[1] != ConcurrentKind {
		t.Errorf("kinds don't start with the default pair: %v", k)
	}
}

func TestRepository_AddRemoveLedger(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k, func(t *testing.T) {
			r, _ := New(k)
			batch := Resource.NewBatch(50)
			for _, d := range batch {
				if err := r.Add(d); err != nil {
					t.Fatalf("add %s: %v", d.ID, err)
				}
			}
			if r.Len() != 50 {
				t.Errorf("len is %d, want 50", r.Len())
			}
			for _, d := range batch[:20] {
				r.Remove(d.ID)
			}
			if r.Len() != 30 {
				t.Errorf("len after remove is %d, want 30", r.Len())
			}
			if n := r.ExecutionTimes().Len(); n != 70 {
				t.Errorf("ledger has %d entries, want 70", n)
			}
			for _, d := range batch {
				if d.Disposed() {
					t.Errorf("%s disposed without Clear", d.ID)
				}
			}
		})
	}
}

func TestRepository_RemoveIdempotent(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k, func(t *testing.T) {
			r, _ := New(k)
			d := Resource.New()
			if err := r.Add(d); err != nil {
				t.Fatal(err)
			}
			r.Remove(d.ID)
			r.Remove(d.ID)
			r.Remove("missing")
			if r.Len() != 0 {
				t.Errorf("len is %d, want 0", r.Len())
			}
			if n := r.ExecutionTimes().Len(); n != 4 {
				t.Errorf("ledger has %d entries, want 4", n)
			}
		})
	}
}

func TestRepository_ClearDisposes(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k, func(t *testing.T) {
			r, _ := New(k)
			batch := Resource.NewBatch(100)
			for _, d := range batch {
				r.Add(d)
			}
			before := r.ExecutionTimes().Len()
			r.Clear()
			if r.Len() != 0 {
				t.Errorf("len after clear is %d, want 0", r.Len())
			}
			for _, d := range batch {
				if !d.Disposed() {
					t.Errorf("%s not disposed by Clear", d.ID)
					break
				}
			}
			if n := r.ExecutionTimes().Len(); n != before+1 {
				t.Errorf("clear added %d ledger entries, want 1", n-before)
			}
			r.Clear()
			if n := r.ExecutionTimes().Len(); n != before+2 {
				t.Errorf("empty clear didn't record, ledger has %d", n)
			}
		})
	}
}

func TestRepository_Duplicate(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k, func(t *testing.T) {
			r, _ := New(k)
			d := Resource.New()
			if err := r.Add(d); err != nil {
				t.Fatal(err)
			}
			err := r.Add(&Resource.Disposable{ID: d.ID})
			if k == LockedKind {
				var dup *DuplicateKeyError
				if !errors.As(err, &dup) || dup.ID != d.ID {
					t.Errorf("duplicate add returned %v, want *DuplicateKeyError", err)
				}
			} else if err != nil {
				t.Errorf("duplicate add returned %v, want nil", err)
			}
			if r.Len() != 1 {
				t.Errorf("len is %d, want 1", r.Len())
			}
			if n := r.ExecutionTimes().Len(); n != 2 {
				t.Errorf("ledger has %d entries, want 2", n)
			}
			r.Clear()
			if !d.Disposed() {
				t.Error("the first stored resource was replaced by the duplicate")
			}
		})
	}
}

func TestRepository_ConcurrentMutation(t *testing.T) {
	const n = 2000
	for _, k := range Kinds() {
		t.Run(k, func(t *testing.T) {
			r, _ := New(k)
			toRemove, toAdd := Resource.NewBatch(n), Resource.NewBatch(n)
			for _, d := range toRemove {
				r.Add(d)
			}
			r.ExecutionTimes().Reset()
			var wg sync.WaitGroup
			for i := range n {
				wg.Add(2)
				go func() {
					defer wg.Done()
					if err := r.Add(toAdd[i]); err != nil {
						t.Error(err)
					}
				}()
				go func() {
					defer wg.Done()
					r.Remove(toRemove[i].ID)
				}()
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.Clear()
			}()
			wg.Wait()
			if got := r.ExecutionTimes().Len(); got != 2*n+1 {
				t.Errorf("ledger has %d entries, want %d", got, 2*n+1)
			}
		})
	}
}

func TestStriped_PowerOfTwo(t *testing.T) {
	for in, want := range map[uint]int{0: int(DefaultStripes), 1: 1, 3: 4, 16: 16, 17: 32} {
		if got := len(NewStriped(in).stripes); got != want {
			t.Errorf("NewStriped(%d) has %d stripes, want %d", in, got, want)
		}
	}
}

func TestHasher_Stable(t *testing.T) {
	h := NewHasher()
	if h.HashString("a") != h.HashString("a") {
		t.Error("hash of the same string differs")
	}
}
