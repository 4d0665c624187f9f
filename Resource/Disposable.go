// Package Resource holds the disposable unit of work that repositories store.
package Resource

import (
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

// Disposable is an identity-bearing resource with an explicit release step. Only a repository's Clear releases it; Add and Remove never do.
type Disposable struct {
	ID       string
	released atomic.Bool
}

// New creates a Disposable with a fresh unique id.
func New() *Disposable {
	return &Disposable{ID: ulid.Make().String()}
}

// NewBatch creates n Disposables with fresh unique ids. n<=0 gives an empty batch.
func NewBatch(n int) []*Disposable {
	if n <= 0 {
		return nil
	}
	batch := make([]*Disposable, n)
	for i := range batch {
		batch[i] = New()
	}
	return batch
}

// Dispose releases the resource. Calling it more than once is safe.
func (d *Disposable) Dispose() {
	d.released.Store(true)
}

// Disposed reports whether Dispose has been called.
func (d *Disposable) Disposed() bool {
	return d.released.Load()
}
