/*
Package Bench drives the concurrent workload against a repository and produces one Result per run.

A run for workload size N builds two disjoint batches of N+1 fresh resources. The "remove" batch is added first, one goroutine per resource,
so that the remove pass has real entries to delete. The ledger is then reset and the stopwatch started, and three activities race against the
same repository: adding the "add" batch, removing the "remove" batch, and one Clear. At most MaxParallel activities run at once; inside the add and
remove activities every element is its own goroutine. The run ends when everything has joined.
*/
package Bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/g-m-twostay/repobench/Ledger"
	"github.com/g-m-twostay/repobench/Repos"
	"github.com/g-m-twostay/repobench/Resource"
)

// DefaultMaxParallel bounds the number of simultaneously running activities.
const DefaultMaxParallel = 100

// Observer receives every finished run together with the ledger of its measured phase. The ledger is only valid during the call.
type Observer interface {
	Observe(Result, *Ledger.Ledger)
}

// Driver runs workloads. The zero value is usable.
type Driver struct {
	// MaxParallel<=0 means DefaultMaxParallel.
	MaxParallel int
	Logger      *slog.Logger
	Observer    Observer
}

func (d *Driver) maxParallel() int {
	if d.MaxParallel <= 0 {
		return DefaultMaxParallel
	}
	return d.MaxParallel
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// Run one measured workload of the given size against repo. Any error from an operation aborts the run: the remaining units are skipped and the first error is returned.
func (d *Driver) Run(ctx context.Context, repo Repos.Repository, size int64) (Result, error) {
	if size < 0 {
		return Result{}, fmt.Errorf("negative workload size %d", size)
	}
	if size >= math.MaxInt {
		return Result{}, fmt.Errorf("workload size %d too large", size)
	}
	toAdd, toRemove := Resource.NewBatch(int(size+1)), Resource.NewBatch(int(size+1))
	if err := forEach(ctx, toRemove, repo.Add); err != nil {
		return Result{}, fmt.Errorf("pre-populate %s with %d: %w", repo.Type(), size, err)
	}

	ledger := repo.ExecutionTimes()
	ledger.Reset()
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.maxParallel())
	g.Go(func() error {
		return forEach(gctx, toAdd, repo.Add)
	})
	g.Go(func() error {
		return forEach(gctx, toRemove, func(r *Resource.Disposable) error {
			repo.Remove(r.ID)
			return nil
		})
	})
	g.Go(func() error {
		repo.Clear()
		return nil
	})
	err := g.Wait()
	overall := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("run %s with %d: %w", repo.Type(), size, err)
	}

	maxPerAction, err := ledger.Max()
	if err != nil {
		return Result{}, fmt.Errorf("run %s with %d: %w", repo.Type(), size, err)
	}
	res := Result{
		Op:           OpLabel,
		Executions:   size,
		Type:         repo.Type(),
		Overall:      overall,
		MaxPerAction: maxPerAction,
		Actions:      ledger.Len(),
	}
	d.logger().Debug("run finished",
		"type", res.Type,
		"executions", res.Executions,
		"overall", res.Overall,
		"max_per_action", res.MaxPerAction,
		"actions", res.Actions,
		"remaining", repo.Len())
	if d.Observer != nil {
		d.Observer.Observe(res, ledger)
	}
	return res, nil
}

// forEach runs f on every element in its own goroutine and joins them. Once an f fails the elements not yet started are skipped.
func forEach(ctx context.Context, batch []*Resource.Disposable, f func(*Resource.Disposable) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range batch {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(r)
		})
	}
	return g.Wait()
}
