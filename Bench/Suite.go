package Bench

import (
	"context"
	"fmt"

	"github.com/g-m-twostay/repobench/Repos"
)

// Sizes returns the workload sizes 0, step, 2*step, ... up to and including n with step=n/10. A step of 0 is raised to 1 so that n<10 still terminates. Stepping stops before s+step could overflow.
func Sizes(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("number of records must be non-negative, got %d", n)
	}
	step := max(n/10, 1)
	out := make([]int64, 0, n/step+1)
	for s := int64(0); ; s += step {
		out = append(out, s)
		if s > n-step {
			break
		}
	}
	return out, nil
}

// Suite runs every size of Sizes(records) against every kind in order, on a fresh repository each time. It stops at the first failed run.
func (d *Driver) Suite(ctx context.Context, records int64, kinds []string) ([]Result, error) {
	sizes, err := Sizes(records)
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		kinds = Repos.DefaultKinds()
	}
	for _, k := range kinds {
		if _, err := Repos.New(k); err != nil {
			return nil, err
		}
	}
	log := d.logger()
	results := make([]Result, 0, len(sizes)*len(kinds))
	for _, s := range sizes {
		for _, k := range kinds {
			repo, _ := Repos.New(k)
			res, err := d.Run(ctx, repo, s)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
		log.Info("workload size done", "executions", s, "of", records, "strategies", len(kinds))
	}
	return results, nil
}
