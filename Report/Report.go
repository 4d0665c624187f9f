// Package Report groups benchmark rows by workload size and renders them.
package Report

import (
	"cmp"
	"slices"

	"github.com/g-m-twostay/repobench/Bench"
)

// Group is the rows of one workload size, slowest single action first.
type Group struct {
	Executions int64          `json:"executions" yaml:"executions"`
	Rows       []Bench.Result `json:"rows" yaml:"rows"`
}

// Build sorts rows descending by MaxPerAction, ties keeping input order, then groups them by Executions.
// A group's position is that of its slowest row, so the group holding the slowest action comes first. rows isn't modified.
func Build(rows []Bench.Result) []Group {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b Bench.Result) int {
		return cmp.Compare(b.MaxPerAction, a.MaxPerAction)
	})
	var groups []Group
	index := make(map[int64]int)
	for _, r := range sorted {
		i, ok := index[r.Executions]
		if !ok {
			i = len(groups)
			index[r.Executions] = i
			groups = append(groups, Group{Executions: r.Executions})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}
