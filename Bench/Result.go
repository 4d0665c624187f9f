package Bench

import "time"

// OpLabel is the operation label carried by every row; a run mixes adds, removes and a clear.
const OpLabel = "Add"

// Result is the summary of one (workload size, strategy) run.
type Result struct {
	Op         string `json:"op" yaml:"op"`
	Executions int64  `json:"executions" yaml:"executions"`
	Type       string `json:"type" yaml:"type"`
	// Overall is the wall-clock time of the measured phase.
	Overall time.Duration `json:"overall" yaml:"overall"`
	// MaxPerAction is the largest single Add, Remove or Clear duration of the measured phase.
	MaxPerAction time.Duration `json:"max_per_action" yaml:"max_per_action"`
	// Actions is the number of ledger entries of the measured phase.
	Actions int `json:"actions" yaml:"actions"`
}
