package Report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	Table = "table"
	JSON  = "json"
	YAML  = "yaml"
)

const divider = "-----------------------------------------------------------------------"

// Formats lists the accepted renderer names.
func Formats() []string {
	return []string{Table, JSON, YAML}
}

// Render writes groups to w in the named format; "" means Table.
func Render(w io.Writer, format string, groups []Group) error {
	switch strings.ToLower(format) {
	case "", Table:
		return renderTable(w, groups)
	case JSON:
		return renderJSON(w, groups)
	case YAML:
		return renderYAML(w, groups)
	default:
		return fmt.Errorf("unknown output format %q, want one of %v", format, Formats())
	}
}

func renderTable(w io.Writer, groups []Group) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, " Executions\t| Type\t| Op\t| Overall\t| MaxPerAction")
	for _, g := range groups {
		for _, r := range g.Rows {
			fmt.Fprintf(tw, " %d\t| %s\t| %s\t| %v\t| %v\n", r.Executions, r.Type, r.Op, r.Overall, r.MaxPerAction)
		}
		fmt.Fprintln(tw, divider)
	}
	return tw.Flush()
}

// row is the serialized form of a result: durations both as text and nanoseconds.
type row struct {
	Op             string `json:"op" yaml:"op"`
	Executions     int64  `json:"executions" yaml:"executions"`
	Type           string `json:"type" yaml:"type"`
	Overall        string `json:"overall" yaml:"overall"`
	OverallNs      int64  `json:"overall_ns" yaml:"overall_ns"`
	MaxPerAction   string `json:"max_per_action" yaml:"max_per_action"`
	MaxPerActionNs int64  `json:"max_per_action_ns" yaml:"max_per_action_ns"`
	Actions        int    `json:"actions" yaml:"actions"`
}

type group struct {
	Executions int64 `json:"executions" yaml:"executions"`
	Rows       []row `json:"rows" yaml:"rows"`
}

func serializable(groups []Group) []group {
	out := make([]group, len(groups))
	for i, g := range groups {
		out[i] = group{Executions: g.Executions, Rows: make([]row, len(g.Rows))}
		for j, r := range g.Rows {
			out[i].Rows[j] = row{
				Op:             r.Op,
				Executions:     r.Executions,
				Type:           r.Type,
				Overall:        r.Overall.String(),
				OverallNs:      int64(r.Overall / time.Nanosecond),
				MaxPerAction:   r.MaxPerAction.String(),
				MaxPerActionNs: int64(r.MaxPerAction / time.Nanosecond),
				Actions:        r.Actions,
			}
		}
	}
	return out
}

func renderJSON(w io.Writer, groups []Group) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(serializable(groups))
}

func renderYAML(w io.Writer, groups []Group) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(serializable(groups)); err != nil {
		return err
	}
	return enc.Close()
}
