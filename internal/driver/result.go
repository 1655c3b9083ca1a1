// Package driver is the outer layer around internal/sat: result formatting,
// a goroutine-based racing harness over several configurations, and a batch
// harness for running a whole directory of instances. Nothing here mutates
// shared state between concurrent solves; every racer gets its own Solver.
package driver

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/arvidw/cdclsat/internal/sat"
)

// placeholder is the "not solved" marker used for both Time, Result, and
// Solution fields when an instance times out, fails to parse, or otherwise
// never produces a sat.Result.
const placeholder = "--"

// Record is the JSON-per-line result of solving one instance.
type Record struct {
	Instance string
	Time     string
	Result   string
	Solution string
	Solver   string
}

// NewRecord formats the outcome of solving instancePath in elapsed wall time.
func NewRecord(instancePath string, res sat.Result, elapsed time.Duration) Record {
	r := Record{
		Instance: instancePath,
		Time:     fmt.Sprintf("%.2f", elapsed.Seconds()),
		Result:   res.Status.String(),
		Solver:   res.Solver.String(),
	}
	if res.Status == sat.StatusSat {
		r.Solution = formatSolution(res.Model)
	} else {
		r.Solution = placeholder
	}
	return r
}

// PlaceholderRecord is the record written for an instance that never
// finished: a timeout, a parse error, or a cancelled context.
func PlaceholderRecord(instancePath string) Record {
	return Record{
		Instance: instancePath,
		Time:     placeholder,
		Result:   placeholder,
		Solution: placeholder,
		Solver:   placeholder,
	}
}

// formatSolution renders a model as "1 true 2 false 3 true ..." — one-based
// variable indices, space-joined.
func formatSolution(model []bool) string {
	if len(model) == 0 {
		return placeholder
	}
	out := make([]byte, 0, len(model)*8)
	for i, v := range model {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, fmt.Sprintf("%d ", i+1)...)
		if v {
			out = append(out, "true"...)
		} else {
			out = append(out, "false"...)
		}
	}
	return string(out)
}

// Line marshals r as a single JSON line, keys in struct declaration order.
func (r Record) Line() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// sortConfigs orders configs deterministically for display (used by the
// racing harness when logging which configurations are entered).
func sortConfigs(configs []sat.Configuration) []sat.Configuration {
	out := append([]sat.Configuration(nil), configs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
