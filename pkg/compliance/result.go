package compliance

import (
	"sync/atomic"

	"github.com/leapstack-labs/standardcheck/pkg/core"
)

// Result aggregates one run over a batch of paths.
type Result struct {
	Standards  []string         `json:"standards"`
	Paths      int              `json:"paths"`
	Skipped    int              `json:"skipped"`
	Violations []core.Violation `json:"violations"`

	violated atomic.Bool
}

// Violated reports whether any violation was recorded. Once true it stays true.
func (r *Result) Violated() bool {
	return r.violated.Load()
}

// ByKind counts violations per error kind.
func (r *Result) ByKind() map[core.ErrorKind]int {
	counts := make(map[core.ErrorKind]int)
	for _, v := range r.Violations {
		counts[v.Kind]++
	}
	return counts
}

func (r *Result) record(v core.Violation) {
	r.Violations = append(r.Violations, v)
	r.violated.Store(true)
}
