package compliance

import "github.com/leapstack-labs/standardcheck/pkg/core"

// Reporter consumes violations as they are produced.
type Reporter interface {
	Report(v core.Violation)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(v core.Violation)

// Report calls f(v).
func (f ReporterFunc) Report(v core.Violation) { f(v) }

// Discard is a Reporter that drops everything.
var Discard Reporter = ReporterFunc(func(core.Violation) {})
