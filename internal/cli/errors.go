package cli

import (
	"errors"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitUsage      = 2
)

// ErrViolationsFound is returned by a run that reported at least one
// violation. It carries no message of its own; the violations were the
// output.
var ErrViolationsFound = errors.New("violations found")

// UsageError is a command line mistake. Its message is printed followed by
// the short usage text.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	return e.Msg
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrViolationsFound):
		return ExitViolations
	default:
		return ExitUsage
	}
}
