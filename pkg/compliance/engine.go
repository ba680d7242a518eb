package compliance

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/leapstack-labs/standardcheck/pkg/check"
	"github.com/leapstack-labs/standardcheck/pkg/core"
	"github.com/leapstack-labs/standardcheck/pkg/fsmeta"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
)

// Engine runs checks against paths.
type Engine struct {
	fs      fsmeta.FS
	logger  *slog.Logger
	checks  []check.Def
	exclude []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-path debug records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithExclude skips target paths matching any of the doublestar patterns.
func WithExclude(patterns ...string) Option {
	return func(e *Engine) {
		e.exclude = append(e.exclude, patterns...)
	}
}

// New creates an engine reading metadata from fsys.
func New(fsys fsmeta.FS, opts ...Option) (*Engine, error) {
	e := &Engine{
		fs:     fsys,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		checks: check.Defs(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, p := range e.exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	return e, nil
}

// Evaluate checks one path against standards and returns the violations in
// reporting order.
func (e *Engine) Evaluate(path string, standards []standard.Standard) []core.Violation {
	info, err := e.fs.Lstat(path)
	if err != nil {
		kind := classify(err)
		e.logger.Debug("cannot read target", "path", path, "kind", kind.Name(), "error", err)
		return []core.Violation{{Kind: kind, Standard: core.SystemStandard, Path: path}}
	}

	var violations []core.Violation
	for _, std := range standards {
		in := &check.Input{Path: path, Info: info, FS: e.fs, Standard: std}
		for _, def := range e.checks {
			if !def.Applies(in) {
				continue
			}
			ok, err := def.Check(in)
			switch {
			case err != nil:
				kind := classify(err)
				e.logger.Debug("check could not read metadata",
					"path", path, "standard", std.Name, "check", def.Name, "kind", kind.Name(), "error", err)
				violations = append(violations, core.Violation{Kind: kind, Standard: std.Name, Path: path})
			case !ok:
				violations = append(violations, core.Violation{Kind: def.Kind, Standard: std.Name, Path: path})
			}
		}
	}
	return violations
}

// Run evaluates paths in order, streaming each violation to r as soon as it
// is found. r may be nil.
func (e *Engine) Run(paths []string, standards []standard.Standard, r Reporter) *Result {
	if r == nil {
		r = Discard
	}

	result := &Result{Standards: make([]string, 0, len(standards))}
	for _, s := range standards {
		result.Standards = append(result.Standards, s.Name)
	}

	for _, path := range paths {
		if pattern, ok := e.excluded(path); ok {
			e.logger.Debug("skipping excluded path", "path", path, "pattern", pattern)
			result.Skipped++
			continue
		}

		violations := e.Evaluate(path, standards)
		result.Paths++
		e.logger.Debug("evaluated path", "path", path, "standards", len(standards), "violations", len(violations))
		for _, v := range violations {
			result.record(v)
			r.Report(v)
		}
	}
	return result
}

func (e *Engine) excluded(path string) (string, bool) {
	for _, p := range e.exclude {
		if doublestar.MatchUnvalidated(p, path) {
			return p, true
		}
	}
	return "", false
}

// classify maps a metadata read failure onto an error kind.
func classify(err error) core.ErrorKind {
	if fsmeta.IsPermission(err) {
		return core.PermissionDenied
	}
	return core.PathNotFound
}
