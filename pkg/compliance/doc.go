// Package compliance evaluates paths against standards.
//
// An Engine reads each path's metadata once, runs every check the standard
// configures in a fixed order, and turns each failure into a core.Violation.
// Paths that cannot be read at all are reported once against the SYSTEM
// pseudo-standard and skipped. Run threads a Result through a whole batch of
// paths; its Violated flag is set by the first violation and never cleared.
package compliance
