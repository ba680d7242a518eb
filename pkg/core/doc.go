// Package core defines the shared language of standardcheck.
//
// This package contains the closed set of error kinds a check can report and
// the Violation record produced for each breach.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
