// Package check implements the rule evaluators applied to each path.
//
// The evaluators are pure functions of a path or its metadata and one rule
// parameter. Defs wraps them into an ordered table; the order of the table is
// the order in which violations are reported for a (path, standard) pair.
package check
