// Package standard holds the catalog of filesystem portability standards.
//
// A Standard is an immutable bundle of rules describing what a target
// filesystem accepts: path and component length limits, a character
// whitelist or blacklist, a maximum file size, a maximum number of regular
// files per directory, and whether duplicate names, symbolic links and hard
// links are permitted.
//
// The built-in catalog is embedded as YAML (standards.yaml) and parsed once.
// Alternative catalogs in the same schema can be loaded with Load or LoadFile.
package standard
