package check

import (
	"io/fs"
	"path/filepath"

	"github.com/leapstack-labs/standardcheck/pkg/core"
	"github.com/leapstack-labs/standardcheck/pkg/fsmeta"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
)

// Input is everything a check may look at for one (path, standard) pair.
type Input struct {
	Path     string
	Info     fsmeta.Info // from Lstat, read once per path
	FS       fsmeta.FS
	Standard standard.Standard
}

// Def is a rule definition.
// Checks are stateless - all context comes via the Input.
type Def struct {
	ID          string         // Unique identifier, e.g., "SC01"
	Name        string         // Human-readable name, e.g., "path.length"
	Group       string         // Category, e.g., "path", "file", "link"
	Description string         // Human-readable description
	Kind        core.ErrorKind // Kind reported when the check fails

	// Applies reports whether the standard configures this check for the
	// path. A check that does not apply is not evaluated at all.
	Applies func(in *Input) bool

	// Check returns false when the path breaks the rule. An error means the
	// metadata the check needs could not be read.
	Check func(in *Input) (bool, error)
}

// defs is ordered: violations for one standard are reported in this order.
var defs = []Def{
	{
		ID:          "SC01",
		Name:        "path.length",
		Group:       "path",
		Description: "Path must not be longer than the standard's maximum path length.",
		Kind:        core.PathTooLong,
		Applies:     func(in *Input) bool { return in.Standard.MaxPathLength.IsSet() },
		Check: func(in *Input) (bool, error) {
			return PathLength(in.Path, in.Standard.MaxPathLength), nil
		},
	},
	{
		ID:          "SC02",
		Name:        "path.component-length",
		Group:       "path",
		Description: "No path component may be longer than the standard's maximum component length.",
		Kind:        core.ComponentTooLong,
		Applies:     func(in *Input) bool { return in.Standard.MaxComponentLength.IsSet() },
		Check: func(in *Input) (bool, error) {
			return ComponentLength(in.Path, in.Standard.MaxComponentLength), nil
		},
	},
	{
		ID:          "SC03",
		Name:        "path.charset",
		Group:       "path",
		Description: "Path characters must satisfy the standard's whitelist or blacklist.",
		Kind:        core.InvalidCharacter,
		Applies:     func(in *Input) bool { return in.Standard.Charset != nil },
		Check: func(in *Input) (bool, error) {
			return Characters(in.Path, in.Standard.Charset), nil
		},
	},
	{
		ID:          "SC04",
		Name:        "file.size",
		Group:       "file",
		Description: "File size, following symlinks, must not exceed the standard's size limit.",
		Kind:        core.FileTooLarge,
		Applies:     func(in *Input) bool { return in.Standard.SizeLimit.IsSet() },
		Check: func(in *Input) (bool, error) {
			info, err := in.FS.Stat(in.Path)
			if err != nil {
				return false, err
			}
			return FileSize(info.Size, in.Standard.SizeLimit), nil
		},
	},
	{
		ID:          "SC05",
		Name:        "directory.entries",
		Group:       "directory",
		Description: "A directory must not hold more regular files than the standard allows.",
		Kind:        core.TooManyEntries,
		Applies: func(in *Input) bool {
			return in.Standard.MaxEntries.IsSet() && in.Info.IsDir()
		},
		Check: func(in *Input) (bool, error) {
			it, err := in.FS.OpenDir(in.Path)
			if err != nil {
				return false, err
			}
			defer func() { _ = it.Close() }()
			return EntryCount(it, in.Standard.MaxEntries)
		},
	},
	{
		ID:          "SC06",
		Name:        "link.symlink",
		Group:       "link",
		Description: "Path must not be a symbolic link when the standard has no symlinks.",
		Kind:        core.SymlinkNotAllowed,
		Applies:     func(in *Input) bool { return !in.Standard.SymlinksAllowed },
		Check: func(in *Input) (bool, error) {
			return Symlink(in.Info, false), nil
		},
	},
	{
		ID:          "SC07",
		Name:        "link.hardlink",
		Group:       "link",
		Description: "A non-directory must have a single link when the standard has no hard links.",
		Kind:        core.HardlinkNotAllowed,
		Applies:     func(in *Input) bool { return !in.Standard.HardlinksAllowed },
		Check: func(in *Input) (bool, error) {
			return Hardlink(in.Info, false), nil
		},
	},
	{
		ID:          "SC08",
		Name:        "name.duplicate",
		Group:       "name",
		Description: "No sibling may differ from the path's name only by letter case when the standard is case-insensitive.",
		Kind:        core.DuplicateName,
		Applies:     func(in *Input) bool { return !in.Standard.DuplicatesAllowed },
		Check: func(in *Input) (bool, error) {
			clean := filepath.Clean(in.Path)
			siblings, err := fsmeta.ReadNames(in.FS, filepath.Dir(clean))
			if err != nil {
				return false, err
			}
			return DuplicateName(filepath.Base(clean), siblings), nil
		},
	},
}

// Defs returns the check table in reporting order.
func Defs() []Def {
	out := make([]Def, len(defs))
	copy(out, defs)
	return out
}

// ConfiguredFor returns the checks a standard configures, ignoring
// conditions that depend on the path itself.
func ConfiguredFor(s standard.Standard) []Def {
	probe := &Input{Standard: s, Info: fsmeta.Info{Mode: fs.ModeDir | 0o755}}
	var out []Def
	for _, d := range defs {
		if d.Applies(probe) {
			out = append(out, d)
		}
	}
	return out
}
