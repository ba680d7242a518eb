package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// ErrorKind
// =============================================================================

// ErrorKind identifies which rule a violation breaks.
type ErrorKind int

// Error kinds, in the order of the wire codes.
const (
	// PathTooLong means the whole path exceeds the standard's length limit.
	PathTooLong ErrorKind = iota
	// ComponentTooLong means a path segment exceeds the component limit.
	ComponentTooLong
	// FileTooLarge means the file size exceeds the size limit.
	FileTooLarge
	// InvalidCharacter means the path breaks the charset rule.
	InvalidCharacter
	// DuplicateName means a sibling differs from the name only by case.
	DuplicateName
	// TooManyEntries means a directory holds too many regular files.
	TooManyEntries
	// PermissionDenied means metadata could not be read for lack of access.
	PermissionDenied
	// PathNotFound means the path, or something the check needed, is missing.
	PathNotFound
	// HardlinkNotAllowed means a regular file has more than one link.
	HardlinkNotAllowed
	// SymlinkNotAllowed means the path is a symbolic link.
	SymlinkNotAllowed
)

type kindNames struct {
	code string
	name string
}

var errorKindNames = map[ErrorKind]kindNames{
	PathTooLong:        {"ERR_PATHLEN", "PathTooLong"},
	ComponentTooLong:   {"ERR_COMPLEN", "ComponentTooLong"},
	FileTooLarge:       {"ERR_TOOBIG", "FileTooLarge"},
	InvalidCharacter:   {"ERR_BADNAME", "InvalidCharacter"},
	DuplicateName:      {"ERR_DUPE", "DuplicateName"},
	TooManyEntries:     {"ERR_FILECOUNT", "TooManyEntries"},
	PermissionDenied:   {"ERR_PERMS", "PermissionDenied"},
	PathNotFound:       {"ERR_NOFILE", "PathNotFound"},
	HardlinkNotAllowed: {"ERR_HARDLINK", "HardlinkNotAllowed"},
	SymlinkNotAllowed:  {"ERR_SYMLINK", "SymlinkNotAllowed"},
}

// String returns the wire code, e.g. "ERR_PATHLEN".
func (k ErrorKind) String() string {
	if v, ok := errorKindNames[k]; ok {
		return v.code
	}
	return fmt.Sprintf("ERR_UNKNOWN(%d)", int(k))
}

// Name returns the descriptive name, e.g. "PathTooLong".
func (k ErrorKind) Name() string {
	if v, ok := errorKindNames[k]; ok {
		return v.name
	}
	return "unknown"
}

// MarshalText encodes the kind as its wire code.
func (k ErrorKind) MarshalText() ([]byte, error) {
	if _, ok := errorKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown error kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// ParseErrorKind accepts either the wire code or the descriptive name,
// ignoring case.
func ParseErrorKind(s string) (ErrorKind, bool) {
	for k, v := range errorKindNames {
		if strings.EqualFold(s, v.code) || strings.EqualFold(s, v.name) {
			return k, true
		}
	}
	return 0, false
}

// AllErrorKinds returns every kind in declaration order.
func AllErrorKinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, len(errorKindNames))
	for k := PathTooLong; k <= SymlinkNotAllowed; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
